package colour

import (
	"errors"
	"testing"
)

func TestTargetContrast(t *testing.T) {
	tests := []struct {
		level Level
		want  float64
	}{
		{LevelAALarge, 3.0},
		{LevelAASmall, 4.5},
		{LevelAAALarge, 4.5},
		{LevelAAASmall, 7.0},
	}

	for _, tt := range tests {
		if got := tt.level.TargetContrast(); got != tt.want {
			t.Errorf("%s.TargetContrast() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Compliance
	}{
		{name: "fails everything", ratio: 2.9, want: Compliance{}},
		{name: "large AA only", ratio: 3.0, want: Compliance{AALarge: true}},
		{name: "AA small and AAA large share 4.5", ratio: 4.5, want: Compliance{AALarge: true, AASmall: true, AAALarge: true}},
		{name: "just under AAA small", ratio: 6.99, want: Compliance{AALarge: true, AASmall: true, AAALarge: true}},
		{name: "passes everything", ratio: 7.0, want: Compliance{AALarge: true, AASmall: true, AAALarge: true, AAASmall: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ratio); got != tt.want {
				t.Errorf("Classify(%v) = %+v, want %+v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestComplianceMeets(t *testing.T) {
	c := Classify(5)
	for _, level := range ValidLevels() {
		want := level != LevelAAASmall
		if got := c.Meets(level); got != want {
			t.Errorf("Classify(5).Meets(%s) = %v, want %v", level, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "AASmall", want: LevelAASmall},
		{input: "aa-large", want: LevelAALarge},
		{input: "AAA_SMALL", want: LevelAAASmall},
		{input: "aaa large", want: LevelAAALarge},
		{input: "AAAA", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLevel) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestCheckContrast(t *testing.T) {
	report, err := CheckContrast("#000", "#fff")
	if err != nil {
		t.Fatal(err)
	}
	if report.Ratio < 20.99 || !report.Compliance.AAASmall {
		t.Errorf("CheckContrast(black, white) = %+v", report)
	}

	if _, err := CheckContrast("black", "#fff"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("CheckContrast with a colour name: error = %v, want ErrInvalidColorFormat", err)
	}
}
