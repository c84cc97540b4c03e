package seed

import "testing"

func TestCalculateManual(t *testing.T) {
	v := int64(1234)
	got, err := Calculate("", Config{Mode: ModeManual, Value: &v})
	if err != nil {
		t.Fatal(err)
	}
	if got != 1234 {
		t.Errorf("Calculate(manual) = %d, want 1234", got)
	}

	if _, err := Calculate("", Config{Mode: ModeManual}); err == nil {
		t.Error("expected error for manual mode without a value")
	}
}

func TestCalculateNameIsDeterministic(t *testing.T) {
	a, err := Calculate("Revenue by region", Config{Mode: ModeName})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Calculate("  revenue BY region ", Config{Mode: ModeName})
	c, _ := Calculate("Churn", Config{Mode: ModeName})

	if a != b {
		t.Errorf("same key produced different seeds: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("different keys produced the same seed %d", a)
	}

	if _, err := Calculate("   ", Config{Mode: ModeName}); err == nil {
		t.Error("expected error for an empty key")
	}
}

func TestCalculateUnknownMode(t *testing.T) {
	if _, err := Calculate("x", Config{Mode: "content"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "random", want: ModeRandom},
		{input: "Manual", want: ModeManual},
		{input: "name", want: ModeName},
		{input: "filepath", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
