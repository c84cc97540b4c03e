package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/jmylchreest/duotone/internal/colour"
	"github.com/jmylchreest/duotone/internal/palette"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json)", format)
	}
}

// previewEnabled resolves a preview mode for out. auto enables swatches only
// when out is a terminal.
func previewEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	case previewAuto, "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil // #nosec G115 -- file descriptors fit in int
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

// wcagLabel names the strictest level a variant passes.
func wcagLabel(c colour.Compliance) string {
	switch {
	case c.AAASmall:
		return "AAA"
	case c.AASmall:
		return "AA"
	case c.AALarge:
		return "AA large"
	default:
		return "fail"
	}
}

func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64) + ":1"
}

func swatch(v palette.Variant, background string) string {
	fg, err := colour.ParseHex(v.Hex)
	if err != nil {
		return ""
	}
	bg, err := colour.ParseHex(background)
	if err != nil {
		return ""
	}
	return colour.SwatchOn(fg, bg, "Aa", 6) + colour.ColourPreview(fg, 2)
}

// renderPalette writes p as a table or as JSON.
func renderPalette(w io.Writer, p *palette.Palette, format string, preview bool) error {
	if format == formatJSON {
		data, err := p.ToJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "%s (%s, %s) %s\n", p.Name, p.Type, p.Level, p.ID)
	fmt.Fprintf(w, "light background %s, dark background %s\n\n", p.LightBackground, p.DarkBackground)

	headers := []string{"#", "Name", "Token", "Light", "Ratio", "WCAG", "Dark", "Ratio", "WCAG"}
	if p.Type.IsGradient() {
		headers = append(headers, "Key")
	}
	if preview {
		headers = append(headers, "Light preview", "Dark preview")
	}

	table := NewTable(headers)
	table.SetColumnMaxWidth(1, 24)
	for i, c := range p.Colors {
		row := []string{
			strconv.Itoa(i),
			c.Name,
			c.Token,
			c.Light.Hex,
			formatRatio(c.Light.Contrast),
			wcagLabel(c.Light.Compliance),
			c.Dark.Hex,
			formatRatio(c.Dark.Contrast),
			wcagLabel(c.Dark.Compliance),
		}
		if p.Type.IsGradient() {
			key := ""
			if c.Editable {
				key = "*"
			}
			row = append(row, key)
		}
		if preview {
			row = append(row,
				swatch(c.Light, p.LightBackground),
				swatch(c.Dark, p.DarkBackground))
		}
		table.AddRow(row)
	}

	_, err := io.WriteString(w, table.Render())
	return err
}

// renderPaletteList writes one line per palette.
func renderPaletteList(w io.Writer, palettes []*palette.Palette) {
	if len(palettes) == 0 {
		fmt.Fprintln(w, "no palettes")
		return
	}
	table := NewTable([]string{"ID", "Name", "Type", "Level", "Colors"})
	for _, p := range palettes {
		table.AddRow([]string{p.ID, p.Name, string(p.Type), p.Level.String(), strconv.Itoa(p.Len())})
	}
	io.WriteString(w, table.Render()) //nolint:errcheck // best-effort terminal output
}

// renderContrast writes a contrast report as a table or as JSON.
func renderContrast(w io.Writer, fg, bg string, report colour.ContrastReport, format string) error {
	if format == formatJSON {
		data, err := json.MarshalIndent(struct {
			Foreground string            `json:"foreground"`
			Background string            `json:"background"`
			Ratio      float64           `json:"ratio"`
			Compliance colour.Compliance `json:"compliance"`
		}{fg, bg, report.Ratio, report.Compliance}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "%s on %s: %s\n\n", fg, bg, formatRatio(report.Ratio))
	table := NewTable([]string{"Level", "Target", "Result"})
	for _, level := range colour.ValidLevels() {
		result := "fail"
		if report.Compliance.Meets(level) {
			result = "pass"
		}
		table.AddRow([]string{level.String(), formatRatio(level.TargetContrast()), result})
	}
	_, err := io.WriteString(w, table.Render())
	return err
}
