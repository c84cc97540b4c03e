package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/duotone/internal/colour"
)

func newCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Report the WCAG contrast of two colours",
		Long: `Report the WCAG contrast ratio of a foreground colour on a background and
which conformance levels it passes.

Examples:
  duotone check "#767676" "#ffffff"
  duotone check 336699 121212 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			fg, err := colour.NormaliseHex(args[0])
			if err != nil {
				return err
			}
			bg, err := colour.NormaliseHex(args[1])
			if err != nil {
				return err
			}
			report, err := colour.CheckContrast(fg, bg)
			if err != nil {
				return err
			}
			return renderContrast(cmd.OutOrStdout(), fg, bg, report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	return cmd
}
