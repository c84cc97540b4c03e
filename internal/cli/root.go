// Package cli provides the command-line interface for duotone.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/duotone/internal/config"
	"github.com/jmylchreest/duotone/internal/version"
)

// globals holds state shared by every command of one root command tree.
type globals struct {
	configFile string
	verbose    bool
	quiet      bool

	viper  *viper.Viper
	logger hclog.Logger
}

// NewRootCmd creates the duotone command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "duotone",
		Short: "Accessible light and dark data-visualisation palettes",
		Long: `Duotone generates 12-colour categorical, sequential and diverging palettes
for charts. Every colour has a light-mode and a dark-mode variant, each checked
against its background for WCAG contrast, and the two variants are kept
visibly distinct so a series is recognisable in either theme.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/duotone/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSessionCmd(g))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flagBindings maps configuration keys to the flags that override them.
var flagBindings = map[string]string{
	config.KeyLightBackground: "light-bg",
	config.KeyDarkBackground:  "dark-bg",
	config.KeyLevel:           "level",
	config.KeyPrefix:          "prefix",
	config.KeyStrategy:        "strategy",
	config.KeySeedMode:        "seed-mode",
	config.KeySeed:            "seed",
}

func (g *globals) init(cmd *cobra.Command) error {
	g.logger = newLogger(cmd.ErrOrStderr(), g.verbose)

	v, err := config.New(g.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	g.viper = v

	if used := v.ConfigFileUsed(); used != "" {
		g.logger.Debug("loaded config", "file", used)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagBindings {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// newLogger writes Debug output to out when verbose and discards it otherwise.
func newLogger(out io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "duotone",
			Output: out,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "duotone",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
