package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/duotone/internal/colour"
	"github.com/jmylchreest/duotone/internal/config"
	"github.com/jmylchreest/duotone/internal/palette"
	"github.com/jmylchreest/duotone/internal/session"
)

const sessionHelp = `Commands:
  generate [type] [level]        create a palette and make it current
  regenerate [type] [level]      rebuild the current palette, keeping its id and name
  hex <index> <hex> [light|dark] set a colour (light by default) and derive the other mode
  name <index> <name...>         rename a colour
  move <from> <to>               reorder a categorical palette
  show [id]                      print the current or named palette
  use <id>                       make a palette current
  list                           list palettes
  check <foreground> <background>
  stats                          command counts
  help
  quit
Indexes start at 0.`

var errQuit = errors.New("quit")

func newSessionCmd(g *globals) *cobra.Command {
	var format, preview string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Edit palettes interactively",
		Long: `Start an editing session that reads one command per line from standard input.
Every command is applied in order by a single session processor, and the
affected palette is printed after each change.

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			show, err := previewEnabled(preview, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg, rng, err := g.loadConfig("session")
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			proc := session.NewProcessor(rng,
				session.WithLogger(g.logger.Named("session")),
				session.WithMetrics(session.NewMetrics(registry)),
				session.WithTokenPrefix(cfg.TokenPrefix),
				session.WithStrategy(cfg.Strategy),
			)
			defer proc.Close()

			r := &repl{
				proc:     proc,
				cfg:      cfg,
				out:      cmd.OutOrStdout(),
				format:   format,
				preview:  show,
				registry: registry,
			}
			return r.run(cmd.Context(), cmd.InOrStdin(), !g.quiet)
		},
	}

	addPaletteFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "palette output format (table, json)")
	cmd.Flags().StringVar(&preview, "preview", previewAuto, "colour swatches in table output (auto, always, never)")
	return cmd
}

type repl struct {
	proc     *session.Processor
	cfg      config.Config
	out      io.Writer
	format   string
	preview  bool
	registry prometheus.Gatherer
	current  string
}

func (r *repl) run(ctx context.Context, in io.Reader, banner bool) error {
	prompt := false
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		prompt = true
	}
	if banner && prompt {
		fmt.Fprintln(r.out, "duotone session. Type help for commands.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := r.exec(ctx, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, session.ErrClosed):
			return err
		case err != nil:
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *repl) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(r.out, sessionHelp)
		return nil
	case "generate", "regenerate":
		return r.generate(ctx, name == "regenerate", args)
	case "hex":
		return r.editHex(ctx, args)
	case "name":
		return r.rename(ctx, args)
	case "move":
		return r.move(ctx, args)
	case "show":
		return r.show(ctx, args)
	case "use":
		if err := wantArgs(args, 1, 1, "use <id>"); err != nil {
			return err
		}
		if _, err := r.proc.Palette(ctx, args[0]); err != nil {
			return err
		}
		r.current = args[0]
		return nil
	case "list":
		palettes, err := r.proc.Palettes(ctx)
		if err != nil {
			return err
		}
		renderPaletteList(r.out, palettes)
		return nil
	case "check":
		if err := wantArgs(args, 2, 2, "check <foreground> <background>"); err != nil {
			return err
		}
		report, err := r.proc.CheckContrast(args[0], args[1])
		if err != nil {
			return err
		}
		return renderContrast(r.out, args[0], args[1], report, r.format)
	case "stats":
		return r.stats()
	default:
		return fmt.Errorf("unknown command %q (type help for commands)", name)
	}
}

func wantArgs(args []string, lo, hi int, usage string) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}

func (r *repl) currentID() (string, error) {
	if r.current == "" {
		return "", errors.New("no current palette (run generate first)")
	}
	return r.current, nil
}

func (r *repl) print(p *palette.Palette) error {
	return renderPalette(r.out, p, r.format, r.preview)
}

func (r *repl) generate(ctx context.Context, regenerate bool, args []string) error {
	if err := wantArgs(args, 0, 2, "generate [type] [level]"); err != nil {
		return err
	}
	t := palette.TypeCategorical
	level := r.cfg.Level
	if len(args) > 0 {
		parsed, err := palette.ParseType(args[0])
		if err != nil {
			return err
		}
		t = parsed
	}
	if len(args) > 1 {
		parsed, err := colour.ParseLevel(args[1])
		if err != nil {
			return err
		}
		level = parsed
	}

	var (
		p   *palette.Palette
		err error
	)
	if regenerate {
		id, idErr := r.currentID()
		if idErr != nil {
			return idErr
		}
		p, err = r.proc.RegeneratePalette(ctx, id, t, r.cfg.LightBackground, r.cfg.DarkBackground, level)
	} else {
		p, err = r.proc.GeneratePalette(ctx, t, r.cfg.LightBackground, r.cfg.DarkBackground, level)
	}
	if err != nil {
		return err
	}
	r.current = p.ID
	return r.print(p)
}

func (r *repl) editHex(ctx context.Context, args []string) error {
	if err := wantArgs(args, 2, 3, "hex <index> <hex> [light|dark]"); err != nil {
		return err
	}
	id, err := r.currentID()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	mode := colour.ModeLight
	if len(args) == 3 {
		if mode, err = colour.ParseMode(args[2]); err != nil {
			return err
		}
	}
	p, err := r.proc.EditColorHex(ctx, id, index, args[1], mode)
	if err != nil {
		return err
	}
	return r.print(p)
}

func (r *repl) rename(ctx context.Context, args []string) error {
	if err := wantArgs(args, 2, -1, "name <index> <name...>"); err != nil {
		return err
	}
	id, err := r.currentID()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	p, err := r.proc.EditColorName(ctx, id, index, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	return r.print(p)
}

func (r *repl) move(ctx context.Context, args []string) error {
	if err := wantArgs(args, 2, 2, "move <from> <to>"); err != nil {
		return err
	}
	id, err := r.currentID()
	if err != nil {
		return err
	}
	from, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	p, err := r.proc.ReorderColor(ctx, id, from, to)
	if err != nil {
		return err
	}
	return r.print(p)
}

func (r *repl) show(ctx context.Context, args []string) error {
	if err := wantArgs(args, 0, 1, "show [id]"); err != nil {
		return err
	}
	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		current, err := r.currentID()
		if err != nil {
			return err
		}
		id = current
	}
	p, err := r.proc.Palette(ctx, id)
	if err != nil {
		return err
	}
	return r.print(p)
}

// stats prints command counts from the session metrics.
func (r *repl) stats() error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}

	table := NewTable([]string{"Command", "Result", "Count"})
	var rows [][]string
	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), "commands_total") {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			rows = append(rows, []string{
				labels["command"],
				labels["result"],
				strconv.FormatFloat(m.GetCounter().GetValue(), 'f', 0, 64),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i][0]+rows[i][1] < rows[j][0]+rows[j][1]
	})
	for _, row := range rows {
		table.AddRow(row)
	}
	_, err = io.WriteString(r.out, table.Render())
	return err
}
