// Package session applies palette operations one at a time on a single
// goroutine that owns every palette in the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/duotone/internal/colour"
	"github.com/jmylchreest/duotone/internal/palette"
)

var (
	// ErrClosed is returned for commands submitted after Close.
	ErrClosed = errors.New("session is closed")
	// ErrPaletteNotFound is returned for unknown palette identifiers.
	ErrPaletteNotFound = errors.New("palette not found")
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the processor logger.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records command counts and durations in m. A nil m is ignored.
func WithMetrics(m *Metrics) Option {
	return func(p *Processor) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithTokenPrefix sets the token prefix for generated palettes.
func WithTokenPrefix(prefix string) Option {
	return func(p *Processor) {
		p.tokenPrefix = prefix
	}
}

// WithStrategy sets how categorical base colours are chosen.
func WithStrategy(s palette.Strategy) Option {
	return func(p *Processor) {
		p.strategy = s
	}
}

type command struct {
	name    string
	run     func() error
	deliver func()
}

// Processor is a single-writer command processor. Every operation is queued
// and fully applied, including gradient regeneration, before the next one
// starts. Callers always receive copies of session state.
type Processor struct {
	commands  chan command
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	logger      hclog.Logger
	metrics     *Metrics
	tokenPrefix string
	strategy    palette.Strategy

	// Owned by the loop goroutine.
	assembler *palette.Assembler
	palettes  map[string]*palette.Palette
	created   map[string]int
	sequence  int
}

// NewProcessor starts a processor drawing randomness from rng.
// Close must be called to stop it.
func NewProcessor(rng colour.Rand, opts ...Option) *Processor {
	p := &Processor{
		commands:    make(chan command),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		logger:      hclog.NewNullLogger(),
		metrics:     NewMetrics(nil),
		tokenPrefix: palette.DefaultTokenPrefix,
		strategy:    palette.StrategyClustered,
		palettes:    make(map[string]*palette.Palette),
		created:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.assembler = palette.NewAssembler(rng, p.logger.Named("assembler"))

	go p.loop()
	return p
}

func (p *Processor) loop() {
	defer close(p.done)
	for {
		select {
		case cmd := <-p.commands:
			started := time.Now()
			err := cmd.run()
			p.metrics.observe(cmd.name, started, err)
			p.metrics.palettes.Set(float64(len(p.palettes)))
			if err != nil {
				p.logger.Debug("command failed", "command", cmd.name, "error", err)
			} else {
				p.logger.Trace("command applied", "command", cmd.name, "duration", time.Since(started))
			}
			cmd.deliver()
		case <-p.quit:
			return
		}
	}
}

// Close stops the processor. Commands submitted afterwards fail with ErrClosed.
func (p *Processor) Close() {
	p.closeOnce.Do(func() {
		close(p.quit)
	})
	<-p.done
}

// submit queues fn on the loop and waits for its result. A command that has
// been accepted runs to completion even if ctx is cancelled while waiting.
func submit[T any](ctx context.Context, p *Processor, name string, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	var (
		zero   T
		result outcome
	)
	reply := make(chan outcome, 1)
	cmd := command{
		name: name,
		run: func() error {
			result.value, result.err = fn()
			return result.err
		},
		deliver: func() {
			reply <- result
		},
	}

	select {
	case p.commands <- cmd:
	case <-p.done:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case o := <-reply:
		return o.value, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (p *Processor) options(lightBg, darkBg string, level colour.Level) palette.Options {
	return palette.Options{
		LightBackground: lightBg,
		DarkBackground:  darkBg,
		Level:           level,
		TokenPrefix:     p.tokenPrefix,
		Strategy:        p.strategy,
	}
}

// lookup must only be called on the loop goroutine.
func (p *Processor) lookup(id string) (*palette.Palette, error) {
	pal, ok := p.palettes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	return pal, nil
}

// store must only be called on the loop goroutine.
func (p *Processor) store(pal *palette.Palette) *palette.Palette {
	if _, ok := p.palettes[pal.ID]; !ok {
		p.sequence++
		p.created[pal.ID] = p.sequence
	}
	p.palettes[pal.ID] = pal
	return pal.Clone()
}

// GeneratePalette creates a palette and adds it to the session.
func (p *Processor) GeneratePalette(ctx context.Context, t palette.Type, lightBg, darkBg string, level colour.Level) (*palette.Palette, error) {
	return submit(ctx, p, "generate", func() (*palette.Palette, error) {
		pal, err := p.assembler.Generate(t, p.options(lightBg, darkBg, level))
		if err != nil {
			return nil, err
		}
		p.logger.Info("generated palette", "id", pal.ID, "type", t)
		return p.store(pal), nil
	})
}

// RegeneratePalette rebuilds a palette in place, keeping its identifier and name.
func (p *Processor) RegeneratePalette(ctx context.Context, id string, t palette.Type, lightBg, darkBg string, level colour.Level) (*palette.Palette, error) {
	return submit(ctx, p, "regenerate", func() (*palette.Palette, error) {
		existing, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		opts := p.options(lightBg, darkBg, level)
		opts.TokenPrefix = ""
		pal, err := p.assembler.Regenerate(existing, t, opts)
		if err != nil {
			return nil, err
		}
		return p.store(pal), nil
	})
}

// EditColorHex sets one colour from a hex authored for mode and derives the
// other mode's variant. Gradient palettes are re-interpolated.
func (p *Processor) EditColorHex(ctx context.Context, id string, index int, hex string, mode colour.Mode) (*palette.Palette, error) {
	return submit(ctx, p, "edit_hex", func() (*palette.Palette, error) {
		existing, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		pal, err := p.assembler.EditHex(existing, index, hex, mode)
		if err != nil {
			return nil, err
		}
		return p.store(pal), nil
	})
}

// EditColorName renames one colour and re-derives its token.
func (p *Processor) EditColorName(ctx context.Context, id string, index int, name string) (*palette.Palette, error) {
	return submit(ctx, p, "edit_name", func() (*palette.Palette, error) {
		existing, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		pal, err := palette.Rename(existing, index, name)
		if err != nil {
			return nil, err
		}
		return p.store(pal), nil
	})
}

// ReorderColor moves a colour within a categorical palette.
func (p *Processor) ReorderColor(ctx context.Context, id string, from, to int) (*palette.Palette, error) {
	return submit(ctx, p, "reorder", func() (*palette.Palette, error) {
		existing, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		pal, err := palette.Reorder(existing, from, to)
		if err != nil {
			return nil, err
		}
		return p.store(pal), nil
	})
}

// Palette returns a copy of the palette with the given identifier.
func (p *Processor) Palette(ctx context.Context, id string) (*palette.Palette, error) {
	return submit(ctx, p, "get", func() (*palette.Palette, error) {
		pal, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		return pal.Clone(), nil
	})
}

// Palettes returns copies of every palette in creation order.
func (p *Processor) Palettes(ctx context.Context) ([]*palette.Palette, error) {
	return submit(ctx, p, "list", func() ([]*palette.Palette, error) {
		out := make([]*palette.Palette, 0, len(p.palettes))
		for _, pal := range p.palettes {
			out = append(out, pal.Clone())
		}
		sort.Slice(out, func(i, j int) bool {
			return p.created[out[i].ID] < p.created[out[j].ID]
		})
		return out, nil
	})
}

// CheckContrast reports the contrast of fg against bg. It touches no session
// state and does not wait for the loop.
func (p *Processor) CheckContrast(fg, bg string) (colour.ContrastReport, error) {
	started := time.Now()
	report, err := colour.CheckContrast(fg, bg)
	p.metrics.observe("check", started, err)
	return report, err
}
