package generator

import (
	"context"
	"fmt"

	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/summary"
	"github.com/sporadisk/timesheet/task"
	"github.com/sporadisk/timesheet/timeentry"
	"github.com/sporadisk/timesheet/timesheet"
)

// Generator runs entries through the aggregation core and hands the table to
// the configured output. Components left nil are built from Conf by Init.
type Generator struct {
	Conf       *config.Config
	Loader     timeentry.Loader
	Subscriber timeentry.Subscriber
	Resolver   task.Resolver
	Output     summary.Output

	closers []func() error
}

func (g *Generator) Init(ctx context.Context) error {
	if g.Conf == nil {
		g.Conf = &config.Config{}
	}

	if g.Resolver == nil {
		resolver, closer, err := LoadResolver(g.Conf.Resolver)
		if err != nil {
			return fmt.Errorf("LoadResolver: %w", err)
		}
		g.Resolver = resolver
		g.addCloser(closer)
	}

	if g.Output == nil {
		output, err := LoadOutput(g.Conf.Output)
		if err != nil {
			return fmt.Errorf("LoadOutput: %w", err)
		}
		g.Output = output
	}

	if g.Loader == nil && g.Subscriber == nil {
		loader, err := LoadInput(ctx, g.Conf.Input)
		if err != nil {
			return fmt.Errorf("LoadInput: %w", err)
		}
		g.Loader = loader
	}

	return nil
}

// Start produces a single report, or keeps producing them for as long as the
// subscriber delivers entries.
func (g *Generator) Start(ctx context.Context) error {
	err := g.Init(ctx)
	if err != nil {
		return fmt.Errorf("g.Init: %w", err)
	}

	if g.Subscriber != nil {
		err = g.Subscriber.Subscribe(g)
		if err != nil {
			return fmt.Errorf("Subscriber.Subscribe: %w", err)
		}
		return nil
	}

	return g.Generate(ctx)
}

func (g *Generator) Generate(ctx context.Context) error {
	entries, err := g.Loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("Loader.Load: %w", err)
	}

	return g.Receive(entries)
}

// Receive implements timeentry.Receiver. A failed pass produces no output.
func (g *Generator) Receive(entries []timeentry.Entry) error {
	res, err := timesheet.Aggregate(entries, g.Resolver)
	if err != nil {
		return fmt.Errorf("timesheet.Aggregate: %w", err)
	}

	err = g.Output.OutputTable(timesheet.Emit(res))
	if err != nil {
		return fmt.Errorf("Output.OutputTable: %w", err)
	}

	return nil
}

func (g *Generator) Close() error {
	var firstErr error
	for _, closer := range g.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	g.closers = nil
	return firstErr
}

func (g *Generator) addCloser(closer func() error) {
	if closer != nil {
		g.closers = append(g.closers, closer)
	}
}
