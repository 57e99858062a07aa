// Package analysis runs pitch-class set analysis over batches of textual
// inputs with bounded concurrency.
package analysis

import (
	"context"
	"errors"

	"github.com/denismitr/pcset"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

var (
	ErrSkip               = errors.New("must skip item")
	ErrInvalidConcurrency = errors.New("invalid concurrency")
)

type (
	config struct {
		concurrency int
	}

	Option func(c *config)
)

func WithConcurrency(c int) Option {
	return func(cfg *config) {
		cfg.concurrency = c
	}
}

// Analyze parses and analyzes every input. Reports come back in input order,
// skipped lines omitted. The first failing input cancels the rest of the
// batch and its error is returned with the input's 1-based position.
func Analyze(ctx context.Context, inputs []string, options ...Option) ([]Report, error) {
	cfg := config{concurrency: DefaultConcurrency}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.concurrency < 1 {
		return nil, pkgerrors.Wrapf(ErrInvalidConcurrency, "should be at least 1, got %d", cfg.concurrency)
	}

	results := make([]*Report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}

		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := analyzeLine(input)
			if err != nil {
				if errors.Is(err, ErrSkip) {
					return nil
				}
				return pkgerrors.Wrapf(err, "input %d", i+1)
			}

			results[i] = &report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(inputs))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}

	return reports, nil
}

func analyzeLine(line string) (Report, error) {
	label, text, err := ParseLine(line)
	if err != nil {
		return Report{}, err
	}

	s, err := pcset.Parse(text)
	if err != nil {
		return Report{}, err
	}

	return NewReport(label, text, s), nil
}
