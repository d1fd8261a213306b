package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/htn/pkg/scenario"
)

// ErrExpectationNotMet is returned when a scenario's expect block does not hold.
var ErrExpectationNotMet = errors.New("scenario expectation not met")

// RunScenario loads the file, runs it on the configured backend and writes the report to w.
func RunScenario(ctx context.Context, opts Options, logger *slog.Logger, path string, w io.Writer) (*scenario.Report, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}

	b, err := NewBackend(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn("failed to close backend", "error", err)
		}
	}()

	eng := NewEngine(opts, logger, b)
	report, err := scenario.Run(ctx, eng, b.Worlds, sc)
	if err != nil {
		return nil, err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		NewPrinter(w).Report(report)
	}

	if report.Met != nil && !*report.Met {
		return report, ErrExpectationNotMet
	}
	return report, nil
}
