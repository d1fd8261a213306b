package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/htn/internal/presentation/tui"
	"github.com/aretw0/htn/pkg/domain"
	"github.com/aretw0/htn/pkg/dsl"
	"github.com/aretw0/htn/pkg/ports"
	"golang.org/x/term"
)

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStart: func(ctx context.Context, e *domain.ActionEvent) {
			logger.DebugContext(ctx, "Start Action",
				"action", e.Action, "variant", e.Variant, "depth", e.Depth, "inputs", e.Inputs)
		},
		OnActionFinish: func(ctx context.Context, e *domain.ActionEvent) {
			if e.Success {
				logger.DebugContext(ctx, "Finish Action (Success)",
					"action", e.Action, "depth", e.Depth, "duration", e.Duration)
			} else {
				logger.DebugContext(ctx, "Finish Action (Failure)",
					"action", e.Action, "depth", e.Depth, "reason", e.Reason)
			}
		},
	}
}

// Compose resolves names against the library and combines them.
// A single name yields the library action itself.
func Compose(lib ports.ActionLibrary, mode string, name string, steps []string) (*domain.Action, error) {
	m, err := dsl.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	p := dsl.New(lib).Plan(name, m)
	for _, s := range steps {
		p.Do(strings.TrimSpace(s))
	}
	return p.Build()
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewPrinter colors output only on a terminal.
func NewPrinter(w io.Writer) *tui.Printer {
	if IsTerminal(w) {
		return tui.NewPrinter(w)
	}
	return tui.NewPlainPrinter(w)
}
