package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/htn/pkg/scenario"
	"github.com/muesli/termenv"
)

// Printer writes run reports with terminal colors.
type Printer struct {
	out     *termenv.Output
	profile termenv.Profile
}

// NewPrinter detects the color profile of w.
func NewPrinter(w io.Writer) *Printer {
	out := termenv.NewOutput(w)
	return &Printer{out: out, profile: out.Profile}
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(w io.Writer) *Printer {
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	return &Printer{out: out, profile: termenv.Ascii}
}

func (p *Printer) paint(s, color string) termenv.Style {
	return p.out.String(s).Foreground(p.profile.Color(color))
}

// Report prints the outcome, the final world and whether the expectation held.
func (p *Printer) Report(r *scenario.Report) {
	title := r.Scenario
	if title == "" {
		title = r.Action
	}
	fmt.Fprintln(p.out, p.out.String(title).Bold())
	fmt.Fprintf(p.out, "  action:    %s\n", r.Action)
	fmt.Fprintf(p.out, "  interface: %s\n", strings.Join(r.Interface, ", "))

	if r.Result.Success {
		fmt.Fprintf(p.out, "  result:    %s\n", p.paint("succeeded", "#22c55e"))
	} else {
		reason := r.Result.Reason
		if r.Result.Action != "" {
			reason = r.Result.Action + ": " + reason
		}
		fmt.Fprintf(p.out, "  result:    %s (%s)\n", p.paint("failed", "#ef4444"), reason)
	}

	holding := r.Holding
	if holding == "" {
		holding = "nothing"
	}
	fmt.Fprintf(p.out, "  holding:   %s\n", holding)

	ids := make([]string, 0, len(r.Containers))
	for id := range r.Containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(p.out, "  %s: [%s]\n", id, strings.Join(r.Containers[id], ", "))
	}

	if r.Met != nil {
		if *r.Met {
			fmt.Fprintf(p.out, "  expect:    %s\n", p.paint("met", "#22c55e"))
		} else {
			fmt.Fprintf(p.out, "  expect:    %s\n", p.paint("NOT met", "#f59e0b"))
		}
	}
}
