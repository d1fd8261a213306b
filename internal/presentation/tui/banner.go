package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the HTN banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _   _ _____ _   _ ", "#818cf8"},
		{" | | | |_   _| \\ | |", "#a78bfa"},
		{" | |_| | | | |  \\| |", "#c084fc"},
		{" |  _  | | | | |\\  |", "#e879f9"},
		{" |_| |_| |_| |_| \\_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
