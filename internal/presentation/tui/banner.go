package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{"  _____            _             ", "#818cf8"},
	{" |_   _|   _ _ __ (_)_ __   __ _ ", "#a78bfa"},
	{"   | || | | | '__|| | '_ \\ / _` |", "#c084fc"},
	{"   | || |_| | |   | | | | | (_| |", "#e879f9"},
	{"   |_| \\__,_|_|   |_|_| |_|\\__, |", "#f472b6"},
	{"                           |___/ ", "#fb7185"},
}

// PrintBanner writes the ASCII art banner, coloured when w is a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
