package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders md on the standard output.
func printMarkdown(md string) { writeMarkdown(os.Stdout, md) }

// writeMarkdown renders md for the terminal. When stdout is not a terminal the
// markdown is written as is.
func writeMarkdown(w io.Writer, md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithEmoji(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
