// Package diagfmt renders diagnostics, token streams and syntax trees
// for the CLI. It owns all presentation; the core packages only carry
// spans and values.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mcfn/internal/diag"
	"mcfn/internal/source"
)

// Pretty writes one diagnostic in compiler style:
//
//	path:line:col: ERROR E2001: unexpected token RBracket
//	    3 | @e[limit=]
//	      |          ^
//
// The caret underline is sized by display width so it stays aligned
// under lines containing wide runes.
func Pretty(w io.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	sev := color.New(color.FgRed, color.Bold)
	code := color.New(color.FgCyan)
	if !opts.Color {
		sev.DisableColor()
		code.DisableColor()
	}

	start, end := file.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col,
		sev.Sprint(d.Severity), code.Sprint(d.Code.ID()), d.Message)

	first := uint32(1)
	if opts.Context > 0 && start.Line > uint32(opts.Context) {
		first = start.Line - uint32(opts.Context)
	}
	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, file.Line(ln))
	}

	lineText := file.Line(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, lineText)

	lo := clamp(int(start.Col)-1, len(lineText))
	pad := runewidth.StringWidth(lineText[:lo])
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		hi := clamp(int(end.Col)-1, len(lineText))
		if hi > lo {
			width = max(1, runewidth.StringWidth(lineText[lo:hi]))
		}
	}
	fmt.Fprintf(w, "      | %s%s\n",
		strings.Repeat(" ", pad), sev.Sprint(strings.Repeat("^", width)))
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
