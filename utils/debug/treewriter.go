// Package debug renders indented text trees for document dumps that end up
// in logs and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

// Line writes a formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes a labeled value at the given depth. Values containing
// control characters or quotes are escaped so a dump stays one line per
// entry.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	if plain(value) {
		tw.b.WriteString(value)
	} else {
		tw.b.WriteString(strconv.Quote(value))
	}
	tw.b.WriteByte('\n')
}

func (tw *TreeWriter) indent(depth int) {
	for ; depth > 0; depth-- {
		tw.b.WriteString("  ")
	}
}

func plain(s string) bool {
	for _, r := range s {
		if r < ' ' || r == '"' || r == '\\' {
			return false
		}
	}
	return true
}

// Clip truncates long values, sequence data mostly, for display.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
