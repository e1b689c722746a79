// Package cli provides terminal output helpers for taskd commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// TermWidth returns the visible width of the terminal behind w, or
// fallback when w is not a terminal or the size cannot be determined.
func TermWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// StatusColor wraps a task status in a color matching its meaning:
// done is green, in-progress is yellow, everything else gray.
func StatusColor(status string) string {
	if !colorEnabled {
		return status
	}
	switch strings.ToLower(status) {
	case "done", "completed":
		return colorGreen + status + colorReset
	case "in-progress", "in progress":
		return colorYellow + status + colorReset
	default:
		return colorGray + status + colorReset
	}
}

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return colorRed + s + colorReset
}

// Truncate returns s cut to maxWidth characters. If s exceeds maxWidth,
// it is shortened and "..." is appended within the limit.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	if maxWidth <= len(ellipsis) {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}

// Table formats columnar output with automatic column width calculation.
// Column widths are computed before any ANSI coloring is applied, so
// callers should color cell content only via the Color column hook.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max width
	colors    map[int]func(string) string
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum width for a column. Content exceeding
// the limit is truncated with an ellipsis.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// SetColor sets a color function applied to a column at render time.
func (t *Table) SetColor(col int, fn func(string) string) {
	if t.colors == nil {
		t.colors = make(map[int]func(string) string)
	}
	t.colors[col] = fn
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	for i, col := range cols {
		width := len([]rune(col))
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			padding := 0
			if i < len(t.colWidths)-1 {
				padding = t.colWidths[i] - len([]rune(col))
			}
			if fn, ok := t.colors[i]; ok {
				col = fn(col)
			}
			parts = append(parts, col+strings.Repeat(" ", padding))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}
