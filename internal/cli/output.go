package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/roster/internal/model"
	"golang.org/x/term"
)

// ANSI codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
	styleBold    = "\033[1m"
	styleReverse = "\033[7m"
)

// ColorMode selects when ANSI colours are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
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

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode enables colours for ColorAlways, disables them for
// ColorNever and falls back to terminal detection on w otherwise.
func ApplyColorMode(mode ColorMode, w io.Writer) {
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w any) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Bold returns s in bold if colors are enabled.
func Bold(s string) string { return paint(styleBold, s) }

// DefaultMaxNameWidth is the default maximum visible width for the name column.
const DefaultMaxNameWidth = 30

// Table formats columnar output with automatic column width calculation.
type Table struct {
	header    []string
	rows      [][]string
	marked    map[int]bool // rows drawn in reverse video
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// SetHeader sets a header row rendered in bold above the rows.
func (t *Table) SetHeader(cols ...string) {
	t.header = cols
	t.track(cols)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// AddMarkedRow adds a row that is highlighted when colours are enabled and
// prefixed with "*" otherwise.
func (t *Table) AddMarkedRow(cols ...string) {
	if t.marked == nil {
		t.marked = make(map[int]bool)
	}
	t.marked[len(t.rows)] = true
	t.AddRow(cols...)
}

// track widens column widths to fit cols, capped by any max width.
func (t *Table) track(cols []string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
}

// Render writes the table to w with columns separated by two spaces.
// Nothing is written for a table without rows.
func (t *Table) Render(w io.Writer) {
	if len(t.rows) == 0 {
		return
	}

	// Leave room for the selection marker when colours are off.
	gutter := ""
	if len(t.marked) > 0 && !colorEnabled {
		gutter = "  "
	}

	if t.header != nil {
		fmt.Fprintln(w, gutter+Bold(t.formatRow(t.header)))
	}
	for i, row := range t.rows {
		line := t.formatRow(row)
		switch {
		case !t.marked[i]:
			fmt.Fprintln(w, gutter+line)
		case colorEnabled:
			fmt.Fprintln(w, styleReverse+line+colorReset)
		default:
			fmt.Fprintln(w, "* "+line)
		}
	}
}

func (t *Table) formatRow(row []string) string {
	parts := make([]string, 0, len(row))
	for i, col := range row {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		if i < len(t.colWidths)-1 && i < len(row)-1 {
			col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
		}
		parts = append(parts, col)
	}
	return strings.Join(parts, "  ")
}

// RenderRoster writes employees as a table, highlighting the selected id.
// maxName caps the name column; 0 means no cap.
func RenderRoster(w io.Writer, employees []model.Employee, selected string, maxName int) {
	if len(employees) == 0 {
		fmt.Fprintln(w, Gray("No employees."))
		return
	}

	table := NewTable()
	if maxName > 0 {
		table.SetMaxWidth(1, maxName)
	}
	table.SetHeader("ID", "NAME", "DESIGNATION", "GENDER", "SALARY")
	for _, e := range employees {
		cols := []string{e.ID, e.Name, e.Designation, string(e.Gender), e.Salary}
		if selected != "" && e.ID == selected {
			table.AddMarkedRow(cols...)
		} else {
			table.AddRow(cols...)
		}
	}
	table.Render(w)
}

// Truncate returns s truncated to maxWidth visible characters. If s exceeds
// maxWidth, it is cut and "..." is appended (counted within the limit).
// ANSI escape codes are preserved up to the truncation point with a reset appended.
// Below 3 columns there is no room for the ellipsis and s is hard-cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	if maxWidth < len(ellipsis) {
		cut, _ := cutVisible(s, maxWidth)
		return cut
	}

	cut, hasAnsi := cutVisible(s, maxWidth-len(ellipsis))
	cut += ellipsis
	if hasAnsi {
		cut += colorReset
	}
	return cut
}

// cutVisible keeps the first n visible runes of s along with every escape
// sequence that precedes the cut. It also reports whether s contained any
// escape sequence before the cut.
func cutVisible(s string, n int) (string, bool) {
	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
			hasAnsi = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case visible >= n:
			return b.String(), hasAnsi
		default:
			visible++
		}
		b.WriteRune(r)
	}
	return b.String(), hasAnsi
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}

	return width
}
