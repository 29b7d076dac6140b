package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"arkmotors/internal/normalize"
)

var (
	titleColor   = color.New(color.Bold, color.FgCyan)
	sectionColor = color.New(color.Bold)
	totalColor   = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to create JSON output: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	titleColor.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	sectionColor.Fprintf(w, "=== %s ===\n", title)
}

func writeTotal(w io.Writer, label string, amount int64) {
	totalColor.Fprintf(w, "%s: %s원\n", label, money(amount))
}

// textTable aligns columns by terminal display width. Hangul and other East
// Asian wide characters take two cells, which a rune count would miss.
type textTable struct {
	w    io.Writer
	rows [][]string
}

// newTable returns a table writing to w; callers must Flush
func newTable(w io.Writer, header ...string) *textTable {
	tw := &textTable{w: w}
	if len(header) > 0 {
		tw.rows = append(tw.rows, header)
	}
	return tw
}

func row(tw *textTable, cells ...string) {
	tw.rows = append(tw.rows, cells)
}

// Flush writes the buffered rows with two spaces between columns
func (tw *textTable) Flush() error {
	var widths []int
	for _, r := range tw.rows {
		for i, c := range r {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], displayWidth(c))
		}
	}

	var b strings.Builder
	for _, r := range tw.rows {
		var line strings.Builder
		for i, c := range r {
			line.WriteString(c)
			line.WriteString(strings.Repeat(" ", widths[i]-displayWidth(c)+2))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	tw.rows = nil
	_, err := io.WriteString(tw.w, b.String())
	return err
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func money(n int64) string {
	return normalize.FormatCurrency(n)
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
