// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ColorMode controls when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag or config value to a ColorMode.
// The empty string selects ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// Enabled reports whether mode turns on color for f.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(f)
}

// palette holds the color roles used by the Writer.
type palette struct {
	title   *color.Color
	section *color.Color
	label   *color.Color
	pass    *color.Color
	fail    *color.Color
	warn    *color.Color
	hint    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:   color.New(color.Bold, color.FgCyan),
		section: color.New(color.Bold),
		label:   color.New(color.Faint),
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		hint:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.title, p.section, p.label, p.pass, p.fail, p.warn, p.hint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Writer handles CLI output formatting.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
	colors  palette
	numbers *message.Printer
	title   cases.Caser
}

// New creates a Writer on stdout and stderr, colored when stdout is a terminal.
func New() *Writer {
	return NewWithWriters(os.Stdout, os.Stderr, ColorAuto.Enabled(os.Stdout))
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:     out,
		err:     err,
		color:   color,
		colors:  newPalette(color),
		numbers: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables verbose mode.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// IsVerbose reports whether verbose mode is on.
func (w *Writer) IsVerbose() bool {
	return w.verbose && !w.quiet
}

// SetColor turns color on or off.
func (w *Writer) SetColor(enabled bool) {
	w.color = enabled
	w.colors = newPalette(enabled)
}

// Out returns the writer used for regular output.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Verbose prints a detail line only in verbose mode.
func (w *Writer) Verbose(format string, args ...interface{}) {
	if !w.verbose || w.quiet {
		return
	}
	w.Println("%s", w.colors.hint.Sprintf(format, args...))
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s", w.colors.pass.Sprintf(format, args...))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Errorln("%s %s", w.colors.warn.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// ErrorPrefix prints an error message with the vvresults prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	w.Errorln("%s %s", w.colors.fail.Sprint("vvresults:"), fmt.Sprintf(format, args...))
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println("%s", w.colors.hint.Sprintf(format, args...))
}

// Section prints a title-cased section header.
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	w.Println("")
	w.Println("%s", w.colors.section.Sprintf("=== %s ===", w.Title(title)))
}

// Title title-cases s for headings.
func (w *Writer) Title(s string) string {
	return w.title.String(s)
}

// Count formats n with thousands separators.
func (w *Writer) Count(n int) string {
	return w.numbers.Sprintf("%d", n)
}

// Percent formats a 0..1 rate as a percentage with one decimal.
func (w *Writer) Percent(rate float64) string {
	return w.numbers.Sprintf("%.1f%%", rate*100)
}

// Pass colors s as passing.
func (w *Writer) Pass(s string) string {
	return w.colors.pass.Sprint(s)
}

// Fail colors s as failing.
func (w *Writer) Fail(s string) string {
	return w.colors.fail.Sprint(s)
}

// Cell is a table cell with an optional color applied after padding.
type Cell struct {
	Text  string
	color *color.Color
}

// Plain returns an uncolored cell.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// PassCell returns a cell colored as passing.
func (w *Writer) PassCell(text string) Cell {
	return Cell{Text: text, color: w.colors.pass}
}

// FailCell returns a cell colored as failing.
func (w *Writer) FailCell(text string) Cell {
	return Cell{Text: text, color: w.colors.fail}
}

// Table prints a simple table of plain cells.
func (w *Writer) Table(headers []string, rows [][]string) {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, text := range row {
			cells[i][j] = Plain(text)
		}
	}
	w.CellTable(headers, cells)
}

// CellTable prints a table whose cells may be colored. Widths are computed on
// the uncolored text.
func (w *Writer) CellTable(headers []string, rows [][]Cell) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell.Text) > widths[i] {
				widths[i] = len(cell.Text)
			}
		}
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, w.colors.section.Sprint(pad(h, widths[i])))
	}
	w.Println("%s", strings.TrimRight(strings.Join(headerParts, "  "), " "))

	var sepParts []string
	for _, width := range widths {
		sepParts = append(sepParts, strings.Repeat("-", width))
	}
	w.Println("%s", w.colors.label.Sprint(strings.Join(sepParts, "  ")))

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			text := pad(cell.Text, widths[i])
			if cell.color != nil {
				text = cell.color.Sprint(text)
			}
			rowParts = append(rowParts, text)
		}
		w.Println("%s", strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	w.Println("%s", w.colors.title.Sprintf("=== %s ===", w.Title(title)))
	w.Println("")
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	w.Println("  %s %s", w.colors.label.Sprint(label+":"), value)
}

// SummaryPassed prints a passed items summary.
func (w *Writer) SummaryPassed(label, value string) {
	w.Println("  %s %s", w.colors.label.Sprint(label+":"), w.colors.pass.Sprint(value))
}

// SummaryFailed prints a failed items summary.
func (w *Writer) SummaryFailed(label, value string) {
	w.Println("  %s %s", w.colors.label.Sprint(label+":"), w.colors.fail.Sprint(value))
}

// SummarySectionLabel prints a label for a summary section (e.g., "Failures:").
func (w *Writer) SummarySectionLabel(label string) {
	w.Println("  %s", w.colors.label.Sprint(label))
}

// FailureLine prints one failing test with its reason.
func (w *Writer) FailureLine(name, lang, reason string) {
	w.Println("    %s %s %s", w.colors.fail.Sprint("x"), name, w.colors.hint.Sprintf("(%s) %s", lang, reason))
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.colors.pass.Sprintf(format, args...))
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	w.Println("%s", w.colors.fail.Sprintf(format, args...))
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
