// Package diagnostics: colored pretty printing of source-anchored reports.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// TabWidth is the fixed width tab characters are expanded to before
// rendering. Expansion keeps caret alignment independent of terminal
// tab stops.
const TabWidth = 4

// DiagnosticColorer defines the interface for coloring diagnostic output.
type DiagnosticColorer interface {
	Title() string
	PrimaryColor(text string) string
}

// ErrorColorer provides coloring for error diagnostics.
type ErrorColorer struct{}

// Title returns the title for errors.
func (e ErrorColorer) Title() string {
	return "error"
}

// PrimaryColor returns the colored text for errors.
func (e ErrorColorer) PrimaryColor(text string) string {
	return color.New(color.FgRed, color.Bold).Sprint(text)
}

// WarningColorer provides coloring for warning diagnostics.
type WarningColorer struct{}

// Title returns the title for warnings.
func (w WarningColorer) Title() string {
	return "warning"
}

// PrimaryColor returns the colored text for warnings.
func (w WarningColorer) PrimaryColor(text string) string {
	return color.New(color.FgYellow, color.Bold).Sprint(text)
}

// Render formats a diagnostic as a plain-text report with no color codes.
// Given the same source, span and message it produces byte-identical
// output, which makes it suitable for golden tests and IDE integration.
func Render(fileName, text string, span Span, message string) string {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var sb strings.Builder
	_ = PrettyPrint(&sb, fileName, text, span, message, ErrorColorer{})
	return sb.String()
}

// PrettyPrint pretty prints an error or warning, including the offending
// portion of the source code, for human-friendly reading.
func PrettyPrint(
	w io.Writer,
	fileName string,
	text string,
	span Span,
	description string,
	colorer DiagnosticColorer,
) error {
	// Disable colors if NO_COLOR environment variable is set
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	lines := strings.Split(text, "\n")
	startLine := clampLine(span.Start.Line, len(lines))
	endLine := clampLine(span.End.Line, len(lines))

	gutter := len(fmt.Sprint(endLine))
	if gutter < 2 {
		gutter = 2
	}

	titleColor := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)

	titleColor.Fprintf(w, "%s: ", colorer.Title())
	titleColor.Fprintf(w, "%s\n", description)

	arrowColor.Fprintf(w, "%s--> ", strings.Repeat(" ", gutter))
	filePathColor.Fprintf(w, "%s:%d:%d\n", fileName, span.Start.Line, span.Start.Column)

	lineNumColor.Fprintf(w, "%s |\n", strings.Repeat(" ", gutter))

	if startLine == endLine {
		renderSingleLine(w, lineNumColor, colorer, gutter, startLine, lines[startLine-1], span)
	} else {
		renderMultiLine(w, lineNumColor, colorer, gutter, startLine, endLine, lines, span)
	}

	lineNumColor.Fprintf(w, "%s |\n", strings.Repeat(" ", gutter))
	return nil
}

// renderSingleLine prints the offending line with a caret underline beneath
// exactly the column range of the span.
func renderSingleLine(
	w io.Writer,
	lineNum *color.Color,
	colorer DiagnosticColorer,
	gutter, lineNo int,
	line string,
	span Span,
) {
	expanded := expandTabs(line)
	startCol := expandColumn(line, span.Start.Column)
	endCol := expandColumn(line, span.End.Column)

	width := endCol - startCol
	if width < 1 {
		// Zero-width span: a single caret marks the insertion point.
		width = 1
	}

	lineNum.Fprintf(w, "%*d | ", gutter, lineNo)
	fmt.Fprintf(w, "%s\n", expanded)

	lineNum.Fprintf(w, "%s | ", strings.Repeat(" ", gutter))
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", startCol-1), colorer.PrimaryColor(strings.Repeat("^", width)))
}

// renderMultiLine prints all spanned lines inside a bracket channel: an
// opening corner under the first line at the start column and a closing
// corner under the last line at the end column.
func renderMultiLine(
	w io.Writer,
	lineNum *color.Color,
	colorer DiagnosticColorer,
	gutter, startLine, endLine int,
	lines []string,
	span Span,
) {
	startCol := expandColumn(lines[startLine-1], span.Start.Column)
	endCol := expandColumn(lines[endLine-1], span.End.Column)

	lineNum.Fprintf(w, "%*d | ", gutter, startLine)
	fmt.Fprintf(w, "  %s\n", expandTabs(lines[startLine-1]))

	lineNum.Fprintf(w, "%s | ", strings.Repeat(" ", gutter))
	fmt.Fprintf(w, "%s\n", colorer.PrimaryColor(" "+strings.Repeat("_", startCol)+"^"))

	for lineNo := startLine + 1; lineNo <= endLine; lineNo++ {
		lineNum.Fprintf(w, "%*d | ", gutter, lineNo)
		fmt.Fprintf(w, "%s%s\n", colorer.PrimaryColor("| "), expandTabs(lines[lineNo-1]))
	}

	closing := endCol - 1
	if closing < 1 {
		closing = 1
	}
	lineNum.Fprintf(w, "%s | ", strings.Repeat(" ", gutter))
	fmt.Fprintf(w, "%s\n", colorer.PrimaryColor("|"+strings.Repeat("_", closing)+"^"))
}

// expandTabs replaces each tab with TabWidth spaces.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", TabWidth))
}

// expandColumn maps a 1-based column of the raw line onto the tab-expanded
// line.
func expandColumn(line string, column int) int {
	col := column
	seen := 0
	for _, r := range line {
		seen++
		if seen >= column {
			break
		}
		if r == '\t' {
			col += TabWidth - 1
		}
	}
	if col < 1 {
		col = 1
	}
	return col
}

func clampLine(line, max int) int {
	if line < 1 {
		return 1
	}
	if line > max {
		return max
	}
	return line
}
