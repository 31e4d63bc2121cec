package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

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

// PrettyPrint pretty prints an error or warning, including the offending
// portion of the script, for human-friendly reading.
func PrettyPrint(
	w io.Writer,
	fileName string,
	text string,
	span Span,
	description string,
	colorer DiagnosticColorer,
) error {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	if span.Start > len(text) {
		span.Start = len(text)
	}
	if span.End > len(text) {
		span.End = len(text)
	}

	lineNum := strings.Count(text[:span.Start], "\n")
	lineStart := 0
	if idx := strings.LastIndexByte(text[:span.Start], '\n'); idx >= 0 {
		lineStart = idx + 1
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	line := ""
	if lineNum < len(lines) {
		line = lines[lineNum]
	}
	startInLine := span.Start - lineStart
	endInLine := startInLine + (span.End - span.Start)
	if endInLine > len(line) {
		endInLine = len(line)
	}
	if startInLine > len(line) {
		startInLine = len(line)
	}

	arrow := color.New(color.FgCyan, color.Bold)
	lineCol := color.New(color.FgCyan, color.Bold)
	filePath := color.New(color.Underline)

	if _, err := fmt.Fprintf(w, "%s: %s\n", colorer.PrimaryColor(colorer.Title()), color.New(color.Bold).Sprint(description)); err != nil {
		return err
	}
	arrow.Fprintf(w, "  --> ")
	filePath.Fprintf(w, "%s:%d\n", fileName, lineNum+1)
	lineCol.Fprintf(w, "   | \n")

	if line != "" {
		lineCol.Fprintf(w, "%2d | ", lineNum+1)
		fmt.Fprintf(w, "%s%s%s\n", line[:startInLine], colorer.PrimaryColor(line[startInLine:endInLine]), line[endInLine:])
	}

	lineCol.Fprintf(w, "   | ")
	fmt.Fprintf(w, "%s", strings.Repeat(" ", startInLine))
	if endInLine > startInLine {
		fmt.Fprintf(w, "%s\n", colorer.PrimaryColor(strings.Repeat("^", endInLine-startInLine)))
	} else {
		fmt.Fprintf(w, "%s\n", colorer.PrimaryColor("^"))
	}
	lineCol.Fprintf(w, "   | \n")
	return nil
}
