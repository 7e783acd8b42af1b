// Package observability provides formatted terminal output for the CLI: the boxed preview and advisory reports.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// innerWidth is the room left for text between the borders
	innerWidth = boxWidth - 4
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// NamePlaceholder stands in for a blank full name in the preview
const NamePlaceholder = "Your Name"

// Printer handles formatted output for the terminal
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, lines []string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, truncate(title, innerWidth))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPreview draws the live preview of a document. Long lines wrap inside
// the box; nothing is cut.
func (p *Printer) PrintPreview(preview rendering.Preview) {
	if strings.TrimSpace(preview.Header.Name) == "" {
		preview.Header.Name = NamePlaceholder
	}

	text := strings.TrimSuffix(rendering.FormatPreview(preview), "\n")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, wrap(line, innerWidth)...)
	}

	p.printBox("RESUME PREVIEW", lines)
}

// PrintViolations outputs the advisory findings for a document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations.Count() == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, "✅ NO MISSING OR INVALID FIELDS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	lines := []string{fmt.Sprintf("Found %d issues:", violations.Count()), ""}
	for i, v := range violations.Violations {
		location := v.Section
		if v.ItemID != nil {
			location = fmt.Sprintf("%s[%s]", v.Section, *v.ItemID)
		}
		marker := "⚠"
		if v.Severity == types.SeverityInfo {
			marker = "ℹ"
		}
		lines = append(lines, truncate(fmt.Sprintf("%s %s", marker, location), innerWidth))
		lines = append(lines, truncate("  "+v.Details, innerWidth))
		if i < len(violations.Violations)-1 {
			lines = append(lines, "")
		}
	}

	p.printBox("COMPLETENESS CHECK", lines)
}

// PrintSampleBullets shows example experience bullets as writing guidance.
func (p *Printer) PrintSampleBullets(bullets []string) {
	if len(bullets) == 0 {
		return
	}

	var lines []string
	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		lines = append(lines, wrap("• "+bullets[i], innerWidth)...)
	}
	if len(bullets) > maxItemsToShow {
		lines = append(lines, fmt.Sprintf("... and %d more", len(bullets)-maxItemsToShow))
	}

	p.printBox("SAMPLE BULLETS", lines)
}

// PrintExported reports where an export was written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExported(path string) {
	fmt.Fprintf(p.out, "✅ Resume exported to %s\n", path)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrap splits s into lines of at most width runes. Embedded newlines always
// break; otherwise it breaks on spaces when it can.
func wrap(s string, width int) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapLine(line, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}

	var lines []string
	for len(runes) > width {
		cut := width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, strings.TrimRight(string(runes[:cut]), " "))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}
