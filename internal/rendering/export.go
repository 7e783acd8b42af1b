package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultExportSuffix ends every export file name unless configured otherwise
const DefaultExportSuffix = "Meta_AI_Research"

// Export is the downloadable artifact: a file name and its plain-text content
type Export struct {
	FileName string
	Content  []byte
}

// FormatText renders doc as the plain-text resume.
//
// Header lines are trimmed like every other optional line: the contact line
// joins only the non-blank of email and phone, and a blank location produces
// no line at all instead of an empty one.
func FormatText(doc types.Document) string {
	return FormatPreview(BuildPreview(doc))
}

// FormatPreview lays p out as plain text. Each section is preceded by a blank line.
func FormatPreview(p Preview) string {
	var sb strings.Builder

	sb.WriteString(p.Header.Name)
	sb.WriteString("\n")
	for _, line := range p.Header.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for _, section := range p.Sections {
		sb.WriteString("\n")
		sb.WriteString(section.Title)
		sb.WriteString("\n")
		for _, entry := range section.Entries {
			if section.Spaced {
				sb.WriteString("\n")
			}
			for _, line := range entry.Lines {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// ExportFileName returns "<full name>_Resume_<suffix>.txt" with every run of
// whitespace in the name replaced by a single underscore. An empty suffix
// uses DefaultExportSuffix.
func ExportFileName(fullName, suffix string) string {
	if suffix == "" {
		suffix = DefaultExportSuffix
	}
	return fmt.Sprintf("%s_Resume_%s.txt", collapseWhitespace(fullName), suffix)
}

// ExportDocument renders doc into its export artifact. It depends only on its
// arguments, so exporting the same document twice yields identical bytes.
func ExportDocument(doc types.Document, suffix string) Export {
	return Export{
		FileName: ExportFileName(doc.Header.FullName, suffix),
		Content:  []byte(FormatText(doc)),
	}
}

// WriteExport writes the artifact into dir and returns the written path
func WriteExport(dir string, export Export) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to create output directory %s", dir),
			Cause:   err,
		}
	}

	path := filepath.Join(dir, export.FileName)
	if err := os.WriteFile(path, export.Content, 0644); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to write export %s", path),
			Cause:   err,
		}
	}
	return path, nil
}

func collapseWhitespace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}
