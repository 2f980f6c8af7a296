// Package extraction turns PDF and DOCX resume documents into plain text.
package extraction

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// UnsupportedFormatError indicates a document format the extractor cannot
// handle. It is a caller mistake and is surfaced before extraction is
// attempted.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (only pdf and docx are supported)", e.Format)
}

// ParseFormat derives the document format from a filename extension.
func ParseFormat(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}
