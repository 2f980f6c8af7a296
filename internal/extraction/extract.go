package extraction

import "strings"

// Result is the outcome of a text extraction attempt. A decode failure is
// recorded in Err and leaves Text empty; it is not propagated as an error so
// that one malformed document cannot abort a batch. Err lets callers and tests
// tell "extraction produced nothing" apart from "extraction was never
// attempted".
type Result struct {
	Text string
	Err  error
}

// Empty reports whether the extraction yielded no usable text.
func (r Result) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// Extract converts document bytes of the given format into plain text.
// It returns an error only for unsupported formats; internal decode failures
// (corrupt files, encrypted content, unsupported encodings) degrade to an
// empty Result with the cause recorded.
func Extract(data []byte, format Format) (Result, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data), nil
	case FormatDOCX:
		return extractDOCX(data), nil
	default:
		return Result{}, &UnsupportedFormatError{Format: string(format)}
	}
}

// normalizeWhitespace collapses runs of spaces and tabs while preserving line
// structure, so institution-line matching keeps working downstream.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = strings.Join(lines, "\n")

	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}
