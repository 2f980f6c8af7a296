package extraction

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the plain-text content out of a PDF document. The pdf
// library panics on some malformed inputs, so the whole attempt is wrapped in
// a recover and any failure is reported through the Result.
func extractPDF(data []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("pdf decode panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to open pdf: %w", err)}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return Result{Err: fmt.Errorf("failed to extract pdf text: %w", err)}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Result{Err: fmt.Errorf("failed to read pdf text: %w", err)}
	}

	return Result{Text: normalizeWhitespace(buf.String())}
}
