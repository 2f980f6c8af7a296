package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDOCX reads word/document.xml out of the DOCX container and strips the
// markup. Paragraph closing tags become newlines so document order survives.
func extractDOCX(data []byte) Result {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to open docx container: %w", err)}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Result{Err: fmt.Errorf("failed to open document.xml: %w", err)}
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return Result{Err: fmt.Errorf("failed to read document.xml: %w", err)}
		}
		break
	}
	if len(docXML) == 0 {
		return Result{Err: fmt.Errorf("no document.xml found in docx")}
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = docxTagRe.ReplaceAllString(text, " ")

	return Result{Text: normalizeWhitespace(text)}
}
