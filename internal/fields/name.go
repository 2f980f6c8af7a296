package fields

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/entity"
)

const (
	// nameWindow limits person recognition to the header region: names rarely
	// appear deep in body text and recognizing the full document is slow.
	nameWindow = 2000

	// Token-count bounds filter single-token false positives and multi-word
	// recognizer noise.
	minNameTokens = 2
	maxNameTokens = 4
)

// Name returns the first person entity in the document header whose token
// count is plausible for a personal name, or "" when the recognizer is
// unavailable or nothing qualifies. An empty result is a degraded-mode
// outcome, not an error.
func Name(text string, rec entity.Recognizer) string {
	for _, person := range rec.People(headWindow(text, nameWindow)) {
		tokens := len(strings.Fields(person))
		if tokens >= minNameTokens && tokens <= maxNameTokens {
			return strings.TrimSpace(person)
		}
	}
	return ""
}

// headWindow cuts text to at most n bytes without splitting a rune.
func headWindow(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
