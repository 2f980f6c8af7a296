package fields

import "regexp"

// minPhoneDigits filters out short numeric noise such as page numbers and
// years that the permissive candidate regex over-matches.
const minPhoneDigits = 10

var (
	emailRe = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)

	// Loose phone shape: optional country code, optional parenthesized area
	// code, grouped digits with dot, hyphen or space separators.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{2,4}\)?[\s.-]?)?\d{3,4}[\s.-]?\d{3,4}`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

// Email returns the first email address in document order, exactly as it
// appears in the text, or "" when none is found.
func Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone-shaped substring whose digit-only length is at
// least minPhoneDigits, or "" when none survives the filter.
func Phone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		digits := nonDigitRe.ReplaceAllString(candidate, "")
		if len(digits) >= minPhoneDigits {
			return candidate
		}
	}
	return ""
}
