package fields

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/types"
)

// Caps on experience lists per resume.
const (
	maxCompanies = 12
	maxDateSpans = 12
)

// Date spans such as "Jan 2020 - Mar 2023", "2019 – Present" or
// "2017 to 2019". Separators are hyphen, en-dash or the word "to".
var dateSpanRe = regexp.MustCompile(
	`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s*\d{2,4}|\d{4})` +
		`\s*(?:-|–|to)\s*` +
		`(present|current|\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s*\d{2,4})\b`)

// ExperienceInfo extracts company mentions via the recognizer (empty when the
// recognizer is unavailable) and employment date spans via pattern matching,
// each capped and in order of appearance.
func ExperienceInfo(text string, rec entity.Recognizer) types.Experience {
	companies := rec.Organizations(text)
	if len(companies) > maxCompanies {
		companies = companies[:maxCompanies]
	}

	spans := dateSpanRe.FindAllString(text, maxDateSpans)

	return types.Experience{Companies: companies, DateSpans: spans}
}
