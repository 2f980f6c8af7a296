package fields

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// maxInstitutions caps the captured institution lines per resume.
const maxInstitutions = 6

var (
	degreeRe = regexp.MustCompile(
		`(?i)\b(B\.?Sc\.?|BSc|B\.?Eng\.?|BE|B\.?Tech|M\.?Sc\.?|MSc|M\.?Eng\.?|ME|M\.?Tech|MBA|Ph\.?D|B\.?A|M\.?A|B\.?Com|M\.?Com)\b`)

	institutionRe = regexp.MustCompile(`(?i)\b(university|institute|college|polytechnic)\b`)
)

// EducationInfo extracts degree abbreviations (in order of appearance,
// duplicates retained) and institution lines (trimmed verbatim, capped at
// maxInstitutions, in order of appearance).
func EducationInfo(text string) types.Education {
	degrees := degreeRe.FindAllString(text, -1)

	var institutions []string
	for _, line := range strings.Split(text, "\n") {
		if institutionRe.MatchString(line) {
			institutions = append(institutions, strings.TrimSpace(line))
			if len(institutions) == maxInstitutions {
				break
			}
		}
	}

	return types.Education{Degrees: degrees, Institutions: institutions}
}
