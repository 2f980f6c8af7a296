package fields

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Skills returns the deduplicated set of taxonomy terms found in the text by
// case-insensitive substring match, plus any matched domain phrases
// title-cased. The result is sorted ascending for determinism.
func Skills(text string, tax Taxonomy) []string {
	low := strings.ToLower(text)
	found := make(map[string]bool)

	for _, terms := range tax {
		for _, term := range terms {
			if strings.Contains(low, strings.ToLower(term)) {
				found[term] = true
			}
		}
	}

	for _, phrase := range domainPhrases {
		if strings.Contains(low, phrase) {
			found[titleCaser.String(phrase)] = true
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
