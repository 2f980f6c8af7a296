// Package matching scores how well a resume matches a free-text job description.
//
// The model is deliberately simple and explainable: raw vocabulary overlap
// dominates, taxonomy skill matches add moderate confidence, and structural
// completeness is a minor tiebreaker. It needs no training data.
package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the scoring components. The total possible score is 100.
const (
	baseWeight   = 60.0 // vocabulary overlap with the job description
	skillWeight  = 30.0 // taxonomy skills appearing as job-description tokens
	sectionBonus = 5.0  // per non-empty education / experience section

	// minSkillTokenLen drops short stopword-like tokens ("a", "of", "to")
	// from the job-description side of the skill comparison.
	minSkillTokenLen = 2
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// Score computes a relevance score in [0, 100], rounded to two decimals.
// An empty or token-free job description scores exactly 0.
func Score(resumeText, jobDescription string, f *types.ExtractedFields) float64 {
	if strings.TrimSpace(jobDescription) == "" {
		return 0.0
	}

	resumeWords := tokenSet(normalize(resumeText))
	jobWords := tokenSet(normalize(jobDescription))
	if len(jobWords) == 0 {
		return 0.0
	}

	overlap := 0
	for w := range resumeWords {
		if jobWords[w] {
			overlap++
		}
	}
	score := float64(overlap) / float64(len(jobWords)) * baseWeight

	score += skillScore(f, jobWords)

	if f != nil {
		if !f.Education.IsEmpty() {
			score += sectionBonus
		}
		if !f.Experience.IsEmpty() {
			score += sectionBonus
		}
	}

	return math.Round(math.Min(100, score)*100) / 100
}

// skillScore rewards extracted skills that appear verbatim among the
// job-description tokens. Multi-word skills ("Machine Learning") can never
// match a single token; that asymmetry is retained from the reference scoring
// model.
func skillScore(f *types.ExtractedFields, jobWords map[string]bool) float64 {
	if f == nil || len(f.Skills) == 0 {
		return 0
	}

	jobSkillTokens := make(map[string]bool)
	for w := range jobWords {
		if len(w) > minSkillTokenLen {
			jobSkillTokens[w] = true
		}
	}
	if len(jobSkillTokens) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range f.Skills {
		if jobSkillTokens[strings.ToLower(skill)] {
			matched++
		}
	}

	return float64(matched) / float64(len(jobSkillTokens)) * skillWeight
}

// normalize lowercases text and replaces every character that is not
// alphanumeric or whitespace with a space, so punctuation never merges words.
func normalize(text string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(text), " ")
}

// tokenSet splits normalized text into a set of unique words.
func tokenSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		words[w] = true
	}
	return words
}
