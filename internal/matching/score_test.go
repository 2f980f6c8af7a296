package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func fullFields() *types.ExtractedFields {
	return &types.ExtractedFields{
		Skills: []string{"AWS", "Python"},
		Education: types.Education{
			Degrees: []string{"BSc"},
		},
		Experience: types.Experience{
			Companies: []string{"Acme Corp"},
		},
	}
}

func TestScore_EmptyJobDescription(t *testing.T) {
	for _, jd := range []string{"", "   ", "\n\t"} {
		assert.Equal(t, 0.0, Score("any resume text", jd, fullFields()))
	}
}

func TestScore_JobDescriptionWithoutTokens(t *testing.T) {
	// Punctuation-only input normalizes to whitespace and yields no tokens.
	assert.Equal(t, 0.0, Score("resume", "!!! ??? ---", fullFields()))
}

func TestScore_NilFields(t *testing.T) {
	got := Score("python developer", "python developer", nil)
	assert.Equal(t, 60.0, got)
}

func TestScore_TypicalScenario(t *testing.T) {
	resume := "Python, AWS, Docker"
	jd := "Looking for a Python developer with AWS experience"
	f := &types.ExtractedFields{Skills: []string{"AWS", "Python"}}

	got := Score(resume, jd, f)

	// Base: overlap {python, aws} over 8 job words = 2/8*60 = 15.
	// Skill: 7 job tokens longer than 2 chars, 2 matched = 2/7*30 ≈ 8.57.
	// No education/experience bonus.
	assert.Equal(t, 23.57, got)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestScore_FullOverlapWithSections(t *testing.T) {
	text := "python developer"
	f := fullFields()

	got := Score(text, text, f)

	// Base maxes out at 60; both section bonuses apply; one of two
	// qualifying job tokens matches an extracted skill (15).
	assert.Equal(t, 85.0, got)
}

func TestScore_Bounded(t *testing.T) {
	texts := []string{"", "a", "python python python", "x y z 1 2 3"}
	for _, resume := range texts {
		for _, jd := range texts {
			got := Score(resume, jd, fullFields())
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	}
}

func TestScore_MultiWordSkillNeverMatches(t *testing.T) {
	f := &types.ExtractedFields{Skills: []string{"Machine Learning"}}

	// "machine" and "learning" are separate job tokens; the two-word skill
	// string matches neither, so only base overlap contributes.
	got := Score("machine learning", "machine learning", f)
	assert.Equal(t, 60.0, got)
}

func TestScore_PunctuationSplitsWords(t *testing.T) {
	// "state-of-the-art" must tokenize into four words, not merge into one.
	got := Score("state of the art", "state-of-the-art", nil)
	assert.Equal(t, 60.0, got)
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	// 1/3 overlap: 20 points base would be 19.999… without rounding.
	got := Score("alpha", "alpha beta gamma", nil)
	assert.Equal(t, 20.0, got)

	// 2/7 skill fraction produces a repeating decimal.
	got = Score("Python, AWS, Docker", "Looking for a Python developer with AWS experience",
		&types.ExtractedFields{Skills: []string{"AWS", "Python"}})
	assert.Equal(t, 23.57, got)
}

func TestScore_SectionBonusRequiresContent(t *testing.T) {
	empty := &types.ExtractedFields{}
	withEdu := &types.ExtractedFields{Education: types.Education{Institutions: []string{"X University"}}}

	base := Score("go", "go go go", empty)
	edu := Score("go", "go go go", withEdu)

	assert.Equal(t, 5.0, edu-base)
}
