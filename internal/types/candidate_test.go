package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateRecord(t *testing.T) {
	fields := &ExtractedFields{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "+1 (415) 555-2671",
		Skills: []string{"AWS", "Python"},
		Education: Education{
			Degrees:      []string{"BSc"},
			Institutions: []string{"Example University"},
		},
		Experience: Experience{
			Companies: []string{"Acme Corp"},
			DateSpans: []string{"2019 - Present"},
		},
	}

	rec, err := NewCandidateRecord("jane.pdf", fields, 72.5)
	require.NoError(t, err)

	assert.Equal(t, "jane.pdf", rec.Filename)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "AWS, Python", rec.Skills)
	assert.Equal(t, 72.5, rec.PredictedScore)

	var edu Education
	require.NoError(t, json.Unmarshal([]byte(rec.Education), &edu))
	assert.Equal(t, []string{"BSc"}, edu.Degrees)

	var exp Experience
	require.NoError(t, json.Unmarshal([]byte(rec.Experience), &exp))
	assert.Equal(t, []string{"2019 - Present"}, exp.DateSpans)
}

func TestNewCandidateRecord_EmptyFields(t *testing.T) {
	rec, err := NewCandidateRecord("empty.docx", &ExtractedFields{}, 0)
	require.NoError(t, err)

	assert.Empty(t, rec.Name)
	assert.Empty(t, rec.Skills)
	// Encoded objects keep their keys even when nothing was extracted
	assert.JSONEq(t, `{"degrees":null,"institutions":null}`, rec.Education)
	assert.JSONEq(t, `{"companies":null,"date_spans":null}`, rec.Experience)
}

func TestSkillList(t *testing.T) {
	tests := []struct {
		name   string
		skills string
		want   []string
	}{
		{name: "typical", skills: "AWS, Docker, Python", want: []string{"AWS", "Docker", "Python"}},
		{name: "empty", skills: "", want: []string{}},
		{name: "stray separators", skills: "Go,, , SQL", want: []string{"Go", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := CandidateRecord{Skills: tt.skills}
			assert.Equal(t, tt.want, rec.SkillList())
		})
	}
}

func TestEducationExperienceIsEmpty(t *testing.T) {
	assert.True(t, Education{}.IsEmpty())
	assert.False(t, Education{Degrees: []string{"MBA"}}.IsEmpty())
	assert.False(t, Education{Institutions: []string{"Some College"}}.IsEmpty())

	assert.True(t, Experience{}.IsEmpty())
	assert.False(t, Experience{Companies: []string{"Acme"}}.IsEmpty())
	assert.False(t, Experience{DateSpans: []string{"2019 - 2021"}}.IsEmpty())
}

func TestCandidateFilterValidate(t *testing.T) {
	valid := CandidateFilter{Query: "python", MinScore: 40, HasEmail: "yes"}
	assert.NoError(t, valid.Validate())

	badScore := CandidateFilter{MinScore: 120}
	assert.Error(t, badScore.Validate())

	badEmail := CandidateFilter{HasEmail: "maybe"}
	assert.Error(t, badEmail.Validate())
}
