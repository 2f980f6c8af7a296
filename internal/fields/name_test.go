package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/entity"
)

// stubRecognizer returns canned entities regardless of input.
type stubRecognizer struct {
	people []string
	orgs   []string

	// seenText records the last text passed to People, for window assertions.
	seenText string
}

func (s *stubRecognizer) People(text string) []string {
	s.seenText = text
	return s.people
}

func (s *stubRecognizer) Organizations(string) []string {
	return s.orgs
}

func TestName(t *testing.T) {
	tests := []struct {
		name   string
		people []string
		want   string
	}{
		{name: "two token name", people: []string{"Jane Doe"}, want: "Jane Doe"},
		{name: "four token name", people: []string{"Juan Carlos de Sousa"}, want: "Juan Carlos de Sousa"},
		{name: "single token skipped", people: []string{"Python", "Jane Doe"}, want: "Jane Doe"},
		{
			name:   "five tokens skipped",
			people: []string{"Senior Machine Learning Platform Engineer", "John Smith"},
			want:   "John Smith",
		},
		{name: "nothing qualifies", people: []string{"Excel"}, want: ""},
		{name: "no entities", people: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &stubRecognizer{people: tt.people}
			assert.Equal(t, tt.want, Name("some resume text", rec))
		})
	}
}

func TestName_NoopRecognizerDegrades(t *testing.T) {
	assert.Equal(t, "", Name("Jane Doe\nSoftware Engineer", entity.NewNoop()))
}

func TestName_HeaderWindow(t *testing.T) {
	rec := &stubRecognizer{}
	long := "Jane Doe " + strings.Repeat("x", 5000)

	Name(long, rec)
	assert.Len(t, rec.seenText, nameWindow)
}

func TestHeadWindow_RuneSafe(t *testing.T) {
	// The odd leading byte forces the cut to land mid-rune unless corrected.
	s := "a" + strings.Repeat("é", nameWindow)
	head := headWindow(s, nameWindow)
	assert.Equal(t, nameWindow-1, len(head))
	assert.True(t, strings.HasSuffix(head, "é"))
}
