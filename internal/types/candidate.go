// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"encoding/json"
	"strings"
	"time"
)

// Education holds degree mentions and institution lines extracted from a resume,
// both in order of appearance.
type Education struct {
	Degrees      []string `json:"degrees"`
	Institutions []string `json:"institutions"`
}

// IsEmpty reports whether no education information was extracted.
func (e Education) IsEmpty() bool {
	return len(e.Degrees) == 0 && len(e.Institutions) == 0
}

// Experience holds company mentions and employment date spans extracted from a
// resume, both in order of appearance.
type Experience struct {
	Companies []string `json:"companies"`
	DateSpans []string `json:"date_spans"`
}

// IsEmpty reports whether no experience information was extracted.
func (e Experience) IsEmpty() bool {
	return len(e.Companies) == 0 && len(e.DateSpans) == 0
}

// ExtractedFields is the structured result of field extraction over one resume.
// Absent scalar fields are empty strings; absent list fields are empty slices.
type ExtractedFields struct {
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Skills     []string   `json:"skills"`
	Education  Education  `json:"education"`
	Experience Experience `json:"experience"`
}

// CandidateRecord is the persisted unit for one parsed resume. It is created
// once per uploaded document and never mutated after insertion; ID is assigned
// by the store.
type CandidateRecord struct {
	ID             int64     `json:"id"`
	Filename       string    `json:"filename"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Skills         string    `json:"skills"`     // comma-joined canonical skill names
	Education      string    `json:"education"`  // JSON-encoded Education
	Experience     string    `json:"experience"` // JSON-encoded Experience
	PredictedScore float64   `json:"predicted_score"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// NewCandidateRecord flattens extracted fields and a match score into a record
// ready for insertion.
func NewCandidateRecord(filename string, fields *ExtractedFields, score float64) (CandidateRecord, error) {
	eduJSON, err := json.Marshal(fields.Education)
	if err != nil {
		return CandidateRecord{}, err
	}
	expJSON, err := json.Marshal(fields.Experience)
	if err != nil {
		return CandidateRecord{}, err
	}

	return CandidateRecord{
		Filename:       filename,
		Name:           fields.Name,
		Email:          fields.Email,
		Phone:          fields.Phone,
		Skills:         strings.Join(fields.Skills, ", "),
		Education:      string(eduJSON),
		Experience:     string(expJSON),
		PredictedScore: score,
	}, nil
}

// SkillList splits the comma-joined skills column back into individual skill
// names, dropping empty entries.
func (r *CandidateRecord) SkillList() []string {
	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
