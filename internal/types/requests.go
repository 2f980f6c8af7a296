package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseOptions carries the batch-wide inputs for a parse request.
type ParseOptions struct {
	JobDescription    string `json:"job_description,omitempty"`
	JobDescriptionURL string `json:"job_description_url,omitempty" validate:"omitempty,url"`
}

// CandidateFilter holds the dashboard filter parameters.
type CandidateFilter struct {
	Query    string  `json:"q,omitempty"`
	MinScore float64 `json:"min_score,omitempty" validate:"gte=0,lte=100"`
	HasEmail string  `json:"has_email,omitempty" validate:"omitempty,oneof=either yes no"`
}

// Validate validates the ParseOptions using the validator.
func (o *ParseOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Validate validates the CandidateFilter using the validator.
func (f *CandidateFilter) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// Matches reports whether a record passes every set filter field. The query
// is a case-insensitive substring match over filename, name, email and skills.
func (f *CandidateFilter) Matches(rec *CandidateRecord) bool {
	if rec.PredictedScore < f.MinScore {
		return false
	}
	if f.HasEmail == "yes" && rec.Email == "" {
		return false
	}
	if f.HasEmail == "no" && rec.Email != "" {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	for _, field := range []string{rec.Filename, rec.Name, rec.Email, rec.Skills} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterCandidates keeps the records matching the filter, preserving order.
func FilterCandidates(records []CandidateRecord, f CandidateFilter) []CandidateRecord {
	out := make([]CandidateRecord, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
