package fields

import (
	"github.com/jonathan/resume-screener/internal/entity"
	"github.com/jonathan/resume-screener/internal/types"
)

// ExtractAll runs every field extractor over the resume text. It is a pure
// function of the text, the taxonomy and the recognizer; no extractor throws
// for malformed input — the worst case is an absent or empty field.
func ExtractAll(text string, tax Taxonomy, rec entity.Recognizer) *types.ExtractedFields {
	return &types.ExtractedFields{
		Name:       Name(text, rec),
		Email:      Email(text),
		Phone:      Phone(text),
		Skills:     Skills(text, tax),
		Education:  EducationInfo(text),
		Experience: ExperienceInfo(text, rec),
	}
}
