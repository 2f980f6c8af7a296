package entity

import (
	prose "github.com/jdkato/prose/v2"
)

// Prose is a Recognizer backed by the prose statistical NLP library.
//
// The stock prose model labels PERSON and GPE entities; ORG labels are rare
// with the default model, so Organizations frequently returns an empty slice.
// That is the documented degraded-mode behavior for company extraction.
type Prose struct{}

// NewProse creates a prose-backed Recognizer. The model ships with the
// library, so construction cannot fail and the recognizer is immediately
// usable process-wide.
func NewProse() *Prose {
	return &Prose{}
}

// People returns PERSON entities in document order.
func (p *Prose) People(text string) []string {
	return p.entities(text, "PERSON")
}

// Organizations returns ORG entities in document order.
func (p *Prose) Organizations(text string) []string {
	return p.entities(text, "ORG")
}

func (p *Prose) entities(text, label string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		// Recognition failures degrade to no entities.
		return nil
	}

	var out []string
	for _, ent := range doc.Entities() {
		if ent.Label == label {
			out = append(out, ent.Text)
		}
	}
	return out
}
