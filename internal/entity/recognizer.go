// Package entity provides named-entity recognition as an optional capability.
// Name and company extraction degrade gracefully when no recognizer is
// available, so the recognizer is modeled as an injectable interface with a
// null-object implementation rather than availability checks at call sites.
package entity

// Recognizer identifies person and organization mentions in free text.
// Implementations must be safe for concurrent use and must never fail:
// unrecognizable input yields empty results.
type Recognizer interface {
	// People returns person-entity mentions in document order.
	People(text string) []string

	// Organizations returns organization-entity mentions in document order.
	Organizations(text string) []string
}

// Noop is the null-object Recognizer used when no recognizer is configured.
// All lookups return nil, which downstream extraction treats as a degraded
// result, not an error.
type Noop struct{}

// NewNoop creates a Recognizer that never finds anything.
func NewNoop() *Noop {
	return &Noop{}
}

// People always returns nil.
func (*Noop) People(string) []string { return nil }

// Organizations always returns nil.
func (*Noop) Organizations(string) []string { return nil }
