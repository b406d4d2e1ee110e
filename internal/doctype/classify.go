// File path: internal/doctype/classify.go
package doctype

import (
	"errors"
	"strings"
)

// ErrUnknownDocumentType is returned when a caller supplies an identifier
// outside the enumerated set.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ErrClassificationFailed is returned when no keyword of any document type
// occurs in the text. Callers surface it as a user-facing error rather than
// falling back to a default type.
var ErrClassificationFailed = errors.New("could not determine document type")

// Classifier scores free text against the document type table.
type Classifier struct {
	specs []Spec
}

// NewClassifier builds a classifier over the standard type table.
func NewClassifier() *Classifier {
	return &Classifier{specs: All()}
}

// Classify lowercases the text, counts keyword occurrences per type using raw
// substring containment, and returns the highest-scoring type. Ties go to the
// earlier-declared type. When every score is zero it returns
// ErrClassificationFailed.
func (c *Classifier) Classify(text string) (Type, error) {
	lowered := strings.ToLower(text)
	var (
		best      Type
		bestScore int
	)
	for _, spec := range c.specs {
		score := 0
		for _, kw := range spec.Keywords {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		if score > bestScore {
			best = spec.Type
			bestScore = score
		}
	}
	if bestScore == 0 {
		return "", ErrClassificationFailed
	}
	return best, nil
}
