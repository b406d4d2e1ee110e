// File path: internal/nlp/rule.go
package nlp

import (
	"context"
	"regexp"
	"sort"
)

// RuleRecognizer is a deterministic, offline recognizer built on the same
// surface patterns the pipeline's validation tooling uses: honorific-titled
// names for persons and "at/in <Proper Noun>" phrases for places. It is the
// default when no model-backed recognizer is configured, and the one tests
// rely on.
type RuleRecognizer struct {
	person *regexp.Regexp
	place  *regexp.Regexp
}

// NewRuleRecognizer builds the pattern set once; the recognizer is safe for
// concurrent use.
func NewRuleRecognizer() *RuleRecognizer {
	return &RuleRecognizer{
		person: regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Shri|Smt)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`),
		place:  regexp.MustCompile(`\b(?:at|in)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	}
}

type span struct {
	start int
	ent   Entity
}

// Recognize returns person and place entities in order of appearance.
// Overlapping person/place matches keep the person reading.
func (r *RuleRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	var spans []span
	claimed := r.person.FindAllStringIndex(text, -1)
	for _, m := range claimed {
		spans = append(spans, span{start: m[0], ent: Entity{Text: text[m[0]:m[1]], Label: LabelPerson}})
	}
	for _, m := range r.place.FindAllStringSubmatchIndex(text, -1) {
		// m[2], m[3] bound the captured proper noun after at/in.
		if m[2] < 0 {
			continue
		}
		if overlapsAny(m[2], m[3], claimed) {
			continue
		}
		spans = append(spans, span{start: m[2], ent: Entity{Text: text[m[2]:m[3]], Label: LabelPlace}})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	out := make([]Entity, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.ent)
	}
	return out, nil
}

func (r *RuleRecognizer) Name() string { return "rule" }

func overlapsAny(start, end int, ranges [][]int) bool {
	for _, rg := range ranges {
		if start < rg[1] && end > rg[0] {
			return true
		}
	}
	return false
}
