// File path: internal/extract/extract.go
package extract

import (
	"context"

	"github.com/lexdraft/lexdraft/internal/common"
	"github.com/lexdraft/lexdraft/internal/nlp"
)

// personSlots and placeSlots are the fixed assignment orders for recognized
// entities: each entity fills the first slot not yet present in the output
// mapping. The same extraction run may populate slots belonging to several
// document types; reconciliation later picks the relevant ones.
var personSlots = []string{
	"landlord", "tenant", "seller", "buyer",
	"principal", "attorney", "lessor", "lessee",
}

var placeSlots = []string{
	"landlord_address", "tenant_address", "seller_address", "buyer_address",
	"principal_address", "attorney_address", "lessor_address", "lessee_address",
	"property_address", "address",
}

// Extractor derives structured field values from free text by combining a
// named-entity pass with a regex pattern pass.
type Extractor struct {
	recognizer nlp.Recognizer
}

// New builds an extractor around the given recognizer. The recognizer is
// shared and read-only; construct once at process start.
func New(recognizer nlp.Recognizer) *Extractor {
	return &Extractor{recognizer: recognizer}
}

// Extract returns a field-name to value mapping. The NER pass runs first and
// fills person/place slots in priority order; the pattern pass runs second
// and wins where the two would overlap. Empty text yields an empty map.
// A recognizer failure degrades to pattern-only extraction.
func (e *Extractor) Extract(ctx context.Context, text string) map[string]string {
	entities := map[string]string{}
	if text == "" {
		return entities
	}
	if e.recognizer != nil {
		recognized, err := e.recognizer.Recognize(ctx, text)
		if err != nil {
			common.Logger().Warn("extract: recognizer failed, using patterns only",
				"recognizer", e.recognizer.Name(), "error", err)
		}
		for _, ent := range recognized {
			switch ent.Label {
			case nlp.LabelPerson:
				fillFirstOpenSlot(entities, personSlots, ent.Text)
			case nlp.LabelPlace, nlp.LabelLocation:
				fillFirstOpenSlot(entities, placeSlots, ent.Text)
			}
		}
	}
	applyPatterns(entities, text)
	return entities
}

// fillFirstOpenSlot assigns value to the first slot absent from the mapping.
// Presence of the key, not truthiness, marks a slot as taken.
func fillFirstOpenSlot(entities map[string]string, slots []string, value string) {
	for _, slot := range slots {
		if _, ok := entities[slot]; !ok {
			entities[slot] = value
			return
		}
	}
}
