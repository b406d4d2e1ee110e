// File path: internal/nlp/rule_test.go
package nlp

import (
	"context"
	"testing"
)

func TestRuleRecognizerPersonsAndPlaces(t *testing.T) {
	r := NewRuleRecognizer()
	text := "Rental agreement between Mr. John and Ms. Jane for a flat in Chennai"
	entities, err := r.Recognize(context.Background(), text)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	want := []Entity{
		{Text: "Mr. John", Label: LabelPerson},
		{Text: "Ms. Jane", Label: LabelPerson},
		{Text: "Chennai", Label: LabelPlace},
	}
	if len(entities) != len(want) {
		t.Fatalf("entities = %v, want %v", entities, want)
	}
	for i, e := range entities {
		if e != want[i] {
			t.Fatalf("entity[%d] = %v, want %v", i, e, want[i])
		}
	}
}

func TestRuleRecognizerOrderOfAppearance(t *testing.T) {
	r := NewRuleRecognizer()
	text := "Property at Mumbai sold by Shri Ravi Kumar to Smt Priya residing in Pune"
	entities, err := r.Recognize(context.Background(), text)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if len(entities) < 4 {
		t.Fatalf("expected at least 4 entities, got %v", entities)
	}
	if entities[0].Label != LabelPlace || entities[0].Text != "Mumbai" {
		t.Fatalf("first entity = %v, want Mumbai place", entities[0])
	}
	if entities[1].Label != LabelPerson || entities[1].Text != "Shri Ravi Kumar" {
		t.Fatalf("second entity = %v, want Shri Ravi Kumar", entities[1])
	}
}

func TestRuleRecognizerEmptyText(t *testing.T) {
	r := NewRuleRecognizer()
	entities, err := r.Recognize(context.Background(), "")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if len(entities) != 0 {
		t.Fatalf("expected no entities, got %v", entities)
	}
}

func TestParseEntityJSONFencedBlock(t *testing.T) {
	content := "```json\n[{\"text\": \"Mr. John\", \"label\": \"person\"}, {\"text\": \"Chennai\", \"label\": \"GPE\"}]\n```"
	entities, err := parseEntityJSON(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("entities = %v", entities)
	}
	if entities[0].Label != LabelPerson {
		t.Fatalf("label not normalized: %v", entities[0])
	}
}

func TestParseEntityJSONRejectsGarbage(t *testing.T) {
	if _, err := parseEntityJSON("not json at all"); err == nil {
		t.Fatal("expected parse error")
	}
}
