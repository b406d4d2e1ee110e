// File path: internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexdraft/lexdraft/internal/catalog"
	"github.com/lexdraft/lexdraft/internal/doctype"
	"github.com/lexdraft/lexdraft/internal/extract"
	"github.com/lexdraft/lexdraft/internal/history"
	"github.com/lexdraft/lexdraft/internal/nlp"
	"github.com/lexdraft/lexdraft/internal/render"
	"github.com/lexdraft/lexdraft/internal/translate"
)

// upperTranslator marks translated text so tests can see it passed through.
type upperTranslator struct{}

func (upperTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return strings.ToUpper(text), nil
}

func (upperTranslator) Name() string { return "upper" }

func newTestGenerator(t *testing.T, tr translate.Translator, store *history.Store) *Generator {
	t.Helper()
	return New(Deps{
		Classifier: doctype.NewClassifier(),
		Extractor:  extract.New(nlp.NewRuleRecognizer()),
		Recognizer: nlp.NewRuleRecognizer(),
		Catalog:    catalog.Builtin(),
		Renderer:   render.NewRenderer(filepath.Join("..", "..", "templates")),
		Translator: tr,
		Store:      store,
	})
}

func TestGenerateFromPrompt(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	res, err := g.GenerateFromPrompt(context.Background(), PromptRequest{
		Prompt: "Rental agreement between Mr. John and Ms. Jane for a flat in Chennai, rent Rs 15,000, duration 11 months",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.DocType != doctype.RentalAgreement {
		t.Fatalf("doc type = %s", res.DocType)
	}
	if res.Language != "en" {
		t.Fatalf("language = %s", res.Language)
	}
	if !strings.Contains(res.Title, "from Prompt") {
		t.Fatalf("title = %q", res.Title)
	}
	for _, want := range []string{"Mr. John", "Ms. Jane", "15,000", "11 months"} {
		if !strings.Contains(res.Content, want) {
			t.Fatalf("content missing %q", want)
		}
	}
	if strings.Contains(res.Content, "{{") {
		t.Fatalf("unsubstituted placeholder in content")
	}
	// Fields the prompt never supplied are reported as defaulted.
	found := false
	for _, m := range res.Missing {
		if m == "tenant_address" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing = %v, want tenant_address reported", res.Missing)
	}
	if res.SavedID != 0 {
		t.Fatalf("no store wired, SavedID = %d", res.SavedID)
	}
}

func TestGenerateFromPromptClassificationFailure(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	_, err := g.GenerateFromPrompt(context.Background(), PromptRequest{Prompt: "recipe for dal"})
	if !errors.Is(err, doctype.ErrClassificationFailed) {
		t.Fatalf("expected ErrClassificationFailed, got %v", err)
	}
	if _, err := g.GenerateFromPrompt(context.Background(), PromptRequest{Prompt: "   "}); !errors.Is(err, doctype.ErrClassificationFailed) {
		t.Fatalf("expected ErrClassificationFailed for blank prompt, got %v", err)
	}
}

func TestGenerateFromPromptPicksLanguage(t *testing.T) {
	g := newTestGenerator(t, upperTranslator{}, nil)
	res, err := g.GenerateFromPrompt(context.Background(), PromptRequest{
		Prompt: "Rental agreement between Mr. John and Ms. Jane in Hindi",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Language != "hi" {
		t.Fatalf("language = %s", res.Language)
	}
	// Extracted values went through the translator before rendering.
	if !strings.Contains(res.Content, "MR. JOHN") {
		t.Fatalf("content should contain translated landlord, got %q", res.Content[:200])
	}
}

func TestGenerateFromFormAliases(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	res, err := g.GenerateFromForm(context.Background(), FormRequest{
		DocType: "rental_agreement",
		Data: map[string]string{
			"owner_name":  "Mr. Rao",
			"renter_name": "Ms. Devi",
			"rent_amount": "Rs 12,000",
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(res.Content, "Mr. Rao") || !strings.Contains(res.Content, "Ms. Devi") {
		t.Fatalf("aliased form fields not rendered")
	}
	for _, m := range res.Missing {
		if m == "landlord" || m == "tenant" || m == "rent_amount" {
			t.Fatalf("aliased field reported missing: %v", res.Missing)
		}
	}
}

func TestGenerateFromFormUnknownType(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	_, err := g.GenerateFromForm(context.Background(), FormRequest{DocType: "will_and_testament"})
	if !errors.Is(err, doctype.ErrUnknownDocumentType) {
		t.Fatalf("expected ErrUnknownDocumentType, got %v", err)
	}
}

func TestGenerateFromFormUnsupportedLanguageFallsBack(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	res, err := g.GenerateFromForm(context.Background(), FormRequest{
		DocType:  "land_sale_deed",
		Language: "fr",
		Data:     map[string]string{"seller": "Mr. Rao"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(res.Content, "Mr. Rao") {
		t.Fatal("content not rendered from base template")
	}
}

func TestGenerateStampsCurrentDate(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	res, err := g.GenerateFromForm(context.Background(), FormRequest{
		DocType: "power_of_attorney",
		Data:    map[string]string{"principal": "Mr. Rao"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	stamp := render.DateStamp(g.now())
	if !strings.Contains(res.Content, stamp) {
		t.Fatalf("content missing generation date %q", stamp)
	}
}

func TestGenerateFromFormSuppliedDateWins(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	res, err := g.GenerateFromForm(context.Background(), FormRequest{
		DocType: "power_of_attorney",
		Data:    map[string]string{"date": "March 01, 2024"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(res.Content, "March 01, 2024") {
		t.Fatal("caller-supplied date was overwritten")
	}
}

func TestGeneratePersistsForUser(t *testing.T) {
	store, err := history.Open(history.DefaultConfig(filepath.Join(t.TempDir(), "history.db")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	g := newTestGenerator(t, nil, store)
	res, err := g.GenerateFromForm(context.Background(), FormRequest{
		DocType: "rental_agreement",
		Data:    map[string]string{"landlord": "Mr. Rao"},
		UserID:  "alice",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.SavedID == 0 {
		t.Fatal("document not persisted")
	}
	doc, err := store.DocumentByID(context.Background(), res.SavedID, "alice")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if doc.DocType != "rental_agreement" {
		t.Fatalf("doc = %+v", doc)
	}
	entries, err := store.History(context.Background(), "alice", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "generate_document" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestAnalyzePrompt(t *testing.T) {
	g := newTestGenerator(t, nil, nil)
	a, err := g.AnalyzePrompt(context.Background(),
		"Rental agreement between Mr. John and Ms. Jane, rent Rs 15,000")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.DocType != doctype.RentalAgreement {
		t.Fatalf("doc type = %s", a.DocType)
	}
	if a.Entities["landlord"] != "Mr. John" {
		t.Fatalf("entities = %v", a.Entities)
	}
	supplied := map[string]bool{}
	for k := range a.Entities {
		supplied[k] = true
	}
	for _, m := range a.MissingFields {
		if supplied[m] {
			t.Fatalf("supplied field %s reported missing", m)
		}
	}
	found := false
	for _, m := range a.MissingFields {
		if m == "property_address" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing = %v, want property_address", a.MissingFields)
	}
}

func TestLanguageFromPrompt(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"a rental agreement in Hindi", "hi"},
		{"a flat in Chennai, agreement in Tamil", "ta"},
		{"a flat in Chennai", "en"},
		{"agreement in hindi please", "hi"},
		{"translate in French", "en"},
		{"", "en"},
	}
	for _, tc := range cases {
		if got := languageFromPrompt(tc.prompt); got != tc.want {
			t.Fatalf("languageFromPrompt(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}
