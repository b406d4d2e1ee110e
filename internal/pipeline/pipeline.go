// File path: internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lexdraft/lexdraft/internal/catalog"
	"github.com/lexdraft/lexdraft/internal/common"
	"github.com/lexdraft/lexdraft/internal/doctype"
	"github.com/lexdraft/lexdraft/internal/extract"
	"github.com/lexdraft/lexdraft/internal/history"
	"github.com/lexdraft/lexdraft/internal/nlp"
	"github.com/lexdraft/lexdraft/internal/render"
	"github.com/lexdraft/lexdraft/internal/translate"
)

// Deps are the collaborators a Generator is wired with. All of them are
// constructed once at process start and shared read-only across requests;
// Translator and Store may be nil, which disables translation and
// persistence respectively.
type Deps struct {
	Classifier *doctype.Classifier
	Extractor  *extract.Extractor
	Recognizer nlp.Recognizer
	Catalog    *catalog.Catalog
	Renderer   *render.Renderer
	Translator translate.Translator
	Store      *history.Store
}

// Generator runs the document-intent pipeline: classification, extraction,
// translation, reconciliation, rendering and best-effort persistence. One
// generation request is processed synchronously with no shared mutable state.
type Generator struct {
	d   Deps
	now func() time.Time
}

// New builds a Generator over its collaborators.
func New(d Deps) *Generator {
	return &Generator{d: d, now: time.Now}
}

// FormRequest is form-driven generation input.
type FormRequest struct {
	DocType  string
	Language string
	Data     map[string]string
	UserID   string
}

// PromptRequest is prompt-driven generation input.
type PromptRequest struct {
	Prompt string
	UserID string
}

// Result is the output of a generation run.
type Result struct {
	DocType  doctype.Type
	Language string
	Title    string
	Content  string
	// Entities are (text, label) pairs recognized in the final document,
	// for display alongside it.
	Entities []nlp.Entity
	// Missing lists the template variables the reconciler had to default.
	Missing []string
	// SavedID is the persisted document id, 0 when persistence was skipped.
	SavedID int64
}

// GenerateFromForm renders a document from explicit form data. The document
// type must be in the enumerated set; unsupported languages fall back to the
// base template. Non-base languages send every supplied value through the
// translator first, keeping originals per-field on failure.
func (g *Generator) GenerateFromForm(ctx context.Context, req FormRequest) (*Result, error) {
	t, err := doctype.Parse(req.DocType)
	if err != nil {
		return nil, err
	}
	data := normalizeFormFields(t, req.Data)
	res, err := g.generate(ctx, t, req.Language, data)
	if err != nil {
		return nil, err
	}
	g.record(ctx, req.UserID, "generate_document",
		fmt.Sprintf("Generated %s in %s", t, res.Language), res, data)
	return res, nil
}

// GenerateFromPrompt classifies a free-text request, extracts entities from
// it and renders the matching document. Classification failure surfaces
// doctype.ErrClassificationFailed; the caller turns it into a user-facing
// message rather than guessing a type.
func (g *Generator) GenerateFromPrompt(ctx context.Context, req PromptRequest) (*Result, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, doctype.ErrClassificationFailed
	}
	t, err := g.d.Classifier.Classify(prompt)
	if err != nil {
		return nil, err
	}
	language := languageFromPrompt(prompt)
	entities := g.d.Extractor.Extract(ctx, prompt)
	res, err := g.generate(ctx, t, language, entities)
	if err != nil {
		return nil, err
	}
	res.Title = fmt.Sprintf("%s from Prompt - %s", t.Title(), g.now().Format("2006-01-02 15:04"))
	g.record(ctx, req.UserID, "generate_from_prompt",
		fmt.Sprintf("Generated %s from prompt in %s", t, res.Language), res, entities)
	return res, nil
}

// Analysis reports what a prompt resolves to before generation: the
// classified type, the extracted entities and the type's required fields not
// present in the extraction. Presence of a key counts as supplied.
type Analysis struct {
	DocType       doctype.Type
	Entities      map[string]string
	MissingFields []string
}

// AnalyzePrompt runs classification and extraction without rendering, for
// interactive gap-filling flows.
func (g *Generator) AnalyzePrompt(ctx context.Context, prompt string) (*Analysis, error) {
	t, err := g.d.Classifier.Classify(prompt)
	if err != nil {
		return nil, err
	}
	spec, _ := doctype.Lookup(t)
	entities := g.d.Extractor.Extract(ctx, prompt)
	var missing []string
	for _, field := range spec.RequiredFields {
		if _, ok := entities[field]; !ok {
			missing = append(missing, field)
		}
	}
	return &Analysis{DocType: t, Entities: entities, MissingFields: missing}, nil
}

// generate is the shared tail: translate, reconcile against the resolved
// template, render, and collect display entities.
func (g *Generator) generate(ctx context.Context, t doctype.Type, language string, data map[string]string) (*Result, error) {
	logger := common.Logger()
	if language == "" {
		language = doctype.BaseLanguage
	}
	if !doctype.LanguageSupported(language) {
		logger.Info("pipeline: unsupported language, using base templates", "language", language)
	}

	if language != doctype.BaseLanguage {
		data = translate.TranslateMap(ctx, g.d.Translator, data, language)
	}
	// Stamp the generation date ahead of reconciliation so the current date,
	// not the catalog's "not specified" entry, reaches the template. A date
	// supplied by the caller always wins.
	if _, ok := data["date"]; !ok {
		data["date"] = render.DateStamp(g.now())
	}

	templateText, err := g.d.Renderer.LoadTemplate(t, language)
	if err != nil {
		return nil, err
	}
	valid, complete, missing := render.Reconcile(templateText, data, t, g.d.Catalog)
	if !valid {
		logger.Debug("pipeline: defaulted missing template variables",
			"doc_type", t, "missing", strings.Join(missing, ","))
	}
	content, err := g.d.Renderer.Render(t, language, complete)
	if err != nil {
		return nil, err
	}

	res := &Result{
		DocType:  t,
		Language: language,
		Title:    fmt.Sprintf("%s - %s", t.Title(), g.now().Format("2006-01-02 15:04")),
		Content:  content,
		Missing:  missing,
	}
	if g.d.Recognizer != nil {
		displayEntities, recErr := g.d.Recognizer.Recognize(ctx, content)
		if recErr != nil {
			logger.Warn("pipeline: display entity pass failed", "error", recErr)
		} else {
			res.Entities = displayEntities
		}
	}
	return res, nil
}

// record persists history and the document itself. Both are best-effort:
// failures are logged and the generated document is still returned.
func (g *Generator) record(ctx context.Context, userID, action, details string, res *Result, sourceData map[string]string) {
	if g.d.Store == nil || strings.TrimSpace(userID) == "" {
		return
	}
	g.d.Store.RecordAction(ctx, userID, action, details)
	id, err := g.d.Store.SaveDocument(ctx, userID, string(res.DocType), res.Language, res.Title, res.Content, sourceData)
	if err != nil {
		common.Logger().Warn("pipeline: saving document failed", "user", userID, "error", err)
		return
	}
	res.SavedID = id
}

// formFieldAliases maps legacy form field names to template variables.
var formFieldAliases = map[doctype.Type]map[string]string{
	doctype.RentalAgreement: {
		"owner_name":     "landlord",
		"owner_age":      "landlord_age",
		"owner_father":   "landlord_father",
		"owner_address":  "landlord_address",
		"owner_city":     "landlord_city",
		"owner_pincode":  "landlord_pincode",
		"renter_name":    "tenant",
		"renter_age":     "tenant_age",
		"renter_father":  "tenant_father",
		"renter_address": "tenant_address",
		"renter_city":    "tenant_city",
		"renter_pincode": "tenant_pincode",
	},
}

func normalizeFormFields(t doctype.Type, data map[string]string) map[string]string {
	aliases := formFieldAliases[t]
	out := make(map[string]string, len(data))
	for k, v := range data {
		if mapped, ok := aliases[k]; ok {
			k = mapped
		}
		out[k] = v
	}
	return out
}

var promptLanguagePattern = regexp.MustCompile(`(?i)\bin\s+([a-zA-Z]+)`)

// languageFromPrompt picks the target language from an "in <language>" clause
// when the word names a supported language; everything else keeps the base
// language. The last matching clause wins so "a flat in Chennai ... in Hindi"
// resolves to Hindi.
func languageFromPrompt(prompt string) string {
	language := doctype.BaseLanguage
	for _, m := range promptLanguagePattern.FindAllStringSubmatch(prompt, -1) {
		word := m[1]
		if code, ok := doctype.LanguageCode(word); ok {
			language = code
			continue
		}
		lowered := strings.ToLower(word)
		if doctype.LanguageSupported(lowered) {
			language = lowered
		}
	}
	return language
}
