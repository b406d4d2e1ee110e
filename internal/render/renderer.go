// File path: internal/render/renderer.go
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lexdraft/lexdraft/internal/common"
	"github.com/lexdraft/lexdraft/internal/doctype"
)

// ErrTemplateNotFound is returned when no base-language template exists for a
// document type. A missing or unreadable localized template is not an error;
// it falls back to the base language.
var ErrTemplateNotFound = errors.New("template not found")

// RenderError reports a template variable with no value at substitution time.
// It indicates a reconciler or catalog gap: emitting blank text silently
// would produce a legally incorrect document.
type RenderError struct {
	DocType  doctype.Type
	Variable string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: no value for template variable %q", e.DocType, e.Variable)
}

// dateLayout produces values like "April 05, 2025".
const dateLayout = "January 02, 2006"

// DateStamp formats a time the way rendered documents expect the date field.
func DateStamp(t time.Time) string { return t.Format(dateLayout) }

// Renderer loads localized templates from a directory tree and substitutes
// data into them. Base-language templates live at the root of dir; localized
// variants under per-language subdirectories. Safe for concurrent use.
type Renderer struct {
	dir string
	now func() time.Time
}

// NewRenderer builds a renderer over the given template directory.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir, now: time.Now}
}

// LoadTemplate resolves the template text for a document type and language.
// The language-specific path is tried first; if the file does not exist, or
// exists but cannot be read, the base-language template is used instead. A
// corrupt localized template must never abort generation.
func (r *Renderer) LoadTemplate(docType doctype.Type, language string) (string, error) {
	spec, ok := doctype.Lookup(docType)
	if !ok {
		return "", fmt.Errorf("%w: %q", doctype.ErrUnknownDocumentType, docType)
	}
	basePath := filepath.Join(r.dir, spec.TemplateFile)
	if language != "" && language != doctype.BaseLanguage {
		langPath := filepath.Join(r.dir, language, spec.TemplateFile)
		if _, err := os.Stat(langPath); err == nil {
			data, readErr := os.ReadFile(langPath)
			if readErr == nil {
				return string(data), nil
			}
			common.Logger().Warn("render: localized template unreadable, falling back to base",
				"doc_type", docType, "language", language, "error", readErr)
		}
	}
	data, err := os.ReadFile(basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s (%s)", ErrTemplateNotFound, docType, basePath)
		}
		return "", fmt.Errorf("read template %s: %w", basePath, err)
	}
	return string(data), nil
}

// Render selects the template for the document type and language, injects the
// current date if the caller has not set one, and substitutes every template
// variable from data. The date write happens after reconciliation by design
// of the call order, so it never goes through the default catalog. A variable
// missing from data raises a *RenderError.
func (r *Renderer) Render(docType doctype.Type, language string, data map[string]string) (string, error) {
	templateText, err := r.LoadTemplate(docType, language)
	if err != nil {
		return "", err
	}
	values := make(map[string]string, len(data)+1)
	for k, v := range data {
		values[k] = v
	}
	if _, ok := values["date"]; !ok {
		values["date"] = r.now().Format(dateLayout)
	}
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(templateText, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := values[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", &RenderError{DocType: docType, Variable: missing}
	}
	return out, nil
}
