// File path: internal/translate/translate.go
package translate

import (
	"context"
	"strings"
	"sync"

	"github.com/lexdraft/lexdraft/internal/common"
	"github.com/lexdraft/lexdraft/internal/doctype"
)

// Translator converts a single text from the base language to the target
// language. Implementations are best-effort: one attempt, short deadline, and
// callers keep the original text on failure.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
	Name() string
}

// TranslateMap translates every value of data independently and returns a new
// map keyed identically. Fields fan out in parallel; results are keyed by
// field name, so completion order never changes the outcome. A field whose
// translation fails keeps its original value — one bad field must not block
// the others. The base language and blank values pass through untouched.
func TranslateMap(ctx context.Context, tr Translator, data map[string]string, targetLang string) map[string]string {
	out := make(map[string]string, len(data))
	if targetLang == "" || targetLang == doctype.BaseLanguage || tr == nil {
		for k, v := range data {
			out[k] = v
		}
		return out
	}
	// Blank values are written before any goroutine starts; after this pass
	// only the goroutines touch out, always under mu.
	for key, value := range data {
		if strings.TrimSpace(value) == "" {
			out[key] = value
		}
	}
	logger := common.Logger()
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for key, value := range data {
		if strings.TrimSpace(value) == "" {
			continue
		}
		wg.Add(1)
		go func(key, value string) {
			defer wg.Done()
			translated, err := tr.Translate(ctx, value, targetLang)
			if err != nil || strings.TrimSpace(translated) == "" {
				if err != nil {
					logger.Warn("translate: field kept untranslated",
						"field", key, "lang", targetLang, "error", err)
				}
				translated = value
			}
			mu.Lock()
			out[key] = translated
			mu.Unlock()
		}(key, value)
	}
	wg.Wait()
	return out
}
