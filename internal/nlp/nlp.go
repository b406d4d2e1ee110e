// File path: internal/nlp/nlp.go
package nlp

import (
	"context"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/lexdraft/lexdraft/internal/common"
)

// Entity is a single span of text tagged with a coarse label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entity labels produced by recognizers. Address-like labels follow the
// convention of the NER model the pipeline was originally tuned against.
const (
	LabelPerson   = "PERSON"
	LabelPlace    = "GPE"
	LabelLocation = "LOC"
)

// Recognizer extracts named entities from free text. Implementations must
// return entities in order of appearance; the extractor's slot assignment
// depends on it.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
	Name() string
}

// NewRecognizer selects a recognizer from the environment: an OpenAI-backed
// recognizer when OPENAI_API_KEY is set, otherwise the deterministic
// rule-based one.
func NewRecognizer() Recognizer {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				logger.Warn("nlp: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
			} else {
				opts = append(opts, option.WithRequestTimeout(timeout))
			}
		}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		client := openai.NewClient(opts...)
		logger.Info("nlp: OpenAI recognizer selected")
		return NewOpenAIRecognizer(&client)
	}
	logger.Info("nlp: rule-based recognizer selected")
	return NewRuleRecognizer()
}
