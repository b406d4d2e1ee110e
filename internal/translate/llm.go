// File path: internal/translate/llm.go
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/lexdraft/lexdraft/internal/doctype"
)

// LLM is a Translator backed by a langchaingo chat model, for deployments
// where the MyMemory service is unavailable or a model endpoint is already
// provisioned.
type LLM struct {
	model llms.Model
}

// NewLLM builds an OpenAI-compatible model translator. Model selection and
// credentials come from the standard langchaingo environment variables.
func NewLLM(opts ...openai.Option) (*LLM, error) {
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("init llm translator: %w", err)
	}
	return &LLM{model: model}, nil
}

// NewLLMWithModel wraps an already constructed model.
func NewLLMWithModel(model llms.Model) *LLM {
	return &LLM{model: model}
}

func (l *LLM) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	name := doctype.LanguageName(targetLang)
	prompt := fmt.Sprintf(
		"Translate the following text from English to %s. Reply with the translation only, no commentary.\n\n%s",
		name, text)
	out, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt, llms.WithTemperature(0))
	if err != nil {
		return "", err
	}
	translated := strings.TrimSpace(out)
	if translated == "" {
		return "", fmt.Errorf("llm: empty translation")
	}
	return translated, nil
}

func (l *LLM) Name() string { return "llm" }
