// File path: internal/nlp/openai.go
package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"

	"github.com/lexdraft/lexdraft/internal/common"
)

const recognizerSystemPrompt = `You are a named entity recognizer for legal text.
Return a JSON array of objects with "text" and "label" keys, in order of
appearance. Use label PERSON for person names and GPE for cities, regions and
other places. Return [] when nothing matches. Return only JSON.`

// OpenAIRecognizer delegates entity recognition to a chat model.
type OpenAIRecognizer struct {
	client *openai.Client
	model  string
}

func NewOpenAIRecognizer(client *openai.Client) *OpenAIRecognizer {
	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	logger := common.Logger()
	logger.Info("nlp: OpenAI recognizer configured", "model", model)
	return &OpenAIRecognizer{client: client, model: model}
}

func (o *OpenAIRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if o.client == nil {
		return nil, fmt.Errorf("nil openai client")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	logger := common.Logger()
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(recognizerSystemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		logger.Error("nlp: chat completion failed", "error", err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}
	entities, err := parseEntityJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse recognizer response: %w", err)
	}
	return entities, nil
}

func (o *OpenAIRecognizer) Name() string { return "openai" }

// parseEntityJSON accepts the model output with or without a fenced code
// block around the JSON array.
func parseEntityJSON(content string) ([]Entity, error) {
	s := strings.TrimSpace(content)
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}
	if i := strings.Index(s, "["); i >= 0 {
		if j := strings.LastIndex(s, "]"); j > i {
			s = s[i : j+1]
		}
	}
	var entities []Entity
	if err := json.Unmarshal([]byte(s), &entities); err != nil {
		return nil, err
	}
	out := entities[:0]
	for _, e := range entities {
		e.Text = strings.TrimSpace(e.Text)
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Text == "" || e.Label == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
