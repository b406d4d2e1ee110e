// File path: internal/translate/mymemory.go
package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lexdraft/lexdraft/internal/doctype"
)

const (
	defaultMyMemoryBaseURL = "https://api.mymemory.translated.net"
	defaultMyMemoryTimeout = 5 * time.Second
)

// MyMemory is a Translator backed by the MyMemory public translation API.
// Single attempt per call, no retries: the caller degrades to the original
// text on any failure.
type MyMemory struct {
	baseURL string
	http    *resty.Client
}

// NewMyMemory builds a client. baseURL and timeout are optional; zero values
// select the public endpoint and a 5 second deadline.
func NewMyMemory(baseURL string, timeout time.Duration) *MyMemory {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultMyMemoryBaseURL
	}
	if timeout <= 0 {
		timeout = defaultMyMemoryTimeout
	}
	return &MyMemory{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New().SetTimeout(timeout),
	}
}

type myMemoryResponse struct {
	ResponseStatus int `json:"responseStatus"`
	ResponseData   struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func (m *MyMemory) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	var body myMemoryResponse
	resp, err := m.http.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", fmt.Sprintf("%s|%s", doctype.BaseLanguage, targetLang)).
		SetResult(&body).
		Get(m.baseURL + "/get")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("mymemory: %s", resp.Status())
	}
	if body.ResponseStatus != 200 {
		return "", fmt.Errorf("mymemory: response status %d", body.ResponseStatus)
	}
	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("mymemory: empty translation")
	}
	return translated, nil
}

func (m *MyMemory) Name() string { return "mymemory" }
