// File path: cmd/lexdraft/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lexdraft/lexdraft/internal/catalog"
	"github.com/lexdraft/lexdraft/internal/common"
	"github.com/lexdraft/lexdraft/internal/config"
	"github.com/lexdraft/lexdraft/internal/doctype"
	"github.com/lexdraft/lexdraft/internal/extract"
	"github.com/lexdraft/lexdraft/internal/history"
	"github.com/lexdraft/lexdraft/internal/nlp"
	"github.com/lexdraft/lexdraft/internal/pipeline"
	"github.com/lexdraft/lexdraft/internal/render"
	"github.com/lexdraft/lexdraft/internal/translate"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Debug("lexdraft: .env file not loaded", "error", err)
	}

	configPath := flag.String("config", "lexdraft.yaml", "path to the YAML configuration file")
	prompt := flag.String("prompt", "", "free-text prompt describing the document to generate")
	docType := flag.String("type", "", "document type for form-driven generation")
	language := flag.String("language", "en", "target language code")
	dataArg := flag.String("data", "", "form data as JSON, or @path to a JSON file")
	userID := flag.String("user", "", "user id for history and document persistence")
	templatesDir := flag.String("templates", "", "override the template directory")
	storePath := flag.String("store", "", "override the history database path")
	analyze := flag.Bool("analyze", false, "classify and extract from the prompt without generating")
	verify := flag.Bool("verify-templates", false, "verify required fields against the template tree and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("lexdraft: config load failed", "error", err)
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if strings.TrimSpace(*templatesDir) != "" {
		cfg.TemplatesDir = *templatesDir
	}
	if strings.TrimSpace(*storePath) != "" {
		cfg.StorePath = *storePath
	}

	if *verify {
		if err := render.VerifyTemplates(cfg.TemplatesDir); err != nil {
			fmt.Fprintln(os.Stderr, "template verification failed:", err)
			os.Exit(1)
		}
		fmt.Println("templates ok")
		return
	}

	cat := catalog.Builtin()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Error("lexdraft: catalog load failed", "error", err)
			fmt.Fprintln(os.Stderr, "catalog error:", err)
			os.Exit(1)
		}
	}

	recognizer := nlp.NewRecognizer()

	var store *history.Store
	if strings.TrimSpace(cfg.StorePath) != "" {
		store, err = history.Open(history.DefaultConfig(cfg.StorePath))
		if err != nil {
			// Persistence is best-effort; generation continues without it.
			logger.Warn("lexdraft: history store unavailable", "path", cfg.StorePath, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	gen := pipeline.New(pipeline.Deps{
		Classifier: doctype.NewClassifier(),
		Extractor:  extract.New(recognizer),
		Recognizer: recognizer,
		Catalog:    cat,
		Renderer:   render.NewRenderer(cfg.TemplatesDir),
		Translator: buildTranslator(cfg, logger),
		Store:      store,
	})

	switch {
	case *analyze:
		if strings.TrimSpace(*prompt) == "" {
			fmt.Fprintln(os.Stderr, "analyze requires -prompt")
			os.Exit(2)
		}
		analysis, err := gen.AnalyzePrompt(ctx, *prompt)
		if err != nil {
			fail(err)
		}
		printAnalysis(analysis)
	case strings.TrimSpace(*prompt) != "":
		res, err := gen.GenerateFromPrompt(ctx, pipeline.PromptRequest{Prompt: *prompt, UserID: *userID})
		if err != nil {
			fail(err)
		}
		printResult(res)
	case strings.TrimSpace(*docType) != "":
		data, err := parseData(*dataArg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "data error:", err)
			os.Exit(2)
		}
		res, err := gen.GenerateFromForm(ctx, pipeline.FormRequest{
			DocType:  *docType,
			Language: *language,
			Data:     data,
			UserID:   *userID,
		})
		if err != nil {
			fail(err)
		}
		printResult(res)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func buildTranslator(cfg *config.Config, logger *slog.Logger) translate.Translator {
	switch cfg.Translation.Provider {
	case "llm":
		tr, err := translate.NewLLM()
		if err != nil {
			logger.Warn("lexdraft: llm translator unavailable, using mymemory", "error", err)
			return translate.NewMyMemory(cfg.Translation.BaseURL, cfg.Translation.Timeout)
		}
		return tr
	default:
		return translate.NewMyMemory(cfg.Translation.BaseURL, cfg.Translation.Timeout)
	}
}

func parseData(arg string) (map[string]string, error) {
	data := map[string]string{}
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return data, nil
	}
	raw := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		raw, err = os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse form data: %w", err)
	}
	return data, nil
}

func printResult(res *pipeline.Result) {
	fmt.Println(res.Content)
	if len(res.Entities) > 0 {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Recognized entities:")
		for _, e := range res.Entities {
			fmt.Fprintf(os.Stderr, "  %-8s %s\n", e.Label, e.Text)
		}
	}
	if res.SavedID != 0 {
		fmt.Fprintf(os.Stderr, "Saved as document %d\n", res.SavedID)
	}
}

func printAnalysis(a *pipeline.Analysis) {
	fmt.Printf("Document type: %s\n", a.DocType)
	keys := make([]string, 0, len(a.Entities))
	for k := range a.Entities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("Extracted:")
	for _, k := range keys {
		fmt.Printf("  %s = %s\n", k, a.Entities[k])
	}
	if len(a.MissingFields) > 0 {
		fmt.Printf("Missing required fields: %s\n", strings.Join(a.MissingFields, ", "))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
