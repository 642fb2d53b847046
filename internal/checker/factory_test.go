package checker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ppiankov/pocheck/internal/model"
)

func TestOpen_LanguageToolWithCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/languages":
			_, _ = fmt.Fprint(w, `[]`)
		case "/v2/check":
			_, _ = fmt.Fprint(w, `{"matches": []}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := Open(context.Background(), Options{
		Backend:   model.BackendLanguageTool,
		URL:       server.URL,
		Language:  "en-US",
		CacheSize: 10,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*Cached); !ok {
		t.Errorf("Expected cached checker, got %T", c)
	}
	if c.Name() != model.BackendLanguageTool {
		t.Errorf("Unexpected name %s", c.Name())
	}
}

func TestOpen_NoCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	c, err := Open(context.Background(), Options{URL: server.URL})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*LanguageTool); !ok {
		t.Errorf("Expected bare LanguageTool checker, got %T", c)
	}
}

func TestOpen_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := Open(context.Background(), Options{Backend: "languagetool", URL: url, Timeout: time.Second})
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if !errors.Is(err, model.ErrDependency) {
		t.Errorf("Expected ErrDependency, got %v", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "hunspell"})
	if !errors.Is(err, model.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestOpen_OpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Open(context.Background(), Options{Backend: model.BackendOpenAI})
	if !errors.Is(err, model.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DisabledRules = []string{"WHITESPACE_RULE"}

	opts := OptionsFromConfig(cfg, "de-DE")
	if opts.Language != "de-DE" || opts.Backend != model.BackendLanguageTool {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if len(opts.DisabledRules) != 1 || opts.CacheSize != 500 {
		t.Errorf("Config values not carried over: %+v", opts)
	}
}
