package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/pocheck/internal/config"
	"github.com/ppiankov/pocheck/internal/model"
)

const testPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Open file"
msgstr "Abrir archivo"

msgid "Deploy with Lexiqa"
msgstr ""

msgid "I recieve mail"
msgstr ""
`

// languageToolStub answers /v2/check with canned matches keyed by text
func languageToolStub(t *testing.T, matches map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/languages":
			_, _ = fmt.Fprint(w, `[]`)
		case "/v2/check":
			_ = r.ParseForm()
			body, ok := matches[r.PostForm.Get("text")]
			if !ok {
				body = "[]"
			}
			_, _ = fmt.Fprintf(w, `{"matches": %s}`, body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func setup(t *testing.T, configJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()

	poFile := filepath.Join(dir, "es.po")
	if err := os.WriteFile(poFile, []byte(testPO), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := filepath.Join(dir, "poLanguageChecker.json")
	if configJSON != "" {
		if err := os.WriteFile(cfg, []byte(configJSON), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	return poFile, cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Package-level flag variables survive between executions
	cfgFile = config.DefaultPath
	poPath = ""
	langCode = "en-US"
	verbose = false
	debug = false
	noColor = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheck_SuppressedOnlyExitsClean(t *testing.T) {
	server := languageToolStub(t, map[string]string{
		"Deploy with Lexiqa": `[{"message": "Possible spelling mistake found.", "replacements": [{"value": "Lexica"}],
			"context": {"text": "Deploy with Lexiqa", "offset": 12, "length": 6}, "rule": {"id": "MORFOLOGIK_RULE_EN_US"}}]`,
	})
	defer server.Close()

	poFile, cfg := setup(t, fmt.Sprintf(`{"customDictionary": ["Lexiqa"], "checker": {"url": %q}}`, server.URL))

	out, err := run(t, "--path", poFile, "--config", cfg, "--no-color")
	if err != nil {
		t.Fatalf("Expected clean run, got %v", err)
	}
	if out != "Total number of issues: 0\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestCheck_IssuesFound(t *testing.T) {
	server := languageToolStub(t, map[string]string{
		"I recieve mail": `[{"message": "Possible spelling mistake found.", "replacements": [{"value": "receive"}],
			"context": {"text": "I recieve mail", "offset": 2, "length": 7}, "rule": {"id": "MORFOLOGIK_RULE_EN_US"}}]`,
	})
	defer server.Close()

	poFile, cfg := setup(t, fmt.Sprintf(`{"checker": {"url": %q}}`, server.URL))

	out, err := run(t, "--path", poFile, "--config", cfg, "--no-color", "--verbose")
	if !errors.Is(err, model.ErrIssuesFound) {
		t.Fatalf("Expected ErrIssuesFound, got %v", err)
	}

	want := "Possible spelling mistake found.\n" +
		"I recieve mail\n" +
		"  ^^^^^^^\n" +
		"  receive\n" +
		"Triggered rule ID: MORFOLOGIK_RULE_EN_US\n" +
		"\n" +
		"Total number of issues: 1\n"
	if out != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestCheck_MissingConfig(t *testing.T) {
	poFile, cfg := setup(t, "")

	_, err := run(t, "--path", poFile, "--config", cfg)
	if !errors.Is(err, model.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected message to name the missing file, got %v", err)
	}
}

func TestCheck_InvalidLanguage(t *testing.T) {
	poFile, cfg := setup(t, `{}`)

	_, err := run(t, "--path", poFile, "--config", cfg, "--language", "not a tag!")
	if !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got %v", err)
	}
}

func TestCheck_CheckerUnreachable(t *testing.T) {
	server := languageToolStub(t, nil)
	url := server.URL
	server.Close()

	poFile, cfg := setup(t, fmt.Sprintf(`{"checker": {"url": %q, "timeout": "1s"}}`, url))

	_, err := run(t, "--path", poFile, "--config", cfg)
	if !errors.Is(err, model.ErrDependency) {
		t.Fatalf("Expected ErrDependency, got %v", err)
	}
}

func TestCheck_MissingPathFlag(t *testing.T) {
	if _, err := run(t); err == nil {
		t.Fatal("Expected error when --path is missing")
	}
}

func TestValidateLanguage(t *testing.T) {
	for _, code := range []string{"en-US", "en", "es", "ca-ES", "auto", "AUTO", "pt-BR"} {
		if err := validateLanguage(code); err != nil {
			t.Errorf("validateLanguage(%q) = %v", code, err)
		}
	}
	for _, code := range []string{"", "english please", "e"} {
		if err := validateLanguage(code); err == nil {
			t.Errorf("validateLanguage(%q) expected error", code)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "poLanguageChecker.json")

	out, err := run(t, "config", "init", "--config", cfg)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Created default configuration") {
		t.Errorf("Unexpected init output: %q", out)
	}

	if _, err := run(t, "config", "init", "--config", cfg); err == nil {
		t.Error("Expected init to refuse overwriting an existing file")
	}

	out, err = run(t, "config", "show", "--config", cfg)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"checkSourceString: true", "checkTranslationString: false", "backend: languagetool", "timeout: 30s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in config show output:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "pocheck "+Version+"\n" {
		t.Errorf("Unexpected version output: %q", out)
	}
}
