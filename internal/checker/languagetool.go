package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/ppiankov/pocheck/internal/model"
	"github.com/ppiankov/pocheck/internal/worker"
)

// LanguageTool is a client for the LanguageTool HTTP API (v2)
type LanguageTool struct {
	baseURL       string
	language      string
	disabledRules []string
	httpClient    *http.Client
	limiter       *worker.Limiter
}

// LanguageTool API structures
type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string          `json:"message"`
	ShortMessage string          `json:"shortMessage"`
	Replacements []ltReplacement `json:"replacements"`
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	Context      ltContext       `json:"context"`
	Sentence     string          `json:"sentence"`
	Rule         ltRule          `json:"rule"`
}

type ltReplacement struct {
	Value string `json:"value"`
}

// ltContext offsets count UTF-16 code units
type ltContext struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

type ltRule struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	IssueType   string     `json:"issueType"`
	Category    ltCategory `json:"category"`
}

type ltCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewLanguageTool creates a client for the server at opts.URL
func NewLanguageTool(opts Options) *LanguageTool {
	baseURL := opts.URL
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	language := opts.Language
	if language == "" {
		language = "en-US"
	}

	return &LanguageTool{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		language:      language,
		disabledRules: opts.DisabledRules,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: worker.NewLimiter(opts.RequestsPerSecond, opts.Burst),
	}
}

// Name returns the backend name
func (lt *LanguageTool) Name() string {
	return model.BackendLanguageTool
}

// Ping checks that the server answers on /v2/languages
func (lt *LanguageTool) Ping(ctx context.Context) error {
	endpoint := lt.baseURL + "/v2/languages"
	if err := lt.limiter.Wait(ctx, endpoint); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := lt.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("languagetool unreachable at %s: %w", lt.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("languagetool availability check failed (HTTP %d from %s)", resp.StatusCode, lt.baseURL)
	}
	return nil
}

// Check submits text to /v2/check
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]model.Finding, error) {
	endpoint := lt.baseURL + "/v2/check"

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.language)
	if len(lt.disabledRules) > 0 {
		form.Set("disabledRules", strings.Join(lt.disabledRules, ","))
	}

	if err := lt.limiter.Wait(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := lt.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languagetool API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed ltResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	findings := make([]model.Finding, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		findings = append(findings, m.toFinding())
	}
	return findings, nil
}

// Close drops idle connections to the server
func (lt *LanguageTool) Close() error {
	lt.httpClient.CloseIdleConnections()
	return nil
}

func (m ltMatch) toFinding() model.Finding {
	replacements := make([]string, 0, len(m.Replacements))
	for _, r := range m.Replacements {
		replacements = append(replacements, r.Value)
	}

	offset, length := runeSpan(m.Context.Text, m.Context.Offset, m.Context.Length)

	return model.Finding{
		Message:      m.Message,
		ShortMessage: m.ShortMessage,
		RuleID:       m.Rule.ID,
		Category:     m.Rule.Category.ID,
		Context:      m.Context.Text,
		Offset:       offset,
		Length:       length,
		Replacements: capReplacements(replacements),
	}
}

// runeSpan converts a UTF-16 offset and length within text to runes.
// Out of range values are passed through for the filter to clamp.
func runeSpan(text string, offset, length int) (int, int) {
	units := utf16.Encode([]rune(text))
	if offset < 0 || length < 0 || offset+length > len(units) {
		return offset, length
	}

	start := len(utf16.Decode(units[:offset]))
	end := len(utf16.Decode(units[:offset+length]))
	return start, end - start
}
