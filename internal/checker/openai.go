package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ppiankov/pocheck/internal/model"
	"github.com/ppiankov/pocheck/internal/worker"
	"github.com/sashabaranov/go-openai"
)

// OpenAI asks an OpenAI-compatible chat model to proofread each string
type OpenAI struct {
	client        *openai.Client
	model         string
	language      string
	timeout       time.Duration
	disabledRules []string
	endpoint      string
	limiter       *worker.Limiter
}

type openAIResult struct {
	Matches []openAIMatch `json:"matches"`
}

type openAIMatch struct {
	Message      string   `json:"message"`
	RuleID       string   `json:"ruleId"`
	Text         string   `json:"text"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
}

const openAISystemPrompt = `You proofread user interface strings from software translation catalogs.
Report only real spelling and grammar mistakes. Do not rewrite style, do not flag placeholders such as %s, {name} or HTML tags.
Answer with a JSON object only, shaped as:
{"matches":[{"message":"<explanation>","ruleId":"<SPELLING|GRAMMAR|PUNCTUATION|TYPOGRAPHY>","text":"<exact flagged text>","offset":<character offset of the flagged text>,"length":<character count>,"replacements":["<best fix>", "..."]}]}
Return {"matches":[]} when the string is correct.`

// NewOpenAI creates the openai backend. An API key is required.
func NewOpenAI(opts Options) (*OpenAI, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set checker.apiKey or OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.URL != "" && opts.URL != model.DefaultConfig().Checker.URL {
		clientConfig.BaseURL = opts.URL
	}

	name := opts.Model
	if name == "" {
		name = openai.GPT4oMini
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	language := opts.Language
	if language == "" {
		language = "en-US"
	}

	return &OpenAI{
		client:        openai.NewClientWithConfig(clientConfig),
		model:         name,
		language:      language,
		timeout:       timeout,
		disabledRules: opts.DisabledRules,
		endpoint:      clientConfig.BaseURL + "/chat/completions",
		limiter:       worker.NewLimiter(opts.RequestsPerSecond, opts.Burst),
	}, nil
}

// Name returns the backend name
func (o *OpenAI) Name() string {
	return model.BackendOpenAI
}

// Check sends text to the chat completions API and parses the JSON answer
func (o *OpenAI) Check(ctx context.Context, text string) ([]model.Finding, error) {
	if err := o.limiter.Wait(ctx, o.endpoint); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: openAISystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Language: %s\nString:\n%s", o.language, text),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := o.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var result openAIResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("unmarshal OpenAI answer: %w", err)
	}

	findings := make([]model.Finding, 0, len(result.Matches))
	for _, m := range result.Matches {
		if slices.Contains(o.disabledRules, m.RuleID) {
			continue
		}
		offset, length := locate(text, m)
		findings = append(findings, model.Finding{
			Message:      m.Message,
			RuleID:       m.RuleID,
			Context:      text,
			Offset:       offset,
			Length:       length,
			Replacements: capReplacements(m.Replacements),
		})
	}
	return findings, nil
}

// Close is a no-op, the HTTP client holds no session
func (o *OpenAI) Close() error {
	return nil
}

// locate trusts the model's offsets only when they point at the text it
// quoted; otherwise the quoted text is searched for in the string.
func locate(text string, m openAIMatch) (int, int) {
	runes := []rune(text)
	if m.Text == "" {
		return m.Offset, m.Length
	}

	quoted := []rune(m.Text)
	if m.Offset >= 0 && m.Offset+len(quoted) <= len(runes) && string(runes[m.Offset:m.Offset+len(quoted)]) == m.Text {
		return m.Offset, len(quoted)
	}

	if idx := strings.Index(text, m.Text); idx >= 0 {
		return len([]rune(text[:idx])), len(quoted)
	}
	return m.Offset, m.Length
}
