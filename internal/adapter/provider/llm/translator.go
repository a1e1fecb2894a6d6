// Package llm translates texts with the Anthropic Messages API and asks the
// model for the meanings of every source word in the same call.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/bireader/internal/config"
	"github.com/heartmarshall/bireader/internal/provider"
)

// Translator is a translation provider backed by Claude.
type Translator struct {
	client         anthropic.Client
	model          string
	maxTokens      int64
	sourceLanguage string
	targetLanguage string
	log            *slog.Logger
}

// NewTranslator creates a Translator from cfg. Extra options are appended to
// the client options, which lets callers point it at another base URL.
func NewTranslator(cfg config.TranslatorConfig, logger *slog.Logger, opts ...option.RequestOption) *Translator {
	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	clientOpts = append(clientOpts, opts...)

	return &Translator{
		client:         anthropic.NewClient(clientOpts...),
		model:          cfg.Model,
		maxTokens:      cfg.MaxTokens,
		sourceLanguage: cfg.SourceLanguage,
		targetLanguage: cfg.TargetLanguage,
		log:            logger.With("adapter", "llm"),
	}
}

// llmResponse is the JSON object the prompt asks for.
type llmResponse struct {
	Translation string                `json:"translation"`
	Words       []map[string][]string `json:"words"`
}

// Translate sends text to the model and parses the translation and word
// meanings from its reply.
func (t *Translator) Translate(ctx context.Context, text string) (*provider.TranslationResult, error) {
	start := time.Now()

	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: t.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(t.sourceLanguage, t.targetLanguage, text))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: messages api: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("llm: empty response")
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	var parsed llmResponse
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("llm: decode response: %w", err)
	}
	if strings.TrimSpace(parsed.Translation) == "" {
		return nil, fmt.Errorf("llm: response has no translation")
	}

	result := &provider.TranslationResult{
		Translation: parsed.Translation,
		Words:       mergeWords(parsed.Words),
	}

	t.log.InfoContext(ctx, "text translated",
		slog.String("model", t.model),
		slog.Int("chars", len(text)),
		slog.Int("words", len(result.Words)),
		slog.Duration("took", time.Since(start)),
	)

	return result, nil
}

// mergeWords flattens the list of single-key objects into one map. The first
// occurrence of a word wins.
func mergeWords(items []map[string][]string) map[string][]string {
	words := make(map[string][]string)
	for _, item := range items {
		for w, meanings := range item {
			w = strings.TrimSpace(w)
			if w == "" || len(meanings) == 0 {
				continue
			}
			if _, ok := words[w]; ok {
				continue
			}
			words[w] = meanings
		}
	}
	return words
}

// buildPrompt creates the LLM prompt for one text.
func buildPrompt(sourceLanguage, targetLanguage, text string) string {
	return fmt.Sprintf(`You are a professional %[1]s-%[2]s translator helping a language learner.

Translate the text below from %[1]s into %[2]s. Keep one translated sentence per source sentence, in the same order, and end every sentence with ".", "!" or "?".

Then list every distinct word of the source text exactly as it appears (keep capitalization, drop surrounding punctuation) with up to three %[2]s meanings, most common first.

Text:
%[3]s

Output ONLY a valid JSON object matching this exact schema:
{
  "translation": "<full translated text>",
  "words": [
    {"<source word>": ["<meaning 1>", "<meaning 2>", "<meaning 3>"]}
  ]
}

Output ONLY the JSON, no markdown, no explanations`, sourceLanguage, targetLanguage, text)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
