package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/linweiyu/bugtrack-go/internal/domain/analysis"
)

const analysisSystemPrompt = `You review source code for defects. Return ONLY a JSON object with these fields:
- "issues": array of {"type": "bug"|"improvement", "line": int, "description": string, "severity": "low"|"medium"|"high", "suggestion": string}
- "summary": one-sentence overview of the findings
- "quality_score": integer 0-100

Return valid JSON only, no markdown fencing or explanation.`

// AnthropicProvider asks Claude to review the submitted snippet.
type AnthropicProvider struct {
	api   *anthropic.Client
	model anthropic.Model
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicProvider{
		api:   &client,
		model: anthropic.Model(model),
	}
}

func (p *AnthropicProvider) Analyze(ctx context.Context, code, language string) (analysis.Result, error) {
	var prompt strings.Builder
	if language != "" {
		fmt.Fprintf(&prompt, "Language: %s\n\n", language)
	}
	prompt.WriteString("Review this code:\n\n")
	prompt.WriteString(code)

	msg, err := p.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: analysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.String())),
		},
	})
	if err != nil {
		return analysis.Result{}, fmt.Errorf("anthropic API call: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return analysis.Result{}, fmt.Errorf("no text content in API response")
	}

	text = stripFencing(text)

	var result analysis.Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return analysis.Result{}, fmt.Errorf("parse provider response: %w", err)
	}
	return result, nil
}

func stripFencing(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		lines := strings.SplitN(text, "\n", 2)
		if len(lines) > 1 {
			text = lines[1]
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}
