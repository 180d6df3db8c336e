package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/unclebandit/campaign-copy-backend/internal/config"
)

const jsonMIMEType = "application/json"

// GeminiProvider calls the Gemini generateContent API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiProvider(ctx context.Context, cfg config.ProviderConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Key()))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Complete issues one generateContent call and returns the cleaned text part.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(p.temperature)
	model.ResponseMIMEType = jsonMIMEType
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned, possible safety filter")
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts in the first candidate")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			return "", fmt.Errorf("expected text part in response, got %T", part)
		}
		b.WriteString(string(text))
	}

	return CleanPayload(b.String()), nil
}

// CleanPayload strips whitespace and a surrounding markdown code fence.
func CleanPayload(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
