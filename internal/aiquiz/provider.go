package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quizforge/quizforge/internal/config"
	"google.golang.org/genai"
)

// Provider sends a prepared prompt to a language model and returns the
// raw response text. Interpretation of the text is not its job.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

// NewProvider picks the backing model from AI_PROVIDER. "gemini" is the
// default; "openai" switches to the OpenAI chat API.
func NewProvider(ctx context.Context) (Provider, error) {
	switch os.Getenv("AI_PROVIDER") {
	case "", "gemini":
		return NewGeminiProvider(ctx)
	case "openai":
		return NewOpenAIProvider()
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", os.Getenv("AI_PROVIDER"))
	}
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini generation failed")
		return "", fmt.Errorf("gemini generation: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}
	log.Debugf("Gemini returned %d bytes", len(raw))
	return raw, nil
}
