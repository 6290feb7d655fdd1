package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quizforge/quizforge/internal/config"
)

const openaiSystemMessage = "You are an expert quiz creator. Follow the user's instructions exactly and respond with JSON only."

type openaiProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider() (Provider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY must be set when AI_PROVIDER is openai")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4o
	}
	return &openaiProvider{client: openai.NewClient(apiKey), model: model}, nil
}

func (p *openaiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: openaiSystemMessage,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		log.WithError(err).Error("OpenAI generation failed")
		return "", fmt.Errorf("openai generation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
