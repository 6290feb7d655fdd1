package aiquiz

import (
	"context"
	"fmt"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI provider: %w", err)
	}
	service := NewService(provider)

	return &AIQuizContainer{
		Handler: NewHandler(service),
		Service: service,
	}, nil
}
