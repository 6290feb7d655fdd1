package aiquiz

import (
	"context"

	"github.com/quizforge/quizforge/internal/config"
)

type Service interface {
	Generate(ctx context.Context, in GenerateInput) (*GeneratedQuestionSet, error)
	Explain(ctx context.Context, in ExplainInput) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// Generate runs the full pipeline: extract text from an uploaded
// document if one was given, build the prompt, call the model once and
// interpret the response. A rejected response is not retried, and the
// result is never persisted here; the caller decides whether to save it
// through the normal quiz creation path.
func (s *service) Generate(ctx context.Context, in GenerateInput) (*GeneratedQuestionSet, error) {
	log := config.WithContext(ctx)

	content := in.Content
	if len(in.Document) > 0 {
		extracted, extErr := ExtractText(in.Filename, in.Document)
		if extErr != nil {
			return nil, extErr
		}
		content = extracted
	}

	prompt, err := BuildPrompt(content, in.QuestionCount, in.Difficulty)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		return nil, err
	}

	set, genErr := Interpret(raw, in.QuestionCount, in.Difficulty)
	if genErr != nil {
		log.WithField("kind", genErr.Kind).Warn("model response rejected")
		return nil, genErr
	}
	if set.ActualCount < set.RequestedCount {
		log.Warnf("model returned %d of %d requested questions", set.ActualCount, set.RequestedCount)
	}
	return set, nil
}

func (s *service) Explain(ctx context.Context, in ExplainInput) (string, error) {
	prompt, err := BuildExplainPrompt(in)
	if err != nil {
		return "", err
	}
	return s.provider.SendPrompt(ctx, prompt)
}
