package aiquiz

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeProvider) SendPrompt(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestServiceGenerate(t *testing.T) {
	ctx := context.Background()
	content := strings.Repeat("Concurrency in Go is built around goroutines and channels. ", 5)

	t.Run("Success", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		svc := NewService(provider)

		set, err := svc.Generate(ctx, GenerateInput{
			Content:       content,
			QuestionCount: 1,
			Difficulty:    DifficultyEasy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if set.ActualCount != 1 {
			t.Errorf("expected 1 question, got %d", set.ActualCount)
		}
		if len(provider.prompts) != 1 {
			t.Fatalf("expected exactly one model call, got %d", len(provider.prompts))
		}
	})

	t.Run("RejectsBeforeCallingModel", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		svc := NewService(provider)

		_, err := svc.Generate(ctx, GenerateInput{
			Content:       "too short",
			QuestionCount: 1,
			Difficulty:    DifficultyEasy,
		})
		if !errors.Is(err, ErrContentTooShort) {
			t.Fatalf("expected ErrContentTooShort, got %v", err)
		}
		if len(provider.prompts) != 0 {
			t.Error("a rejected request must never reach the model")
		}
	})

	t.Run("NoRetryOnBadResponse", func(t *testing.T) {
		provider := &fakeProvider{response: "garbage"}
		svc := NewService(provider)

		_, err := svc.Generate(ctx, GenerateInput{
			Content:       content,
			QuestionCount: 1,
			Difficulty:    DifficultyEasy,
		})
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected GenerationError, got %v", err)
		}
		if len(provider.prompts) != 1 {
			t.Errorf("a rejected response must not be retried, got %d calls", len(provider.prompts))
		}
	})

	t.Run("DocumentOverridesContent", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		svc := NewService(provider)

		doc := strings.Repeat("Uploaded document text about interfaces. ", 5)
		_, err := svc.Generate(ctx, GenerateInput{
			Content:       content,
			Document:      []byte(doc),
			Filename:      "notes.txt",
			QuestionCount: 1,
			Difficulty:    DifficultyEasy,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(provider.prompts[0], "Uploaded document text") {
			t.Error("prompt should be built from the extracted document")
		}
	})

	t.Run("ExtractionFailure", func(t *testing.T) {
		svc := NewService(&fakeProvider{response: wellFormedResponse})

		_, err := svc.Generate(ctx, GenerateInput{
			Document:      []byte("data"),
			Filename:      "slides.pptx",
			QuestionCount: 1,
			Difficulty:    DifficultyEasy,
		})
		var extErr *ExtractionError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected ExtractionError, got %v", err)
		}
	})
}

func TestServiceExplain(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider := &fakeProvider{response: "Because var declares a variable."}
		svc := NewService(provider)

		explanation, err := svc.Explain(ctx, ExplainInput{
			QuestionText: "What keyword declares a variable?",
			Options:      []string{"var", "let"},
			CorrectIndex: 0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if explanation == "" {
			t.Error("expected an explanation")
		}
		if !strings.Contains(provider.prompts[0], "What keyword declares a variable?") {
			t.Error("prompt should carry the question")
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		provider := &fakeProvider{}
		svc := NewService(provider)

		_, err := svc.Explain(ctx, ExplainInput{CorrectIndex: 3})
		if !errors.Is(err, ErrInvalidExplainInput) {
			t.Fatalf("expected ErrInvalidExplainInput, got %v", err)
		}
		if len(provider.prompts) != 0 {
			t.Error("invalid input must not reach the model")
		}
	})
}

func TestBuildExplainPrompt(t *testing.T) {
	wrong := 1
	in := ExplainInput{
		QuestionText: "Which type is a slice header?",
		Options:      []string{"reflect.SliceHeader", "runtime.slice"},
		CorrectIndex: 0,
		UserAnswer:   &wrong,
	}

	prompt, err := BuildExplainPrompt(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, `"reflect.SliceHeader"`) {
		t.Error("prompt should name the correct answer")
	}
	if !strings.Contains(prompt, "is incorrect") {
		t.Error("a wrong answer should be addressed")
	}
}
