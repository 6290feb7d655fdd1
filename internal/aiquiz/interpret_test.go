package aiquiz

import (
	"testing"
)

const wellFormedResponse = `{
  "questions": [
    {
      "text": "What does a goroutine run on?",
      "options": ["An OS thread", "A managed scheduler", "A VM", "A coroutine pool"],
      "correctIndex": 1,
      "explanation": "The runtime multiplexes goroutines onto OS threads."
    }
  ]
}`

func TestInterpret(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		set, genErr := Interpret(wellFormedResponse, 1, DifficultyEasy)
		if genErr != nil {
			t.Fatalf("unexpected error: %v", genErr)
		}
		if set.ActualCount != 1 || set.RequestedCount != 1 {
			t.Errorf("counts wrong: actual=%d requested=%d", set.ActualCount, set.RequestedCount)
		}
		if set.Questions[0].CorrectIndex != 1 {
			t.Errorf("correctIndex not carried: %+v", set.Questions[0])
		}
	})

	t.Run("FencedJSON", func(t *testing.T) {
		fenced := "```json\n" + wellFormedResponse + "\n```"
		set, genErr := Interpret(fenced, 1, DifficultyEasy)
		if genErr != nil {
			t.Fatalf("fenced response should be accepted: %v", genErr)
		}
		if set.ActualCount != 1 {
			t.Errorf("expected 1 question, got %d", set.ActualCount)
		}
	})

	t.Run("FenceWithoutLanguageTag", func(t *testing.T) {
		fenced := "```\n" + wellFormedResponse + "\n```"
		if _, genErr := Interpret(fenced, 1, DifficultyEasy); genErr != nil {
			t.Fatalf("bare fence should be stripped too: %v", genErr)
		}
	})

	t.Run("DoubleFence", func(t *testing.T) {
		fenced := "```\n```json\n" + wellFormedResponse + "\n```\n```"
		_, genErr := Interpret(fenced, 1, DifficultyEasy)
		if genErr == nil || genErr.Kind != MalformedOutput {
			t.Fatalf("only one fence layer is stripped, expected MalformedOutput, got %v", genErr)
		}
	})

	t.Run("LeadingFenceOnly", func(t *testing.T) {
		_, genErr := Interpret("```json\n{\"questions\": []}", 1, DifficultyEasy)
		if genErr == nil || genErr.Kind != MalformedOutput {
			t.Fatalf("unbalanced fence should not be stripped, got %v", genErr)
		}
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, genErr := Interpret("not json at all", 1, DifficultyEasy)
		if genErr == nil || genErr.Kind != MalformedOutput {
			t.Fatalf("expected MalformedOutput, got %v", genErr)
		}
		if genErr.Raw != "not json at all" {
			t.Error("raw response should be preserved for diagnostics")
		}
	})

	t.Run("MissingQuestionsField", func(t *testing.T) {
		_, genErr := Interpret(`{"items": []}`, 1, DifficultyEasy)
		if genErr == nil || genErr.Kind != MissingQuestionsField {
			t.Fatalf("expected MissingQuestionsField, got %v", genErr)
		}
	})

	t.Run("EmptyQuestionsIsShortBatch", func(t *testing.T) {
		set, genErr := Interpret(`{"questions": []}`, 1, DifficultyEasy)
		if genErr != nil {
			t.Fatalf("an empty array is a batch of zero, not a failure: %v", genErr)
		}
		if set.ActualCount != 0 || set.RequestedCount != 1 {
			t.Errorf("counts wrong: actual=%d requested=%d", set.ActualCount, set.RequestedCount)
		}
	})

	t.Run("FailsFastOnFirstInvalid", func(t *testing.T) {
		raw := `{"questions": [
			{"text": "A fine first question?", "options": ["a", "b"], "correctIndex": 0},
			{"text": "Bad index here, right?", "options": ["a", "b"], "correctIndex": 5},
			{"text": "Also broken question?", "options": [], "correctIndex": 0}
		]}`
		_, genErr := Interpret(raw, 3, DifficultyEasy)
		if genErr == nil || genErr.Kind != InvalidQuestion {
			t.Fatalf("expected InvalidQuestion, got %v", genErr)
		}
		if genErr.Index != 1 {
			t.Errorf("should stop at the first invalid question (index 1), got %d", genErr.Index)
		}
	})

	t.Run("MissingCorrectIndex", func(t *testing.T) {
		raw := `{"questions": [{"text": "No answer marked here?", "options": ["a", "b"]}]}`
		_, genErr := Interpret(raw, 1, DifficultyEasy)
		if genErr == nil || genErr.Kind != InvalidQuestion || genErr.Index != 0 {
			t.Fatalf("absent correctIndex must not default to 0, got %v", genErr)
		}
	})

	t.Run("FewerThanRequestedIsSuccess", func(t *testing.T) {
		set, genErr := Interpret(wellFormedResponse, 5, DifficultyEasy)
		if genErr != nil {
			t.Fatalf("a short batch is still usable: %v", genErr)
		}
		if set.RequestedCount != 5 || set.ActualCount != 1 {
			t.Errorf("counts wrong: %+v", set)
		}
	})

	t.Run("CoercesNonStringExplanation", func(t *testing.T) {
		raw := `{"questions": [{"text": "Numbers as explanation?", "options": ["a", "b"], "correctIndex": 0, "explanation": 42}]}`
		set, genErr := Interpret(raw, 1, DifficultyEasy)
		if genErr != nil {
			t.Fatalf("non-string explanation should be coerced: %v", genErr)
		}
		if set.Questions[0].Explanation != "42" {
			t.Errorf("expected coerced %q, got %q", "42", set.Questions[0].Explanation)
		}
	})
}
