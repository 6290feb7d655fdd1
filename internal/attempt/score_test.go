package attempt

import (
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{Text: "First question text?", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Text: "Second question text?", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
		{Text: "Third question text?", Options: []string{"a", "b"}, CorrectIndex: 1},
	}
}

func TestScoreAnswers(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		score, total, err := ScoreAnswers(sampleQuestions(), []Answer{
			{QuestionIndex: 0, SelectedIndex: 0},
			{QuestionIndex: 1, SelectedIndex: 2},
			{QuestionIndex: 2, SelectedIndex: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 3 || total != 3 {
			t.Errorf("expected 3/3, got %d/%d", score, total)
		}
	})

	t.Run("PartiallyCorrect", func(t *testing.T) {
		score, total, err := ScoreAnswers(sampleQuestions(), []Answer{
			{QuestionIndex: 0, SelectedIndex: 0},
			{QuestionIndex: 1, SelectedIndex: 0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 1 || total != 3 {
			t.Errorf("expected 1/3, got %d/%d", score, total)
		}
	})

	t.Run("UnansweredScoreNothing", func(t *testing.T) {
		score, total, err := ScoreAnswers(sampleQuestions(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0 || total != 3 {
			t.Errorf("expected 0/3, got %d/%d", score, total)
		}
	})

	t.Run("QuestionIndexOutOfRange", func(t *testing.T) {
		_, _, err := ScoreAnswers(sampleQuestions(), []Answer{{QuestionIndex: 3, SelectedIndex: 0}})
		if err == nil {
			t.Fatal("expected rejection")
		}
	})

	t.Run("DuplicateAnswer", func(t *testing.T) {
		_, _, err := ScoreAnswers(sampleQuestions(), []Answer{
			{QuestionIndex: 0, SelectedIndex: 0},
			{QuestionIndex: 0, SelectedIndex: 1},
		})
		if err == nil {
			t.Fatal("expected rejection")
		}
	})

	t.Run("SelectedIndexOutOfRange", func(t *testing.T) {
		_, _, err := ScoreAnswers(sampleQuestions(), []Answer{{QuestionIndex: 0, SelectedIndex: 5}})
		if err == nil {
			t.Fatal("expected rejection")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		answers := []Answer{{QuestionIndex: 2, SelectedIndex: 1}}
		a, _, _ := ScoreAnswers(sampleQuestions(), answers)
		b, _, _ := ScoreAnswers(sampleQuestions(), answers)
		if a != b {
			t.Error("same inputs must score identically")
		}
	})
}
