package aiquiz

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	content := strings.Repeat("Go is a statically typed language. ", 10)

	t.Run("Valid", func(t *testing.T) {
		prompt, err := BuildPrompt(content, 5, DifficultyMedium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "Create EXACTLY 5 questions") {
			t.Error("prompt should pin the question count")
		}
		if !strings.Contains(prompt, "medium") {
			t.Error("prompt should carry the difficulty")
		}
		if !strings.Contains(prompt, "statically typed") {
			t.Error("prompt should embed the content")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, _ := BuildPrompt(content, 5, DifficultyEasy)
		b, _ := BuildPrompt(content, 5, DifficultyEasy)
		if a != b {
			t.Error("same input must produce the same prompt")
		}
	})

	t.Run("ContentTooShort", func(t *testing.T) {
		_, err := BuildPrompt("too short", 5, DifficultyEasy)
		if !errors.Is(err, ErrContentTooShort) {
			t.Errorf("expected ErrContentTooShort, got %v", err)
		}
	})

	t.Run("WhitespacePadding", func(t *testing.T) {
		padded := strings.Repeat(" ", 200) + "short"
		if _, err := BuildPrompt(padded, 5, DifficultyEasy); !errors.Is(err, ErrContentTooShort) {
			t.Errorf("padding must not count towards the minimum, got %v", err)
		}
	})

	t.Run("CountBounds", func(t *testing.T) {
		for _, count := range []int{0, 21, -3} {
			if _, err := BuildPrompt(content, count, DifficultyEasy); !errors.Is(err, ErrCountOutOfRange) {
				t.Errorf("count %d: expected ErrCountOutOfRange, got %v", count, err)
			}
		}
		for _, count := range []int{1, 20} {
			if _, err := BuildPrompt(content, count, DifficultyEasy); err != nil {
				t.Errorf("count %d should be accepted: %v", count, err)
			}
		}
	})

	t.Run("InvalidDifficulty", func(t *testing.T) {
		if _, err := BuildPrompt(content, 5, Difficulty("extreme")); !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("expected ErrInvalidDifficulty, got %v", err)
		}
	})

	t.Run("TruncatesLongContent", func(t *testing.T) {
		long := strings.Repeat("a", MaxContentChars) + strings.Repeat("b", 50_000)
		prompt, err := BuildPrompt(long, 5, DifficultyHard)
		if err != nil {
			t.Fatalf("over-long content must not be rejected: %v", err)
		}
		if strings.Contains(prompt, "bbbb") {
			t.Error("content past the limit should be dropped")
		}
		if !strings.Contains(prompt, strings.Repeat("a", MaxContentChars)) {
			t.Error("the prefix up to the limit should survive intact")
		}
	})
}
