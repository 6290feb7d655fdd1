package aiquiz

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinContentChars is the floor for directly supplied text content.
	MinContentChars = 100
	// MaxContentChars is the truncation ceiling; content beyond it is
	// silently dropped from the tail, never rejected.
	MaxContentChars = 100_000

	MinQuestionCount = 1
	MaxQuestionCount = 20
)

var (
	ErrContentTooShort   = fmt.Errorf("content must be at least %d characters", MinContentChars)
	ErrCountOutOfRange   = fmt.Errorf("question count must be between %d and %d", MinQuestionCount, MaxQuestionCount)
	ErrInvalidDifficulty = errors.New(`difficulty must be one of "easy", "medium" or "hard"`)
)

const promptTemplate = `You are an expert quiz creator. Generate %d multiple-choice quiz questions based on the following content.

DIFFICULTY LEVEL: %s

CONTENT:
%s

REQUIREMENTS:
1. Create EXACTLY %d questions
2. Each question must have 4 options
3. Questions should be clear and unambiguous
4. One option must be correct
5. Include a brief explanation for the correct answer
6. Difficulty should be: %s

OUTPUT FORMAT (JSON):
{
  "questions": [
    {
      "text": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctIndex": 0,
      "explanation": "Why this answer is correct"
    }
  ]
}

IMPORTANT:
- Return ONLY valid JSON, no markdown formatting or extra text
- Ensure questions are relevant to the provided content
- Make sure correctIndex is 0-3 (array index)
- Questions should test understanding, not just memorization

Generate the quiz questions now:`

// BuildPrompt assembles the deterministic instruction text for the model.
// All clamping happens here, before any network call: short content and an
// out-of-range count are rejections, over-long content keeps its prefix.
func BuildPrompt(content string, questionCount int, difficulty Difficulty) (string, error) {
	content = strings.TrimSpace(content)
	if len([]rune(content)) < MinContentChars {
		return "", ErrContentTooShort
	}
	if questionCount < MinQuestionCount || questionCount > MaxQuestionCount {
		return "", ErrCountOutOfRange
	}
	if !difficulty.IsValid() {
		return "", ErrInvalidDifficulty
	}

	if runes := []rune(content); len(runes) > MaxContentChars {
		content = string(runes[:MaxContentChars])
	}

	return fmt.Sprintf(promptTemplate,
		questionCount, difficulty, content, questionCount, difficulty), nil
}
