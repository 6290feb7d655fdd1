package aiquiz

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidExplainInput = errors.New("question text, options and a valid correct index are required")

// BuildExplainPrompt assembles the tutoring prompt for a single answered
// question. If the user's answer is known and wrong, the model is also
// asked to address it.
func BuildExplainPrompt(in ExplainInput) (string, error) {
	if strings.TrimSpace(in.QuestionText) == "" || len(in.Options) == 0 {
		return "", ErrInvalidExplainInput
	}
	if in.CorrectIndex < 0 || in.CorrectIndex >= len(in.Options) {
		return "", ErrInvalidExplainInput
	}

	correctAnswer := in.Options[in.CorrectIndex]

	var userAnswer string
	if in.UserAnswer != nil {
		if *in.UserAnswer < 0 || *in.UserAnswer >= len(in.Options) {
			return "", ErrInvalidExplainInput
		}
		userAnswer = in.Options[*in.UserAnswer]
	}

	var b strings.Builder
	b.WriteString("You are a helpful tutor explaining quiz answers to students.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", in.QuestionText)
	for i, opt := range in.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "\nCorrect Answer: %s\n", correctAnswer)
	if userAnswer != "" {
		fmt.Fprintf(&b, "Student's Answer: %s\n", userAnswer)
	}
	fmt.Fprintf(&b, "\nProvide a clear, educational explanation of why %q is the correct answer.\n", correctAnswer)
	if userAnswer != "" && userAnswer != correctAnswer {
		fmt.Fprintf(&b, "Also briefly explain why %q is incorrect.\n", userAnswer)
	}
	b.WriteString("\nKeep your explanation:\n- Clear and concise (2-4 sentences)\n- Educational and encouraging\n- Easy to understand for beginners\n")

	return b.String(), nil
}
