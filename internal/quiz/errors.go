package quiz

import "errors"

var (
	// ErrNotFound covers both a missing quiz and a private quiz accessed by
	// a caller who is neither owner nor admin; the API never confirms the
	// existence of private quizzes it will not serve.
	ErrNotFound = errors.New("quiz not found")

	// ErrForbidden is returned when a non-owner tries to modify a public
	// quiz, where existence is not a secret.
	ErrForbidden = errors.New("not allowed to modify this quiz")
)
