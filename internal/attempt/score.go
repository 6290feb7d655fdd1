package attempt

import (
	"fmt"

	"github.com/quizforge/quizforge/internal/quiz"
)

// ScoreAnswers grades a set of answers against the quiz questions. Pure:
// no I/O, and the same inputs always produce the same score. Unanswered
// questions simply score nothing; a duplicate or out-of-range answer is
// a malformed submission and rejected outright.
func ScoreAnswers(questions []quiz.Question, answers []Answer) (score int, total int, err error) {
	total = len(questions)
	seen := make(map[int]bool, len(answers))

	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(questions) {
			return 0, 0, fmt.Errorf("answer references question %d, quiz has %d questions", a.QuestionIndex, len(questions))
		}
		if seen[a.QuestionIndex] {
			return 0, 0, fmt.Errorf("question %d answered more than once", a.QuestionIndex)
		}
		seen[a.QuestionIndex] = true

		q := questions[a.QuestionIndex]
		if a.SelectedIndex < 0 || a.SelectedIndex >= len(q.Options) {
			return 0, 0, fmt.Errorf("answer for question %d selects option %d of %d", a.QuestionIndex, a.SelectedIndex, len(q.Options))
		}
		if a.SelectedIndex == q.CorrectIndex {
			score++
		}
	}
	return score, total, nil
}
