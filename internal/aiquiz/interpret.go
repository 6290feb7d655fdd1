package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

// FailureKind classifies why a model response could not be turned into
// a question set.
type FailureKind string

const (
	MalformedOutput       FailureKind = "malformed_output"
	MissingQuestionsField FailureKind = "missing_questions_field"
	InvalidQuestion       FailureKind = "invalid_question"
)

// GenerationError describes a rejected model response. Raw carries the
// original response text for diagnostics; handlers decide whether to
// expose it.
type GenerationError struct {
	Kind   FailureKind
	Index  int
	Reason string
	Raw    string
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case InvalidQuestion:
		return fmt.Sprintf("generated question %d is invalid: %s", e.Index, e.Reason)
	case MissingQuestionsField:
		return "model response has no questions"
	default:
		return "model response is not valid JSON"
	}
}

type rawQuestion struct {
	Text         string          `json:"text"`
	Options      []string        `json:"options"`
	CorrectIndex *int            `json:"correctIndex"`
	Explanation  json.RawMessage `json:"explanation"`
}

type rawResponse struct {
	Questions []rawQuestion `json:"questions"`
}

// stripFence removes a single markdown code fence wrapping the whole
// response. Both the opening and the closing fence line must be present
// for anything to be stripped; only one layer is removed.
func stripFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	rest := trimmed[3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Drop a language tag like ```json on the opening line.
		rest = rest[nl+1:]
	} else {
		return trimmed
	}
	if !strings.HasSuffix(strings.TrimSpace(rest), "```") {
		return trimmed
	}
	rest = strings.TrimSpace(rest)
	return strings.TrimSpace(rest[:len(rest)-3])
}

// Interpret parses a raw model response into a question set. Unlike the
// quiz validation gate it fails fast: the first invalid question aborts
// interpretation, since a single bad question means the whole batch is
// untrustworthy. Receiving fewer questions than requested is not an
// error; ActualCount records what came back.
func Interpret(raw string, requestedCount int, difficulty Difficulty) (*GeneratedQuestionSet, *GenerationError) {
	payload := stripFence(raw)

	var resp rawResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, &GenerationError{Kind: MalformedOutput, Reason: err.Error(), Raw: raw}
	}
	// An absent field is a failure; an empty array is just a batch of
	// zero questions, the short-batch rule applies.
	if resp.Questions == nil {
		return nil, &GenerationError{Kind: MissingQuestionsField, Raw: raw}
	}

	questions := make([]quiz.Question, 0, len(resp.Questions))
	for i, rq := range resp.Questions {
		if rq.CorrectIndex == nil {
			return nil, &GenerationError{
				Kind:   InvalidQuestion,
				Index:  i,
				Reason: "correctIndex is missing",
				Raw:    raw,
			}
		}
		q := quiz.Question{
			Text:         rq.Text,
			Options:      rq.Options,
			CorrectIndex: *rq.CorrectIndex,
			Explanation:  coerceExplanation(rq.Explanation),
		}
		if violations := quiz.QuestionViolations(i, q); len(violations) > 0 {
			return nil, &GenerationError{
				Kind:   InvalidQuestion,
				Index:  i,
				Reason: violations[0].Message,
				Raw:    raw,
			}
		}
		questions = append(questions, quiz.NormalizeQuestion(q))
	}

	return &GeneratedQuestionSet{
		Questions:      questions,
		GeneratedAt:    time.Now().UTC(),
		RequestedCount: requestedCount,
		ActualCount:    len(questions),
		Difficulty:     difficulty,
	}, nil
}

// coerceExplanation tolerates models that emit a non-string explanation
// by stringifying whatever JSON value came back.
func coerceExplanation(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
