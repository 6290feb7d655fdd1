package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	QuestionMinLen    = 5
	OptionsMin        = 2
	OptionsMax        = 6
	TagsMax           = 10
)

// Payload is the structurally loose quiz candidate as it arrives from an
// untrusted client or from the generation interpreter.
type Payload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Visibility  string     `json:"visibility"`
	Tags        []string   `json:"tags"`
}

// ValidationError is one violated rule. Index is set for per-question rules
// so a client can point at every bad field at once.
type ValidationError struct {
	Field   string `json:"field"`
	Index   *int   `json:"index,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Index != nil {
		return fmt.Sprintf("%s[%d]: %s", e.Field, *e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a candidate against the quiz invariants, collecting every
// violation rather than stopping at the first. On success it returns a
// normalized quiz with all strings trimmed and defaults applied; the caller
// still has to assign identity and ownership. Pure: no I/O, identical input
// yields identical output, and re-validating a normalized result is a no-op.
func Validate(p Payload) (*Quiz, []ValidationError) {
	var violations []ValidationError

	title := strings.TrimSpace(p.Title)
	if n := utf8.RuneCountInString(title); n < TitleMinLen || n > TitleMaxLen {
		violations = append(violations, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be %d-%d characters", TitleMinLen, TitleMaxLen),
		})
	}

	description := strings.TrimSpace(p.Description)
	if utf8.RuneCountInString(description) > DescriptionMaxLen {
		violations = append(violations, ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at most %d characters", DescriptionMaxLen),
		})
	}

	if len(p.Questions) == 0 {
		violations = append(violations, ValidationError{
			Field:   "questions",
			Message: "quiz must have at least 1 question",
		})
	}

	questions := make(QuestionList, 0, len(p.Questions))
	for i, q := range p.Questions {
		violations = append(violations, QuestionViolations(i, q)...)
		questions = append(questions, NormalizeQuestion(q))
	}

	if len(p.Tags) > TagsMax {
		violations = append(violations, ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("maximum %d tags allowed", TagsMax),
		})
	}

	visibility := Visibility(strings.TrimSpace(p.Visibility))
	if visibility == "" {
		visibility = VisibilityPublic
	} else if !visibility.IsValid() {
		violations = append(violations, ValidationError{
			Field:   "visibility",
			Message: `visibility must be "public" or "private"`,
		})
	}

	if len(violations) > 0 {
		return nil, violations
	}

	tags := make(StringList, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, strings.TrimSpace(tag))
	}

	return &Quiz{
		Title:       title,
		Description: description,
		Questions:   questions,
		Visibility:  visibility,
		Tags:        tags,
	}, nil
}

// QuestionViolations applies the per-question rules to the question at the
// given index, in rule order. Duplicate option strings are allowed; an
// out-of-range correctIndex is a violation, never a clamp.
func QuestionViolations(index int, q Question) []ValidationError {
	i := index
	var violations []ValidationError

	if utf8.RuneCountInString(strings.TrimSpace(q.Text)) < QuestionMinLen {
		violations = append(violations, ValidationError{
			Field:   "questions",
			Index:   &i,
			Message: fmt.Sprintf("question text must be at least %d characters", QuestionMinLen),
		})
	}

	if len(q.Options) < OptionsMin || len(q.Options) > OptionsMax {
		violations = append(violations, ValidationError{
			Field:   "questions",
			Index:   &i,
			Message: fmt.Sprintf("question must have %d-%d options", OptionsMin, OptionsMax),
		})
	}

	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			violations = append(violations, ValidationError{
				Field:   "questions",
				Index:   &i,
				Message: "options must not be empty",
			})
			break
		}
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		violations = append(violations, ValidationError{
			Field:   "questions",
			Index:   &i,
			Message: fmt.Sprintf("correctIndex %d is out of range for %d options", q.CorrectIndex, len(q.Options)),
		})
	}

	return violations
}

// NormalizeQuestion returns a copy with every string trimmed.
func NormalizeQuestion(q Question) Question {
	options := make([]string, len(q.Options))
	for j, opt := range q.Options {
		options[j] = strings.TrimSpace(opt)
	}
	return Question{
		Text:         strings.TrimSpace(q.Text),
		Options:      options,
		CorrectIndex: q.CorrectIndex,
		Explanation:  strings.TrimSpace(q.Explanation),
	}
}
