package quiz

import (
	"fmt"
	"strings"
)

type State string

const (
	StateUnanswered State = "unanswered"
	StateSelected   State = "selected"
	StateChecked    State = "checked"
	// StateExcluded is reserved for malformed questions.
	StateExcluded State = "excluded"
)

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Answer is the user's progress on one question.
type Answer struct {
	State   State
	Label   string
	Outcome Outcome
}

type Score struct {
	Total      int `json:"total"`
	Malformed  int `json:"malformed"`
	Answerable int `json:"answerable"`
	Checked    int `json:"checked"`
	Correct    int `json:"correct"`
}

// Session tracks selections and check results for one parsed quiz. Each
// question moves independently through
// Unanswered -> Selected(label) -> Checked(label, outcome).
type Session struct {
	questions []Question
	answers   []Answer
}

func NewSession(questions []Question) *Session {
	s := &Session{
		questions: questions,
		answers:   make([]Answer, len(questions)),
	}
	for i, q := range questions {
		if q.IsMalformed() {
			s.answers[i].State = StateExcluded
		} else {
			s.answers[i].State = StateUnanswered
		}
	}
	return s
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) Question(index int) (Question, error) {
	if err := s.checkIndex(index); err != nil {
		return Question{}, err
	}
	return s.questions[index], nil
}

func (s *Session) Answer(index int) (Answer, error) {
	if err := s.checkIndex(index); err != nil {
		return Answer{}, err
	}
	return s.answers[index], nil
}

// Select records label as the current choice, discarding any earlier outcome.
// The label may be given as "b", "B" or "b) text"; only its leading letter counts.
func (s *Session) Select(index int, label string) error {
	q, err := s.answerable(index)
	if err != nil {
		return err
	}

	normalized := selectionLabel(label)
	if !q.HasOption(normalized) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, label)
	}

	s.answers[index] = Answer{State: StateSelected, Label: normalized}
	return nil
}

// Check evaluates the current selection. Checking again without a new
// selection returns the recorded outcome unchanged.
func (s *Session) Check(index int) (Outcome, error) {
	q, err := s.answerable(index)
	if err != nil {
		return OutcomeNone, err
	}

	a := &s.answers[index]
	switch a.State {
	case StateChecked:
		return a.Outcome, nil
	case StateSelected:
		if strings.EqualFold(a.Label, q.CorrectLabel) {
			a.Outcome = OutcomeCorrect
		} else {
			a.Outcome = OutcomeIncorrect
		}
		a.State = StateChecked
		return a.Outcome, nil
	default:
		return OutcomeNone, ErrUncheckableSelection
	}
}

func (s *Session) Score() Score {
	score := Score{Total: len(s.questions)}
	for i, q := range s.questions {
		if q.IsMalformed() {
			score.Malformed++
			continue
		}
		score.Answerable++
		if s.answers[i].State == StateChecked {
			score.Checked++
			if s.answers[i].Outcome == OutcomeCorrect {
				score.Correct++
			}
		}
	}
	return score
}

func (s *Session) answerable(index int) (Question, error) {
	if err := s.checkIndex(index); err != nil {
		return Question{}, err
	}
	q := s.questions[index]
	if q.IsMalformed() {
		return Question{}, fmt.Errorf("question %d: %w", index+1, q.Problem)
	}
	return q, nil
}

func (s *Session) checkIndex(index int) error {
	if index < 0 || index >= len(s.questions) {
		return fmt.Errorf("%w: %d", ErrQuestionOutOfRange, index)
	}
	return nil
}
