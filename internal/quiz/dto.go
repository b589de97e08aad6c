package quiz

import (
	"time"

	"github.com/google/uuid"
)

type GenerateRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count,omitempty"`
}

type SelectRequest struct {
	Label string `json:"label"`
}

type QuestionView struct {
	Index     int      `json:"index"`
	Prompt    string   `json:"prompt"`
	Options   []Option `json:"options"`
	Malformed bool     `json:"malformed"`
	Problem   string   `json:"problem,omitempty"`
	State     State    `json:"state"`
	Selected  string   `json:"selected,omitempty"`
	Outcome   Outcome  `json:"outcome,omitempty"`
}

type QuizView struct {
	ID          uuid.UUID      `json:"id"`
	Topic       string         `json:"topic"`
	GeneratedAt time.Time      `json:"generated_at"`
	Questions   []QuestionView `json:"questions"`
	Score       Score          `json:"score"`
}

type CheckResult struct {
	Question     QuestionView `json:"question"`
	Correct      bool         `json:"correct"`
	CorrectLabel string       `json:"correct_label"`
}

func questionView(s *Session, index int) QuestionView {
	q, _ := s.Question(index)
	a, _ := s.Answer(index)

	v := QuestionView{
		Index:     index,
		Prompt:    q.Prompt,
		Options:   q.Options,
		Malformed: q.IsMalformed(),
		State:     a.State,
		Selected:  a.Label,
		Outcome:   a.Outcome,
	}
	if v.Options == nil {
		v.Options = []Option{}
	}
	if q.Problem != nil {
		v.Problem = q.Problem.Error()
	}
	return v
}
