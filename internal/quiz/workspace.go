package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the quiz state owned by one browsing session. Generating a
// new quiz replaces it wholesale.
type Workspace struct {
	ID          uuid.UUID
	Topic       string
	Raw         string
	GeneratedAt time.Time
	Session     *Session
}

func newWorkspace() *Workspace {
	return &Workspace{}
}

func (w *Workspace) ready() error {
	if w.Session == nil {
		return ErrNoQuiz
	}
	return nil
}

func (w *Workspace) view() *QuizView {
	v := &QuizView{
		ID:          w.ID,
		Topic:       w.Topic,
		GeneratedAt: w.GeneratedAt,
		Questions:   make([]QuestionView, 0, w.Session.Len()),
		Score:       w.Session.Score(),
	}
	for i := 0; i < w.Session.Len(); i++ {
		v.Questions = append(v.Questions, questionView(w.Session, i))
	}
	return v
}
