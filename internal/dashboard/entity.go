package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Board is the dashboard of one session. Goals and tasks keep insertion order.
type Board struct {
	Goals []Goal
	Tasks []Task
}

func newBoard() *Board {
	return &Board{}
}
