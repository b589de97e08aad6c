package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/session"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskAlreadyDone = errors.New("task already completed")
)

type Service interface {
	Get(ctx context.Context) (*DashboardResponse, error)
	AddGoal(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	AddTask(ctx context.Context, dto CreateTaskDTO) (*Task, error)
	CompleteTask(ctx context.Context, id uuid.UUID) (*Task, error)
	Forget(sessionID uuid.UUID)
}

type service struct {
	boards *session.Registry[Board]
	now    func() time.Time
}

func NewService(ttl time.Duration) Service {
	return &service{
		boards: session.NewRegistry(newBoard, ttl),
		now:    time.Now,
	}
}

func (s *service) Get(ctx context.Context) (*DashboardResponse, error) {
	var resp *DashboardResponse
	err := s.withBoard(ctx, func(b *Board) error {
		resp = b.response()
		return nil
	})
	return resp, err
}

func (s *service) AddGoal(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	goal := Goal{ID: uuid.New(), Title: title, CreatedAt: s.now()}
	err := s.withBoard(ctx, func(b *Board) error {
		b.Goals = append(b.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("goal_id", goal.ID).Info("Goal added")
	return &goal, nil
}

func (s *service) AddTask(ctx context.Context, dto CreateTaskDTO) (*Task, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := Task{ID: uuid.New(), Title: title, Status: TaskStatusTodo, CreatedAt: s.now()}
	err := s.withBoard(ctx, func(b *Board) error {
		b.Tasks = append(b.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("task_id", task.ID).Info("Task added")
	return &task, nil
}

func (s *service) CompleteTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	log := config.WithContext(ctx).WithField("task_id", id)

	var done Task
	err := s.withBoard(ctx, func(b *Board) error {
		for i := range b.Tasks {
			t := &b.Tasks[i]
			if t.ID != id {
				continue
			}
			if t.Status == TaskStatusDone {
				return ErrTaskAlreadyDone
			}
			completedAt := s.now()
			t.Status = TaskStatusDone
			t.CompletedAt = &completedAt
			done = *t
			return nil
		}
		return ErrTaskNotFound
	})
	if err != nil {
		log.WithError(err).Warn("Task completion rejected")
		return nil, err
	}

	log.WithFields(logrus.Fields{"completed_at": done.CompletedAt}).Info("Task completed")
	return &done, nil
}

func (s *service) Forget(sessionID uuid.UUID) {
	s.boards.Forget(sessionID)
}

func (s *service) withBoard(ctx context.Context, fn func(b *Board) error) error {
	sessionID, err := auth.SessionIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.boards.With(sessionID, fn)
}
