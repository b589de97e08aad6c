package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/session"
	"github.com/sirupsen/logrus"
)

// Generator produces the raw quiz text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*QuizView, error)
	Current(ctx context.Context) (*QuizView, error)
	Select(ctx context.Context, index int, label string) (*QuestionView, error)
	Check(ctx context.Context, index int) (*CheckResult, error)
	Download(ctx context.Context) (string, error)
	Forget(sessionID uuid.UUID)
}

type service struct {
	generator  Generator
	workspaces *session.Registry[Workspace]
	now        func() time.Time
}

func NewService(generator Generator, ttl time.Duration) Service {
	return &service{
		generator:  generator,
		workspaces: session.NewRegistry(newWorkspace, ttl),
		now:        time.Now,
	}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*QuizView, error) {
	log := config.WithContext(ctx)

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrEmptyTopic
	}

	sessionID, err := auth.SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResponse
	}

	questions := Parse(raw)

	var view *QuizView
	err = s.workspaces.With(sessionID, func(w *Workspace) error {
		*w = Workspace{
			ID:          uuid.New(),
			Topic:       req.Topic,
			Raw:         raw,
			GeneratedAt: s.now(),
			Session:     NewSession(questions),
		}
		view = w.view()
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, q := range view.Questions {
		if q.Malformed {
			log.WithFields(logrus.Fields{
				"quiz_id":  view.ID,
				"question": q.Index + 1,
				"problem":  q.Problem,
			}).Warn("Skipping malformed question")
		}
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   view.ID,
		"topic":     view.Topic,
		"total":     view.Score.Total,
		"malformed": view.Score.Malformed,
	}).Info("Quiz generated")
	return view, nil
}

func (s *service) Current(ctx context.Context) (*QuizView, error) {
	var view *QuizView
	err := s.withWorkspace(ctx, func(w *Workspace) error {
		view = w.view()
		return nil
	})
	return view, err
}

func (s *service) Select(ctx context.Context, index int, label string) (*QuestionView, error) {
	var view QuestionView
	err := s.withWorkspace(ctx, func(w *Workspace) error {
		if err := w.Session.Select(index, label); err != nil {
			return err
		}
		view = questionView(w.Session, index)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *service) Check(ctx context.Context, index int) (*CheckResult, error) {
	log := config.WithContext(ctx)

	var result CheckResult
	err := s.withWorkspace(ctx, func(w *Workspace) error {
		outcome, err := w.Session.Check(index)
		if err != nil {
			return err
		}
		q, _ := w.Session.Question(index)
		result = CheckResult{
			Question:     questionView(w.Session, index),
			Correct:      outcome == OutcomeCorrect,
			CorrectLabel: q.CorrectLabel,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUncheckableSelection) {
			log.WithField("question", index+1).Warn("Check requested without a selection")
		}
		return nil, err
	}
	return &result, nil
}

func (s *service) Download(ctx context.Context) (string, error) {
	var raw string
	err := s.withWorkspace(ctx, func(w *Workspace) error {
		raw = w.Raw
		return nil
	})
	return raw, err
}

func (s *service) Forget(sessionID uuid.UUID) {
	s.workspaces.Forget(sessionID)
}

func (s *service) withWorkspace(ctx context.Context, fn func(w *Workspace) error) error {
	sessionID, err := auth.SessionIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.workspaces.With(sessionID, func(w *Workspace) error {
		if err := w.ready(); err != nil {
			return err
		}
		return fn(w)
	})
}
