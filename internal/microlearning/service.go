package microlearning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/gemini"
	"github.com/saulo-duarte/kina-lambda/internal/session"
)

type StartRequest struct {
	Topic      string `json:"topic"`
	Confidence int    `json:"confidence"`
}

type MessageRequest struct {
	Message string `json:"message"`
}

type Service interface {
	Current(ctx context.Context) (*WizardView, error)
	Start(ctx context.Context, req StartRequest) (*WizardView, error)
	Suggest(ctx context.Context) (*WizardView, error)
	Ask(ctx context.Context) (*WizardView, error)
	Send(ctx context.Context, req MessageRequest) (*WizardView, error)
	Reset(ctx context.Context) (*WizardView, error)
	Forget(sessionID uuid.UUID)
}

type service struct {
	provider gemini.Provider
	wizards  *session.Registry[Wizard]
}

func NewService(provider gemini.Provider, ttl time.Duration) Service {
	return &service{
		provider: provider,
		wizards:  session.NewRegistry(newWizard, ttl),
	}
}

func (s *service) Current(ctx context.Context) (*WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error { return nil })
}

func (s *service) Start(ctx context.Context, req StartRequest) (*WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.start(req.Topic, req.Confidence)
	})
}

// Suggest produces the study suggestion once per topic; later calls at the
// same step return the stored text.
func (s *service) Suggest(ctx context.Context) (*WizardView, error) {
	log := config.WithContext(ctx)

	return s.apply(ctx, func(w *Wizard) error {
		if err := w.expect(StepSuggestion); err != nil {
			return err
		}
		if w.Suggestion != "" {
			return nil
		}

		reply, err := s.provider.Generate(ctx, suggestionPrompt(w.Topic, w.Confidence))
		if err != nil {
			log.WithError(err).Error("Failed to generate study suggestion")
			return fmt.Errorf("failed to generate suggestion: %w", err)
		}
		w.Suggestion = reply
		return nil
	})
}

func (s *service) Ask(ctx context.Context) (*WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		return w.ask()
	})
}

func (s *service) Send(ctx context.Context, req MessageRequest) (*WizardView, error) {
	log := config.WithContext(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return s.apply(ctx, func(w *Wizard) error {
		if err := w.expect(StepChat); err != nil {
			return err
		}

		reply, err := s.provider.Chat(ctx, w.History, message)
		if err != nil {
			log.WithError(err).Error("Twin chat failed")
			return fmt.Errorf("failed to send message: %w", err)
		}

		w.record(message, reply)
		log.WithField("turns", len(w.History)).Debug("Twin chat reply recorded")
		return nil
	})
}

func (s *service) Reset(ctx context.Context) (*WizardView, error) {
	return s.apply(ctx, func(w *Wizard) error {
		w.reset()
		return nil
	})
}

func (s *service) Forget(sessionID uuid.UUID) {
	s.wizards.Forget(sessionID)
}

func (s *service) apply(ctx context.Context, fn func(w *Wizard) error) (*WizardView, error) {
	sessionID, err := auth.SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var view *WizardView
	err = s.wizards.With(sessionID, func(w *Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		view = w.view()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
