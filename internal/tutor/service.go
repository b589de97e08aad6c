package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/translate"
	"github.com/sirupsen/logrus"
)

var ErrInvalidInput = errors.New("invalid input")

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Localizer interface {
	Localize(ctx context.Context, text string, lang translate.Language) (string, error)
}

type Service interface {
	LearningPlan(ctx context.Context, req LearningPathRequest) (*Document, error)
	ChunkContent(ctx context.Context, req ChunkRequest) (*Document, error)
	BuildScenario(ctx context.Context, req ScenarioRequest) (*Document, error)
}

type service struct {
	generator Generator
	localizer Localizer
	now       func() time.Time
}

func NewService(generator Generator, localizer Localizer) Service {
	return &service{generator: generator, localizer: localizer, now: time.Now}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func (s *service) LearningPlan(ctx context.Context, req LearningPathRequest) (*Document, error) {
	log := config.WithContext(ctx)

	lang := translate.English
	if req.Language != "" {
		parsed, err := translate.ParseLanguage(req.Language)
		if err != nil {
			return nil, invalid("unsupported language %q", req.Language)
		}
		lang = parsed
	}
	if !req.Style.IsValid() {
		return nil, invalid("unknown learning style %q", req.Style)
	}
	if strings.TrimSpace(req.Goal) == "" {
		return nil, invalid("goal is required")
	}

	plan, err := s.generate(ctx, BuildLearningPathPrompt(req))
	if err != nil {
		return nil, err
	}

	plan, err = s.localizer.Localize(ctx, plan, lang)
	if err != nil {
		log.WithError(err).Error("Failed to translate learning plan")
		return nil, fmt.Errorf("failed to translate learning plan: %w", err)
	}

	log.WithFields(logrus.Fields{"style": req.Style, "language": lang}).Info("Learning plan generated")
	return s.document("Your Learning Plan", "learning_plan.txt", lang, plan), nil
}

func (s *service) ChunkContent(ctx context.Context, req ChunkRequest) (*Document, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, invalid("content is required")
	}
	if !req.Style.IsValid() {
		return nil, invalid("unknown chunking style %q", req.Style)
	}

	chunks, err := s.generate(ctx, BuildChunkerPrompt(req))
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("style", req.Style).Info("Content chunked")
	return s.document("Chunked Content", "chunked_content.txt", translate.English, chunks), nil
}

func (s *service) BuildScenario(ctx context.Context, req ScenarioRequest) (*Document, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, invalid("topic is required")
	}
	if !req.Persona.IsValid() {
		return nil, invalid("unknown persona %q", req.Persona)
	}
	if !req.Tone.IsValid() {
		return nil, invalid("unknown tone %q", req.Tone)
	}
	if !req.Length.IsValid() {
		return nil, invalid("unknown scenario length %q", req.Length)
	}

	scenario, err := s.generate(ctx, BuildScenarioPrompt(req))
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"persona": req.Persona,
		"tone":    req.Tone,
	}).Info("Scenario generated")
	return s.document("Generated Learning Scenario", "learning_scenario.txt", translate.English, scenario), nil
}

func (s *service) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Content generation failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return text, nil
}

func (s *service) document(title, filename string, lang translate.Language, content string) *Document {
	return &Document{
		Title:       title,
		Filename:    filename,
		Language:    lang,
		Content:     content,
		GeneratedAt: s.now(),
	}
}
