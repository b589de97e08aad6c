package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/dashboard"
	"github.com/saulo-duarte/kina-lambda/internal/gemini"
	"github.com/saulo-duarte/kina-lambda/internal/microlearning"
	"github.com/saulo-duarte/kina-lambda/internal/quiz"
	"github.com/saulo-duarte/kina-lambda/internal/router"
	"github.com/saulo-duarte/kina-lambda/internal/speech"
	"github.com/saulo-duarte/kina-lambda/internal/translate"
	"github.com/saulo-duarte/kina-lambda/internal/tutor"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Settings               *config.Settings
	QuizContainer          *quiz.QuizContainer
	TutorContainer         *tutor.TutorContainer
	MicroLearningContainer *microlearning.MicroLearningContainer
	DashboardContainer     *dashboard.Container
	SpeechContainer        *speech.SpeechContainer
	TranslateContainer     *translate.TranslateContainer
	LogoutHandler          *auth.Handler
}

func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	config.InitLogger(settings.LogLevel, settings.LogFormat)
	auth.Init(settings.JWTSecret, settings.SessionTTL)

	provider, err := gemini.NewGeminiProvider(ctx, settings.GoogleAPIKey, settings.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	translator, err := translate.NewGoogleTranslator(ctx, settings.Translate.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}

	synthesizer, err := speech.NewGoogleSynthesizer(ctx, settings.Speech.APIKey, settings.Speech.LanguageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	translateContainer := translate.NewTranslateContainer(translator, settings.Translate.ChunkSize)
	quizContainer := quiz.NewQuizContainer(provider, settings.SessionTTL)
	tutorContainer := tutor.NewTutorContainer(provider, translateContainer.Service)
	microLearningContainer := microlearning.NewMicroLearningContainer(provider, settings.SessionTTL)
	dashboardContainer := dashboard.NewContainer(settings.SessionTTL)
	speechContainer := speech.NewSpeechContainer(synthesizer, settings.Speech.CacheDir, settings.Speech.LanguageCode)

	logout := auth.NewHandler(
		quizContainer.Service.Forget,
		microLearningContainer.Service.Forget,
		dashboardContainer.Service.Forget,
	)

	config.Logger.WithFields(logrus.Fields{
		"env":   settings.Env,
		"model": settings.Gemini.Model,
	}).Info("Application container initialized")

	return &Container{
		Settings:               settings,
		QuizContainer:          quizContainer,
		TutorContainer:         tutorContainer,
		MicroLearningContainer: microLearningContainer,
		DashboardContainer:     dashboardContainer,
		SpeechContainer:        speechContainer,
		TranslateContainer:     translateContainer,
		LogoutHandler:          logout,
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CORSOrigins:          c.Settings.CORSOrigins,
		QuizHandler:          c.QuizContainer.Handler,
		TutorHandler:         c.TutorContainer.Handler,
		MicroLearningHandler: c.MicroLearningContainer.Handler,
		DashboardHandler:     c.DashboardContainer.Handler,
		SpeechHandler:        c.SpeechContainer.Handler,
		TranslateHandler:     c.TranslateContainer.Handler,
		LogoutHandler:        c.LogoutHandler,
	})
}
