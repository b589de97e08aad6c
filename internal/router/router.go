package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/dashboard"
	"github.com/saulo-duarte/kina-lambda/internal/microlearning"
	"github.com/saulo-duarte/kina-lambda/internal/middlewares"
	"github.com/saulo-duarte/kina-lambda/internal/quiz"
	"github.com/saulo-duarte/kina-lambda/internal/speech"
	"github.com/saulo-duarte/kina-lambda/internal/translate"
	"github.com/saulo-duarte/kina-lambda/internal/tutor"
)

type RouterConfig struct {
	CORSOrigins          []string
	QuizHandler          *quiz.Handler
	TutorHandler         *tutor.Handler
	MicroLearningHandler *microlearning.Handler
	DashboardHandler     *dashboard.Handler
	SpeechHandler        *speech.Handler
	TranslateHandler     *translate.Handler
	LogoutHandler        *auth.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware)

		r.Post("/auth/logout", cfg.LogoutHandler.Logout)

		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/learning-path", tutor.LearningPathRoutes(cfg.TutorHandler))
		r.Mount("/chunker", tutor.ChunkerRoutes(cfg.TutorHandler))
		r.Mount("/scenarios", tutor.ScenarioRoutes(cfg.TutorHandler))
		r.Mount("/micro-learning", microlearning.Routes(cfg.MicroLearningHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/audio", speech.Routes(cfg.SpeechHandler))
		r.Mount("/translate", translate.Routes(cfg.TranslateHandler))
	})
	return r
}
