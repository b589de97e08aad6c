package tutor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func LearningPathRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.LearningPath)
	return r
}

func ChunkerRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.ChunkContent)
	return r
}

func ScenarioRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Scenario)
	return r
}
