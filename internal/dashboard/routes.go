package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/goals", h.CreateGoal)
	r.Post("/tasks", h.CreateTask)
	r.Post("/tasks/{id}/complete", h.CompleteTask)

	return r
}
