package microlearning

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetWizard)
	r.Post("/start", h.Start)
	r.Post("/suggestion", h.Suggest)
	r.Post("/ask", h.Ask)
	r.Post("/messages", h.SendMessage)
	r.Post("/reset", h.Reset)
	return r
}
