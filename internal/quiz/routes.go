package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.GenerateQuiz)
	r.Get("/", h.GetQuiz)
	r.Get("/download", h.DownloadQuiz)
	r.Put("/questions/{index}/selection", h.SelectOption)
	r.Post("/questions/{index}/check", h.CheckAnswer)
	return r
}
