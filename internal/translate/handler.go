package translate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/kina-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Convert(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnsupportedLanguage) || errors.Is(err, ErrEmptyText) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to translate text")
		http.Error(w, "failed to translate text", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
