package speech

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/kina-lambda/internal/config"
)

type GenerateRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateAudio returns an MP3 download, or a JSON data URI when the client
// asks for application/json.
func (h *Handler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	audio, err := h.service.Generate(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to generate audio")
		http.Error(w, "failed to generate audio", http.StatusBadGateway)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		config.JSON(w, http.StatusOK, map[string]string{
			"filename": AudioFilename,
			"data_uri": DataURI(audio),
		})
		return
	}

	config.Attachment(w, AudioFilename, AudioMIME, audio)
}
