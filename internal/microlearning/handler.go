package microlearning

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/gemini"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Current(r.Context())
	if err != nil {
		writeError(w, log, err, "failed to load micro-learning session")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for micro-learning start")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Start(r.Context(), req)
	if err != nil {
		writeError(w, log, err, "failed to start micro-learning")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Suggest(r.Context())
	if err != nil {
		writeError(w, log, err, "failed to generate suggestion")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Ask(r.Context())
	if err != nil {
		writeError(w, log, err, "failed to open twin chat")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for twin message")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Send(r.Context(), req)
	if err != nil {
		writeError(w, log, err, "failed to send message")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Reset(r.Context())
	if err != nil {
		writeError(w, log, err, "failed to reset micro-learning")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyTopic), errors.Is(err, ErrInvalidConfidence), errors.Is(err, ErrEmptyMessage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWrongStep):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, auth.ErrNoSession), errors.Is(err, auth.ErrInvalidSession):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, gemini.ErrEmptyResponse):
		log.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusBadGateway)
	default:
		log.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
