package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, log, err, "failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quiz, err := h.service.Current(r.Context())
	if err != nil {
		h.writeError(w, log, err, "failed to load quiz")
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for option selection")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.Select(r.Context(), index, req.Label)
	if err != nil {
		h.writeError(w, log, err, "failed to select option")
		return
	}

	config.JSON(w, http.StatusOK, question)
}

func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	result, err := h.service.Check(r.Context(), index)
	if err != nil {
		h.writeError(w, log, err, "failed to check answer")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) DownloadQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	raw, err := h.service.Download(r.Context())
	if err != nil {
		h.writeError(w, log, err, "failed to download quiz")
		return
	}

	config.Attachment(w, "quiz.txt", "text/plain; charset=utf-8", []byte(raw))
}

func questionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid question index", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func (h *Handler) writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyTopic), errors.Is(err, ErrUnknownOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoQuiz), errors.Is(err, ErrQuestionOutOfRange):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUncheckableSelection):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrMalformedQuestion):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, auth.ErrNoSession), errors.Is(err, auth.ErrInvalidSession):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrEmptyResponse):
		log.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusBadGateway)
	default:
		log.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
