package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, log, err, "failed to load dashboard")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.service.AddGoal(r.Context(), dto)
	if err != nil {
		writeError(w, log, err, "failed to create goal")
		return
	}

	config.JSON(w, http.StatusCreated, goal)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task, err := h.service.AddTask(r.Context(), dto)
	if err != nil {
		writeError(w, log, err, "failed to create task")
		return
	}

	config.JSON(w, http.StatusCreated, task)
}

func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	task, err := h.service.CompleteTask(r.Context(), id)
	if err != nil {
		writeError(w, log, err, "failed to complete task")
		return
	}

	config.JSON(w, http.StatusOK, task)
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyTitle):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrTaskAlreadyDone):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, auth.ErrNoSession), errors.Is(err, auth.ErrInvalidSession):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		log.WithError(err).Error(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
