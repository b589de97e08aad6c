package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/kina-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) LearningPath(w http.ResponseWriter, r *http.Request) {
	var req LearningPathRequest
	serve(w, r, &req, func(ctx context.Context) (*Document, error) {
		return h.service.LearningPlan(ctx, req)
	})
}

func (h *Handler) ChunkContent(w http.ResponseWriter, r *http.Request) {
	var req ChunkRequest
	serve(w, r, &req, func(ctx context.Context) (*Document, error) {
		return h.service.ChunkContent(ctx, req)
	})
}

func (h *Handler) Scenario(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	serve(w, r, &req, func(ctx context.Context) (*Document, error) {
		return h.service.BuildScenario(ctx, req)
	})
}

// serve decodes the body into req, runs produce and renders the document as
// JSON, or as a text download when ?download=true.
func serve(w http.ResponseWriter, r *http.Request, req interface{}, produce func(ctx context.Context) (*Document, error)) {
	log := config.WithContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := produce(r.Context())
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to generate document")
		http.Error(w, "failed to generate content", http.StatusBadGateway)
		return
	}

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		config.Attachment(w, doc.Filename, "text/plain; charset=utf-8", []byte(doc.Content))
		return
	}

	config.JSON(w, http.StatusOK, doc)
}
