package microlearning

import (
	"time"

	"github.com/saulo-duarte/kina-lambda/internal/gemini"
)

type MicroLearningContainer struct {
	Handler *Handler
	Service Service
}

func NewMicroLearningContainer(provider gemini.Provider, ttl time.Duration) *MicroLearningContainer {
	service := NewService(provider, ttl)
	handler := NewHandler(service)

	return &MicroLearningContainer{
		Handler: handler,
		Service: service,
	}
}
