package quiz

import "time"

type QuizContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizContainer(generator Generator, ttl time.Duration) *QuizContainer {
	service := NewService(generator, ttl)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
