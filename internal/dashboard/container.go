package dashboard

import "time"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(ttl time.Duration) *Container {
	service := NewService(ttl)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
