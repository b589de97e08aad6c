package translate

type TranslateContainer struct {
	Handler *Handler
	Service Service
}

func NewTranslateContainer(translator Translator, chunkSize int) *TranslateContainer {
	service := NewService(translator, chunkSize)

	return &TranslateContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
