package tutor

type TutorContainer struct {
	Handler *Handler
}

func NewTutorContainer(generator Generator, localizer Localizer) *TutorContainer {
	return &TutorContainer{
		Handler: NewHandler(NewService(generator, localizer)),
	}
}
