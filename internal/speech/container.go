package speech

type SpeechContainer struct {
	Handler *Handler
}

func NewSpeechContainer(synthesizer Synthesizer, cacheDir, languageCode string) *SpeechContainer {
	return &SpeechContainer{
		Handler: NewHandler(NewService(synthesizer, cacheDir, languageCode)),
	}
}
