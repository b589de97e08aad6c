package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/gcp"
	tts "google.golang.org/api/texttospeech/v1"
)

// Synthesizer turns text into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type googleSynthesizer struct {
	svc          *tts.Service
	languageCode string
}

func NewGoogleSynthesizer(ctx context.Context, apiKey, languageCode string) (Synthesizer, error) {
	opts, err := gcp.ClientOptions(ctx, apiKey, tts.CloudPlatformScope)
	if err != nil {
		return nil, err
	}

	svc, err := tts.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &googleSynthesizer{svc: svc, languageCode: languageCode}, nil
}

func (s *googleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	log := config.WithContext(ctx)

	resp, err := s.svc.Text.Synthesize(&tts.SynthesizeSpeechRequest{
		Input: &tts.SynthesisInput{Text: text},
		Voice: &tts.VoiceSelectionParams{
			LanguageCode: s.languageCode,
			SsmlGender:   "NEUTRAL",
		},
		AudioConfig: &tts.AudioConfig{AudioEncoding: "MP3"},
	}).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Text-to-speech request failed")
		return nil, fmt.Errorf("text-to-speech request failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return audio, nil
}
