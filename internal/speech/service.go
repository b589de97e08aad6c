package speech

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	AudioFilename = "audio_summary.mp3"
	AudioMIME     = "audio/mpeg"

	// Cloud Text-to-Speech rejects inputs above 5000 bytes per request.
	maxInputBytes = 5000
)

var ErrEmptyText = errors.New("text is required")

type Service interface {
	Generate(ctx context.Context, text string) ([]byte, error)
}

type service struct {
	synthesizer  Synthesizer
	cacheDir     string
	languageCode string
}

// NewService wraps a synthesizer with an optional on-disk cache. An empty
// cacheDir disables caching.
func NewService(synthesizer Synthesizer, cacheDir, languageCode string) Service {
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			config.Logger.WithError(err).Warnf("Disabling audio cache, cannot create %s", cacheDir)
			cacheDir = ""
		}
	}
	return &service{synthesizer: synthesizer, cacheDir: cacheDir, languageCode: languageCode}
}

func (s *service) Generate(ctx context.Context, text string) ([]byte, error) {
	log := config.WithContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	cachePath := s.cachePath(text)
	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			log.Debug("Audio served from cache")
			return data, nil
		}
	}

	// MP3 frames concatenate into one playable stream.
	pieces := splitText(text, maxInputBytes)
	var audio []byte
	for i, piece := range pieces {
		out, err := s.synthesizer.Synthesize(ctx, piece)
		if err != nil {
			log.WithError(err).WithField("piece", i+1).Error("Speech synthesis failed")
			return nil, err
		}
		audio = append(audio, out...)
	}

	if cachePath != "" {
		if err := os.WriteFile(cachePath, audio, 0o644); err != nil {
			log.WithError(err).Warn("Failed to cache synthesized audio")
		}
	}

	log.WithFields(logrus.Fields{
		"bytes":  len(audio),
		"pieces": len(pieces),
	}).Info("Audio generated")
	return audio, nil
}

func (s *service) cachePath(text string) string {
	if s.cacheDir == "" {
		return ""
	}
	h := sha256.Sum256([]byte(s.languageCode + ":" + text))
	return filepath.Join(s.cacheDir, hex.EncodeToString(h[:16])+".mp3")
}

// DataURI embeds MP3 audio for direct playback in an <audio> element.
func DataURI(audio []byte) string {
	return "data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(audio)
}
