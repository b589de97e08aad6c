package translate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const maxSegmentsPerRequest = 100

type ConvertRequest struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

type ConvertResponse struct {
	Language   Language `json:"language"`
	Text       string   `json:"text"`
	Translated string   `json:"translated"`
}

type Service interface {
	// Convert translates English text into one of the converter languages.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error)
	// Localize translates generated content of any length into lang.
	// English content is returned unchanged.
	Localize(ctx context.Context, text string, lang Language) (string, error)
}

type service struct {
	translator Translator
	chunkSize  int
}

func NewService(translator Translator, chunkSize int) Service {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &service{translator: translator, chunkSize: chunkSize}
}

func (s *service) Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error) {
	lang, err := ParseLanguage(req.Language)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(ConverterLanguages, lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	translated, err := s.translateChunks(ctx, req.Text, English.Code(), lang.Code())
	if err != nil {
		return nil, err
	}

	return &ConvertResponse{Language: lang, Text: req.Text, Translated: translated}, nil
}

func (s *service) Localize(ctx context.Context, text string, lang Language) (string, error) {
	if !lang.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if lang == English || strings.TrimSpace(text) == "" {
		return text, nil
	}
	return s.translateChunks(ctx, text, "", lang.Code())
}

func (s *service) translateChunks(ctx context.Context, text, source, target string) (string, error) {
	log := config.WithContext(ctx)

	chunks := Chunk(text, s.chunkSize)
	translated := make([]string, 0, len(chunks))

	for start := 0; start < len(chunks); start += maxSegmentsPerRequest {
		end := min(start+maxSegmentsPerRequest, len(chunks))
		out, err := s.translator.Translate(ctx, chunks[start:end], source, target)
		if err != nil {
			return "", err
		}
		translated = append(translated, out...)
	}

	log.WithFields(logrus.Fields{
		"target": target,
		"chunks": len(chunks),
	}).Debug("Text translated")
	return strings.Join(translated, " "), nil
}

// Chunk splits text into consecutive pieces of at most size characters.
// A non-positive size returns the text as a single piece.
func Chunk(text string, size int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
