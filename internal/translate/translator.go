package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/saulo-duarte/kina-lambda/internal/gcp"
	"google.golang.org/api/option"
	gtranslate "google.golang.org/api/translate/v2"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptyText           = errors.New("text is required")
	ErrNoTranslation       = errors.New("translation service returned no result")
)

// Translator translates a batch of texts. An empty source lets the backend
// detect the language.
type Translator interface {
	Translate(ctx context.Context, texts []string, source, target string) ([]string, error)
}

type googleTranslator struct {
	svc *gtranslate.Service
}

func NewGoogleTranslator(ctx context.Context, apiKey string) (Translator, error) {
	opts, err := gcp.ClientOptions(ctx, apiKey, gtranslate.CloudTranslationScope)
	if err != nil {
		return nil, err
	}
	return newGoogleTranslator(ctx, opts...)
}

func newGoogleTranslator(ctx context.Context, opts ...option.ClientOption) (Translator, error) {
	svc, err := gtranslate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &googleTranslator{svc: svc}, nil
}

func (t *googleTranslator) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	log := config.WithContext(ctx)

	call := t.svc.Translations.List(texts, target).Format("text").Context(ctx)
	if source != "" {
		call = call.Source(source)
	}

	resp, err := call.Do()
	if err != nil {
		log.WithError(err).Error("Google translate request failed")
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	if len(resp.Translations) != len(texts) {
		return nil, ErrNoTranslation
	}

	// Format "text" returns plain text; entities in the output are literal.
	out := make([]string, len(resp.Translations))
	for i, tr := range resp.Translations {
		out[i] = tr.TranslatedText
	}
	return out, nil
}
