package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/kina-lambda/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "test-key")
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.GoogleAPIKey != "test-key" {
			t.Errorf("unexpected api key: %q", cfg.GoogleAPIKey)
		}
		if cfg.Gemini.Model != "gemini-1.5-flash" {
			t.Errorf("unexpected default model: %q", cfg.Gemini.Model)
		}
		if cfg.SessionTTL != 2*time.Hour {
			t.Errorf("unexpected session ttl: %v", cfg.SessionTTL)
		}
		if cfg.Translate.ChunkSize != 500 {
			t.Errorf("unexpected chunk size: %d", cfg.Translate.ChunkSize)
		}
		if cfg.IsProduction() {
			t.Error("default env should not be production")
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "test-key")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("APP_ENV", "production")
		t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
		t.Setenv("SESSION_TTL", "15m")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if !cfg.IsProduction() {
			t.Errorf("expected production env, got %q", cfg.Env)
		}
		if cfg.Gemini.Model != "gemini-2.0-flash" {
			t.Errorf("model override not applied: %q", cfg.Gemini.Model)
		}
		if cfg.SessionTTL != 15*time.Minute {
			t.Errorf("ttl override not applied: %v", cfg.SessionTTL)
		}
	})

	t.Run("PerServiceAPIKeys", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "gemini-key")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("SPEECH_API_KEY", "")
		t.Setenv("TRANSLATE_API_KEY", "translate-key")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Speech.APIKey != "" {
			t.Errorf("speech key must stay empty for ADC, got %q", cfg.Speech.APIKey)
		}
		if cfg.Translate.APIKey != "translate-key" {
			t.Errorf("unexpected translate key: %q", cfg.Translate.APIKey)
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "")
		t.Setenv("JWT_SECRET", "test-secret")

		_, err := config.Load()
		if !errors.Is(err, config.ErrMissingEnvironmentVariables) {
			t.Fatalf("expected ErrMissingEnvironmentVariables, got %v", err)
		}
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "test-key")
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		if !errors.Is(err, config.ErrMissingEnvironmentVariables) {
			t.Fatalf("expected ErrMissingEnvironmentVariables, got %v", err)
		}
	})
}
