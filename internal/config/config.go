package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Settings holds the application configuration loaded from .env, an optional
// config file and the process environment.
type Settings struct {
	Env         string        `mapstructure:"env"`
	HTTPAddr    string        `mapstructure:"http_addr"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`

	GoogleAPIKey string `mapstructure:"-"`
	JWTSecret    string `mapstructure:"-"`

	Gemini    Gemini    `mapstructure:"gemini"`
	Speech    Speech    `mapstructure:"speech"`
	Translate Translate `mapstructure:"translate"`
}

type Gemini struct {
	Model string `mapstructure:"model"`
}

// Speech and Translate take their own optional API keys. An empty key makes
// the client use Application Default Credentials.
type Speech struct {
	APIKey       string `mapstructure:"api_key"`
	LanguageCode string `mapstructure:"language_code"`
	CacheDir     string `mapstructure:"cache_dir"`
}

type Translate struct {
	APIKey    string `mapstructure:"api_key"`
	ChunkSize int    `mapstructure:"chunk_size"`
}

func (s *Settings) IsProduction() bool {
	return s.Env == "production"
}

// Load reads configuration. GOOGLE_API_KEY (Gemini) and JWT_SECRET are
// mandatory; SPEECH_API_KEY and TRANSLATE_API_KEY are optional.
func Load() (*Settings, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("session_ttl", "2h")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("speech.language_code", "en-US")
	v.SetDefault("speech.cache_dir", "")
	v.SetDefault("speech.api_key", "")
	v.SetDefault("translate.chunk_size", 500)
	v.SetDefault("translate.api_key", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("google_api_key", "GOOGLE_API_KEY")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("speech.api_key", "SPEECH_API_KEY")
	_ = v.BindEnv("translate.api_key", "TRANSLATE_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.GoogleAPIKey = v.GetString("google_api_key")
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY", ErrMissingEnvironmentVariables)
	}

	cfg.JWTSecret = v.GetString("jwt_secret")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET", ErrMissingEnvironmentVariables)
	}

	if cfg.Translate.ChunkSize <= 0 {
		cfg.Translate.ChunkSize = 500
	}

	return &cfg, nil
}
