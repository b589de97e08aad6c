package gcp

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/kina-lambda/internal/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ClientOptions authenticates Google API clients with the API key when one is
// configured and falls back to Application Default Credentials otherwise.
func ClientOptions(ctx context.Context, apiKey string, scopes ...string) ([]option.ClientOption, error) {
	if apiKey != "" {
		return []option.ClientOption{option.WithAPIKey(apiKey)}, nil
	}

	if len(scopes) == 0 {
		scopes = []string{CloudPlatformScope}
	}

	tokenSource, err := google.DefaultTokenSource(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to find default Google credentials: %w", err)
	}
	config.WithContext(ctx).WithField("scopes", scopes).Info("Using Application Default Credentials")
	return []option.ClientOption{option.WithTokenSource(tokenSource)}, nil
}
