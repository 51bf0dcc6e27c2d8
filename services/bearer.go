package services

import (
	"context"
	"log/slog"
	"net/http"

	"social-bridge/config"
	"social-bridge/helpers"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ResolveBearerToken returns the configured bearer token. Without one, it
// exchanges the API key and secret for an app-only token. It returns "" when
// neither is available or the exchange fails.
func ResolveBearerToken(ctx context.Context, cfg config.TwitterConfig, httpClient *http.Client, logger *slog.Logger) string {
	logger = helpers.LoggerOrDiscard(logger)

	if cfg.BearerToken != "" {
		return cfg.BearerToken
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return ""
	}

	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	cc := clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.APISecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	token, err := cc.Token(ctx)
	if err != nil {
		logger.Error("Failed to obtain app-only bearer token", "error", err)
		return ""
	}

	logger.Info("Obtained app-only bearer token")
	return token.AccessToken
}
