package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apiadapter "github.com/baw-market/baw-cli/internal/adapters/api"
	tomlstore "github.com/baw-market/baw-cli/internal/adapters/store/toml"
	"github.com/baw-market/baw-cli/internal/application"
	"github.com/baw-market/baw-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	sessions *application.SessionContainer
	cart     *application.CartContainer
	auth     *application.Authenticator
	checkout *application.CheckoutService
	market   ports.Marketplace
	logger   *zap.Logger
}

func wireApp() (*app, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	store, err := tomlstore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	ctx := context.Background()

	sessions, err := application.NewSessionContainer(ctx, store)
	if err != nil {
		// Stale or unreadable state falls back to an empty session.
		logger.Warn("session hydration failed", zap.Error(err))
	}

	cart, err := application.NewCartContainer(ctx, store)
	if err != nil {
		logger.Warn("cart hydration failed", zap.Error(err))
	}

	market := apiadapter.NewClient(
		envOrDefault("BAW_API_URL", "http://localhost:8000/api"),
		http.DefaultClient,
		sessions.Credential,
		logger,
	)

	return &app{
		sessions: sessions,
		cart:     cart,
		auth:     application.NewAuthenticator(market, sessions),
		checkout: application.NewCheckoutService(market, cart),
		market:   market,
		logger:   logger,
	}, nil
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}

	switch envOrDefault("BAW_LOG_LEVEL", "warn") {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return config.Build()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
