package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orbosis/internal/api"
	"orbosis/internal/register"
	"orbosis/internal/server"
	"orbosis/internal/session"
	"orbosis/internal/store"
	"orbosis/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	profileStore, closeStore, err := openStore(ctx, config)
	if err != nil {
		return err
	}
	defer closeStore()

	sessionCtx := session.New()

	apiClient := api.New(
		config.APIBaseURL,
		time.Duration(config.APITimeoutSec)*time.Second,
		logger,
		storeTokenSource(profileStore),
	)

	workflow := register.New(logger, apiClient, profileStore, sessionCtx)

	srv, err := server.New(config, logger, apiClient, profileStore, sessionCtx, workflow)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func openStore(ctx context.Context, config *types.Config) (store.ProfileStore, func(), error) {
	switch config.StoreDriver {
	case "sqlite":
		s, err := store.NewSQLite(ctx, config.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, func() { s.Close() }, nil
	case "redis":
		s, err := store.NewRedis(ctx, config.RedisAddr, config.RedisPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return s, func() { s.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

// storeTokenSource feeds the stored auth token to outgoing upstream
// calls; no token means no Authorization header.
func storeTokenSource(profileStore store.ProfileStore) api.TokenSource {
	return func(ctx context.Context) string {
		token, err := profileStore.GetValue(ctx, store.KeyAuthToken)
		if err != nil {
			return ""
		}
		return token
	}
}
