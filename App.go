package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"io"
	"net/http"
	"time"
)

const ExitCodeMainError = 1

const shutdownTimeout = 10 * time.Second

// RunApp serves the checklist API until ctx is cancelled.
func RunApp(ctx context.Context, configFile string) error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	logger, err := NewLogger(config.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	serviceContainer, err := BuildServiceContainer(ctx, config, logger)
	if err != nil {
		return err
	}
	defer serviceContainer.Close()

	serviceContainer.WebhookDispatcher.Start()

	server := &http.Server{
		Addr:    config.Listen,
		Handler: serviceContainer.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Listening", zap.String("addr", config.Listen), zap.String("backend", config.Backend.Type))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if listenErr := <-serveErr; !errors.Is(listenErr, http.ErrServerClosed) && err == nil {
		err = listenErr
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
