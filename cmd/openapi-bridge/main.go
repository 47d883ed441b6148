package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"openapi-bridge/internal/config"
	"openapi-bridge/internal/httpapi"
	"openapi-bridge/internal/logger"
	"openapi-bridge/internal/openapi"
	"openapi-bridge/internal/service"
	"openapi-bridge/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "openapi-bridge")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	client := openapi.NewClient(cfg.Backend, zl)

	registry := tools.NewRegistry()
	if err := tools.RegisterOpenAPITools(registry, client); err != nil {
		zl.Fatal("failed to register tools", zap.Error(err))
	}
	zl.Info("OpenAPI tools registered",
		zap.Int("count", len(registry.List())),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	handler := httpapi.NewToolsHandler(registry, zl)
	router := httpapi.NewRouter(zl)
	router.RegisterToolRoutes(handler)

	srv := service.NewServer(cfg.HTTP.Addr, router, zl)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			zl.Error("HTTP server exited", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
}
