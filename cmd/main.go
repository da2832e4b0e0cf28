/*
Package main is the entry point for the presence gateway.

It loads configuration, initializes the global logger, wires the upstream client, the
gateway and the metrics registry into the HTTP router, and shuts the server down gracefully
on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rbxpresence/internal/app/presence"
	"rbxpresence/internal/app/upstream"
	"rbxpresence/internal/configs"
	"rbxpresence/internal/handler"
	"rbxpresence/internal/pkg/logx"
	"rbxpresence/internal/pkg/metrics"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("presence_api", cfg.PresenceAPIURL).
		Str("games_api", cfg.GamesAPIURL).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Bool("session_credential", cfg.HasSessionCredential()).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	client := upstream.NewClient(upstream.Options{
		PresenceBaseURL: cfg.PresenceAPIURL,
		GamesBaseURL:    cfg.GamesAPIURL,
		Timeout:         cfg.UpstreamTimeout,
		Observer:        m,
	})

	router := handler.Router(&handler.AppDeps{
		Config:  cfg,
		Gateway: presence.NewGateway(client, cfg.SessionCookie),
		Metrics: m,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2*cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Presence gateway listening on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
