// ABOUTME: Main entry point for the Newsbrief API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsbrief-api/api"
	"newsbrief-api/api/handlers"
	"newsbrief-api/api/middleware"
	"newsbrief-api/core/feed"
	"newsbrief-api/core/interfaces"
	stdhttp "newsbrief-api/infrastructure/http/standard"
	"newsbrief-api/infrastructure/logger"
	"newsbrief-api/pkg/config"
	timeutil "newsbrief-api/pkg/utils/time"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Backend: cfg.Log.Backend,
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.Info("Starting Newsbrief API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"sources":     len(cfg.Feeds.Sources),
		"max_items":   cfg.Feeds.MaxItems,
		"log_backend": cfg.Log.Backend,
	})
	if len(cfg.Feeds.Sources) == 0 {
		appLogger.Warn("No feed sources configured; /api/articles will answer 503", map[string]interface{}{
			"hint": "set FEED_URLS or FEEDS_FILE",
		})
	}

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Feeds.FetchTimeout,
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Logger: appLogger}),
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     appLogger,
		Clock:      time.Now,
	}

	feedService := feed.NewFeedService(deps, feed.WithMaxItems(cfg.Feeds.MaxItems))

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         appLogger,
		RateLimit:      cfg.RateLimit.Limit,
		RateWindow:     cfg.RateLimit.Window,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	handlers.NewHealthHandler(len(cfg.Feeds.Sources), deps.Clock).RegisterRoutes(humaAPI)
	handlers.NewFeedHandler(feedService, cfg.Feeds.Sources).RegisterRoutes(humaAPI)
	handlers.NewNormalizeHandler(timeutil.NewAnnotator(deps.Clock)).RegisterRoutes(humaAPI)

	if api.MountStatic(router, cfg.Server.StaticDir) {
		appLogger.Info("Serving static assets", map[string]interface{}{
			"dir": cfg.Server.StaticDir,
		})
	}

	// Articles fan out to every source in turn, so allow for several fetch timeouts
	writeTimeout := cfg.Feeds.FetchTimeout*time.Duration(max(len(cfg.Feeds.Sources), 1)) + 15*time.Second

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			appLogger.Close()
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    _   __                   __         _      ____
   / | / /__ _      _______/ /_  _____(_)__  / __/
  /  |/ / _ \ | /| / / ___/ __ \/ ___/ / _ \/ /_
 / /|  /  __/ |/ |/ (__  ) /_/ / /  / /  __/ __/
/_/ |_/\___/|__/|__/____/_.___/_/  /_/\___/_/
	`)
}
