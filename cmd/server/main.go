package main

import (
	"context"
	"errors"
	"flag"
	"fleet-route-service/internal/api"
	"fleet-route-service/internal/app"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/platform/logging"
	"fleet-route-service/internal/platform/metrics"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires the reference data and estimator behind ports and starts the HTTP server.
func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (default $CONFIG_FILE)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	envErr := godotenv.Load()

	path := *configPath
	if path == "" {
		path = config.Get("CONFIG_FILE", "")
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.String("op", "main"), zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	store, err := app.LoadStore(cfg.Fixtures.Path)
	if err != nil {
		return err
	}

	m := metrics.New()

	estimator, err := app.NewEstimator(cfg.Estimator, store, logger, m)
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if cfg.Server.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
	}

	router := api.NewRouter(api.Deps{
		Data:            store,
		Estimator:       estimator,
		Factors:         store.EmissionFactors(),
		MarkerInterval:  cfg.Markers.Interval,
		MarkerAmplitude: cfg.Markers.Amplitude,
		Logger:          logger,
		Metrics:         m,
		Limiter:         limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("baseline", cfg.Estimator.Baseline),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
