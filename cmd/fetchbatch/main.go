package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taggereval/internal/client/gemini"
	"taggereval/internal/config"
	"taggereval/internal/fetcher"
	"taggereval/internal/service"
	"taggereval/internal/telemetry"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		telemetry.Logger.Fatal("Missing configuration", zap.Error(err))
	}

	// Initialize metrics
	metrics, err := telemetry.NewDefaultMetricsClient()
	if err != nil {
		telemetry.Logger.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Gemini client
	batchClient, err := gemini.NewDefaultBatchClient(ctx, cfg.APIKey)
	if err != nil {
		telemetry.Logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	// Create services container
	svc := service.NewServices(metrics, batchClient)

	outputPath, err := fetcher.DefaultOutputPath()
	if err != nil {
		telemetry.Logger.Fatal("Failed to resolve output path", zap.Error(err))
	}

	jobName := fetcher.DefaultJobName
	if len(os.Args) > 1 {
		jobName = os.Args[1]
	}

	path, err := fetcher.New(svc, outputPath).Fetch(ctx, jobName)
	if err != nil {
		telemetry.Logger.Fatal("Fetch failed", zap.String("job", jobName), zap.Error(err))
	}

	telemetry.Logger.Info("Saved successfully", zap.String("path", path))
}
