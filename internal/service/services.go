package service

import (
    "taggereval/internal/client/gemini"
    "taggereval/internal/telemetry"
)

// Services holds all application dependencies
type Services struct {
    Metrics telemetry.MetricsClient
    Batches gemini.BatchClient
}

// NewServices creates a new Services instance
func NewServices(metrics telemetry.MetricsClient, batchClient gemini.BatchClient) *Services {
    return &Services{
        Metrics: metrics,
        Batches: batchClient,
    }
}
