package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// MetricsClient records instrumentation for the fetch pipeline.
type MetricsClient interface {
	IncrementFetchCounter(status string)
	AddDownloadedBytes(n float64)
}

// DefaultMetricsClient is the Prometheus-backed MetricsClient.
type DefaultMetricsClient struct {
	fetchCounter    *prometheus.CounterVec
	downloadedBytes prometheus.Counter
}

// NewDefaultMetricsClient initializes and registers Prometheus metrics
func NewDefaultMetricsClient() (*DefaultMetricsClient, error) {
	m := &DefaultMetricsClient{
		fetchCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batch_fetch_total",
				Help: "Total number of batch output fetch attempts by outcome",
			},
			[]string{"status"},
		),
		downloadedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "batch_output_downloaded_bytes_total",
				Help: "Total number of batch output bytes downloaded",
			},
		),
	}

	if err := prometheus.Register(m.fetchCounter); err != nil {
		Logger.Error("Failed to register fetch counter", zap.Error(err))
		return nil, err
	}
	if err := prometheus.Register(m.downloadedBytes); err != nil {
		Logger.Error("Failed to register downloaded bytes counter", zap.Error(err))
		return nil, err
	}

	return m, nil
}

func (m *DefaultMetricsClient) IncrementFetchCounter(status string) {
	m.fetchCounter.WithLabelValues(status).Inc()
}

func (m *DefaultMetricsClient) AddDownloadedBytes(n float64) {
	m.downloadedBytes.Add(n)
}
