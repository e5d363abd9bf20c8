package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"taggereval/internal/service"
	"taggereval/internal/telemetry"

	"go.uber.org/zap"
)

// DefaultJobName is the batch job fetched when no argument is given.
const DefaultJobName = "batches/atdpuj01cvry22of15w27crr43vuipp3zypt"

// ErrNoOutputFile indicates the batch destination carried no file-name field.
var ErrNoOutputFile = errors.New("no output file found in batch destination")

// Fetcher downloads a batch job's output file to local disk.
type Fetcher struct {
	*service.Services
	outputPath string
}

// New creates a Fetcher that writes the downloaded output to outputPath.
func New(svc *service.Services, outputPath string) *Fetcher {
	return &Fetcher{Services: svc, outputPath: outputPath}
}

// DefaultOutputPath resolves <project root>/outputs/batch-output.jsonl, where
// the project root is the parent of the executable's directory.
func DefaultOutputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	root := filepath.Dir(filepath.Dir(exe))
	return filepath.Join(root, "outputs", "batch-output.jsonl"), nil
}

// Fetch retrieves the batch job named by jobName, downloads its output file
// and writes the bytes to the configured path. It returns the written path.
// Every failure is terminal; nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, jobName string) (string, error) {
	telemetry.Logger.Info("Retrieving batch job", zap.String("job", jobName))

	meta, err := f.Batches.GetBatchJob(ctx, jobName)
	if err != nil {
		f.Metrics.IncrementFetchCounter("remote_error")
		return "", err
	}

	telemetry.Logger.Info("Batch job retrieved",
		zap.String("state", meta.State),
		zap.String("display_name", meta.DisplayName),
	)

	if !meta.HasOutputFile() {
		telemetry.Logger.Warn("No output file found in batch destination",
			zap.String("job", jobName),
			zap.String("dest", meta.Dest),
		)
		f.Metrics.IncrementFetchCounter("no_output_file")
		return "", fmt.Errorf("batch job %q: %w", jobName, ErrNoOutputFile)
	}

	telemetry.Logger.Info("Downloading file content", zap.String("file", meta.OutputFileName))

	data, err := f.Batches.DownloadFile(ctx, meta.OutputFileName)
	if err != nil {
		f.Metrics.IncrementFetchCounter("download_error")
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(f.outputPath), 0755); err != nil {
		f.Metrics.IncrementFetchCounter("write_error")
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(f.outputPath, data, 0644); err != nil {
		f.Metrics.IncrementFetchCounter("write_error")
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	f.Metrics.IncrementFetchCounter("success")
	f.Metrics.AddDownloadedBytes(float64(len(data)))

	telemetry.Logger.Info("Saved batch output",
		zap.String("path", f.outputPath),
		zap.Int("bytes", len(data)),
	)

	return f.outputPath, nil
}
