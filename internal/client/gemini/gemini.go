package gemini

import (
	"context"
	"fmt"

	"taggereval/internal/model"
	"taggereval/internal/telemetry"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// BatchClient is the slice of the Gemini API the fetcher consumes.
type BatchClient interface {
	GetBatchJob(ctx context.Context, name string) (*model.BatchMetadata, error)
	DownloadFile(ctx context.Context, fileName string) ([]byte, error)
}

type DefaultBatchClient struct {
	client *genai.Client
}

// NewDefaultBatchClient builds a Gemini API client bound to the given key.
func NewDefaultBatchClient(ctx context.Context, apiKey string) (*DefaultBatchClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		telemetry.Logger.Error("System Error: Failed to create Gemini client", zap.Error(err))
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &DefaultBatchClient{client: client}, nil
}

// GetBatchJob retrieves batch job metadata by job reference.
func (c *DefaultBatchClient) GetBatchJob(ctx context.Context, name string) (*model.BatchMetadata, error) {
	job, err := c.client.Batches.Get(ctx, name, nil)
	if err != nil {
		telemetry.Logger.Error("System Error: Failed to retrieve batch job",
			zap.String("job", name), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve batch job %q: %w", name, err)
	}

	meta := &model.BatchMetadata{
		Name:        job.Name,
		DisplayName: job.DisplayName,
		State:       string(job.State),
	}
	if job.Dest != nil {
		meta.OutputFileName = job.Dest.FileName
		meta.Dest = fmt.Sprintf("%+v", job.Dest)
	}

	return meta, nil
}

// DownloadFile fetches the byte content of a file by file-name reference.
func (c *DefaultBatchClient) DownloadFile(ctx context.Context, fileName string) ([]byte, error) {
	file, err := c.client.Files.Get(ctx, fileName, nil)
	if err != nil {
		telemetry.Logger.Error("System Error: Failed to look up output file",
			zap.String("file", fileName), zap.Error(err))
		return nil, fmt.Errorf("failed to look up file %q: %w", fileName, err)
	}

	data, err := c.client.Files.Download(ctx, file, nil)
	if err != nil {
		telemetry.Logger.Error("System Error: Failed to download output file",
			zap.String("file", fileName), zap.Error(err))
		return nil, fmt.Errorf("failed to download file %q: %w", fileName, err)
	}

	return data, nil
}
