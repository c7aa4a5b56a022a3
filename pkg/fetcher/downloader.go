package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	errs "logofetch/pkg/errors"
	"logofetch/pkg/logger"
	"logofetch/pkg/teams"
)

// ImageClient fetches the raw logo bytes for a team
type ImageClient interface {
	FetchTeamImage(ctx context.Context, teamID int) ([]byte, error)
}

// LogoStorage persists logo bytes under the team id
type LogoStorage interface {
	SaveLogo(r io.Reader, teamID int) (int64, error)
}

// DownloadResult is the outcome of one team
type DownloadResult struct {
	Team         teams.Entry
	Succeeded    bool
	BytesWritten int64
	// StatusCode is the HTTP status of a failed request, 0 if none was received
	StatusCode int
	Err        error
	Duration   time.Duration
}

// Downloader fetches and saves a single logo. It never returns an error;
// every failure is recorded on the result.
type Downloader struct {
	client  ImageClient
	storage LogoStorage
	logger  logger.Logger
}

// NewDownloader creates a downloader
func NewDownloader(client ImageClient, storage LogoStorage, log logger.Logger) *Downloader {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Downloader{
		client:  client,
		storage: storage,
		logger:  log,
	}
}

// Download fetches entry's logo and writes it to storage
func (d *Downloader) Download(ctx context.Context, entry teams.Entry) DownloadResult {
	start := time.Now()
	result := DownloadResult{Team: entry}

	d.logger.DebugWithFields("Downloading team logo", map[string]interface{}{
		"team_id":   entry.ID,
		"team_name": entry.Name,
	})

	data, err := d.client.FetchTeamImage(ctx, entry.ID)
	if err != nil {
		result.Err = fmt.Errorf("download failed: %w", err)
		result.StatusCode = errs.StatusCode(err)
		result.Duration = time.Since(start)
		logger.LogDownload(d.logger, entry.ID, entry.Name, 0, result.Err)
		return result
	}

	n, err := d.storage.SaveLogo(bytes.NewReader(data), entry.ID)
	if err != nil {
		result.Err = &errs.Error{
			Type:    errs.ErrorTypeStorage,
			Message: fmt.Sprintf("save failed: %v", err),
			Err:     err,
		}
		result.Duration = time.Since(start)
		logger.LogDownload(d.logger, entry.ID, entry.Name, 0, result.Err)
		return result
	}

	result.Succeeded = true
	result.BytesWritten = n
	result.Duration = time.Since(start)
	logger.LogDownload(d.logger, entry.ID, entry.Name, n, nil)

	return result
}
