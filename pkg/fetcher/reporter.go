package fetcher

import (
	"context"
	"time"

	"logofetch/pkg/logger"
	"logofetch/pkg/teams"
)

// Printer renders the human-readable progress of a run
type Printer interface {
	PrintStart(total int)
	PrintProgress(entry teams.Entry)
	PrintResult(result DownloadResult)
	PrintSummary(summary Summary)
}

// TeamDownloader is satisfied by *Downloader
type TeamDownloader interface {
	Download(ctx context.Context, entry teams.Entry) DownloadResult
}

// Summary tallies one pass over the team table
type Summary struct {
	Succeeded int
	Failed    int
	Results   []DownloadResult
	Duration  time.Duration
}

// Total is the number of entries processed, always the table size
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// BytesWritten sums the bytes of every saved logo
func (s Summary) BytesWritten() int64 {
	var total int64
	for _, r := range s.Results {
		total += r.BytesWritten
	}
	return total
}

// Reporter drives one sequential pass over a team table
type Reporter struct {
	downloader TeamDownloader
	printer    Printer
	logger     logger.Logger
}

// NewReporter creates a reporter
func NewReporter(downloader TeamDownloader, printer Printer, log logger.Logger) *Reporter {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Reporter{
		downloader: downloader,
		printer:    printer,
		logger:     log,
	}
}

// Run downloads every entry of table in order, one at a time. If ctx is
// cancelled the loop stops and the entries not yet attempted count as
// failures.
func (r *Reporter) Run(ctx context.Context, table *teams.Table) Summary {
	start := time.Now()
	entries := table.Entries()
	summary := Summary{Results: make([]DownloadResult, 0, len(entries))}

	r.logger.InfoWithFields("Starting logo download", map[string]interface{}{
		"teams": len(entries),
	})
	r.printer.PrintStart(len(entries))

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			r.logger.WithError(err).WarnWithFields("Run cancelled", map[string]interface{}{
				"remaining": len(entries) - i,
			})
			for _, skipped := range entries[i:] {
				summary.Results = append(summary.Results, DownloadResult{Team: skipped, Err: err})
				summary.Failed++
			}
			break
		}

		r.printer.PrintProgress(entry)
		result := r.downloader.Download(ctx, entry)
		r.printer.PrintResult(result)

		summary.Results = append(summary.Results, result)
		if result.Succeeded {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	summary.Duration = time.Since(start)

	r.logger.InfoWithFields("Logo download finished", map[string]interface{}{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"total":     summary.Total(),
		"duration":  summary.Duration,
	})
	r.printer.PrintSummary(summary)

	return summary
}
