package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logofetch/internal/mockserver"
	errs "logofetch/pkg/errors"
	"logofetch/pkg/logger"
	"logofetch/pkg/sofascore"
	"logofetch/pkg/storage"
	"logofetch/pkg/teams"
)

// recordingPrinter keeps every call for later assertions
type recordingPrinter struct {
	mu       sync.Mutex
	started  int
	progress []teams.Entry
	results  []DownloadResult
	summary  *Summary
}

func (p *recordingPrinter) PrintStart(total int) { p.started = total }

func (p *recordingPrinter) PrintProgress(entry teams.Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, entry)
}

func (p *recordingPrinter) PrintResult(result DownloadResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, result)
}

func (p *recordingPrinter) PrintSummary(summary Summary) { p.summary = &summary }

type stubClient struct {
	responses map[int][]byte
	failures  map[int]error
	calls     []int
}

func (c *stubClient) FetchTeamImage(ctx context.Context, teamID int) ([]byte, error) {
	c.calls = append(c.calls, teamID)
	if err, ok := c.failures[teamID]; ok {
		return nil, err
	}
	if data, ok := c.responses[teamID]; ok {
		return data, nil
	}
	return nil, errs.FromStatusCode(http.StatusNotFound)
}

type brokenStorage struct{}

func (brokenStorage) SaveLogo(r io.Reader, teamID int) (int64, error) {
	return 0, errors.New("disk full")
}

func newTable(t *testing.T, entries ...teams.Entry) *teams.Table {
	t.Helper()
	table, dups := teams.Build(entries)
	require.Empty(t, dups)
	return table
}

func TestDownloaderSuccess(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	data := []byte("png bytes for arsenal")
	client := &stubClient{responses: map[int][]byte{42: data}}
	d := NewDownloader(client, store, logger.NewNopLogger())

	result := d.Download(context.Background(), teams.Entry{ID: 42, Name: "Arsenal"})

	assert.True(t, result.Succeeded)
	assert.NoError(t, result.Err)
	assert.Equal(t, int64(len(data)), result.BytesWritten)
	assert.Equal(t, 0, result.StatusCode)

	content, err := os.ReadFile(filepath.Join(dir, "42.png"))
	require.NoError(t, err)
	assert.Equal(t, data, content)
}

func TestDownloaderHTTPFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	log := logger.NewTestLogger()
	d := NewDownloader(&stubClient{}, store, log)

	result := d.Download(context.Background(), teams.Entry{ID: 7, Name: "Nowhere FC"})

	assert.False(t, result.Succeeded)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, errs.ErrorTypeNotFound, errs.TypeOf(result.Err))
	assert.NoFileExists(t, filepath.Join(dir, "7.png"))
	assert.True(t, log.HasMessage("Logo download failed"))
}

func TestDownloaderNetworkFailure(t *testing.T) {
	store, err := storage.NewManager(t.TempDir())
	require.NoError(t, err)

	cause := errs.FromTransport(errors.New("connection reset by peer"))
	client := &stubClient{failures: map[int]error{3: cause}}
	d := NewDownloader(client, store, logger.NewNopLogger())

	result := d.Download(context.Background(), teams.Entry{ID: 3, Name: "Reset United"})

	assert.False(t, result.Succeeded)
	assert.Equal(t, 0, result.StatusCode)
	assert.ErrorIs(t, result.Err, cause)
	assert.Contains(t, result.Err.Error(), "connection reset by peer")
}

func TestDownloaderSaveFailure(t *testing.T) {
	client := &stubClient{responses: map[int][]byte{5: []byte("x")}}
	d := NewDownloader(client, brokenStorage{}, logger.NewNopLogger())

	result := d.Download(context.Background(), teams.Entry{ID: 5, Name: "Full Disk"})

	assert.False(t, result.Succeeded)
	assert.Zero(t, result.BytesWritten)
	assert.Equal(t, errs.ErrorTypeStorage, errs.TypeOf(result.Err))
	assert.Contains(t, result.Err.Error(), "disk full")
}

func TestReporterTalliesEveryEntry(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	client := &stubClient{
		responses: map[int][]byte{1: []byte("one"), 3: []byte("three!")},
		failures:  map[int]error{4: errs.FromTransport(context.DeadlineExceeded)},
	}
	table := newTable(t,
		teams.Entry{ID: 1, Name: "One"},
		teams.Entry{ID: 2, Name: "Two"},
		teams.Entry{ID: 3, Name: "Three"},
		teams.Entry{ID: 4, Name: "Four"},
		teams.Entry{ID: 5, Name: "Five"},
	)
	printer := &recordingPrinter{}
	reporter := NewReporter(NewDownloader(client, store, logger.NewNopLogger()), printer, logger.NewNopLogger())

	summary := reporter.Run(context.Background(), table)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, table.Len(), summary.Total())
	assert.Equal(t, int64(len("one")+len("three!")), summary.BytesWritten())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, client.calls, "entries are visited in table order")
	assert.Equal(t, 5, printer.started)
	assert.Len(t, printer.progress, 5)
	assert.Len(t, printer.results, 5)
	require.NotNil(t, printer.summary)
	assert.Equal(t, summary.Total(), printer.summary.Total())

	assert.FileExists(t, filepath.Join(dir, "1.png"))
	assert.NoFileExists(t, filepath.Join(dir, "2.png"))
	assert.FileExists(t, filepath.Join(dir, "3.png"))
	assert.NoFileExists(t, filepath.Join(dir, "4.png"))
}

func TestReporterAgainstServer(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	server := mockserver.New()
	defer server.Close()

	logo := mockserver.TestImage(2048)
	server.SetLogo(10, logo)
	server.SetLogo(20, []byte("never sent"))
	server.SetDelay(20, 2*time.Second)
	server.SetLogo(30, []byte("small"))

	client := sofascore.NewClient(100*time.Millisecond, logger.NewNopLogger(), sofascore.WithBaseURL(server.URL()))
	table := newTable(t,
		teams.Entry{ID: 10, Name: "Big Logo"},
		teams.Entry{ID: 20, Name: "Slow Server"},
		teams.Entry{ID: 30, Name: "Small Logo"},
		teams.Entry{ID: 40, Name: "Missing"},
	)
	printer := &recordingPrinter{}
	reporter := NewReporter(NewDownloader(client, store, logger.NewNopLogger()), printer, logger.NewNopLogger())

	summary := reporter.Run(context.Background(), table)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 4, summary.Total())
	assert.Equal(t, 4, server.RequestCount(), "one request per team, no retries")

	content, err := os.ReadFile(filepath.Join(dir, "10.png"))
	require.NoError(t, err)
	assert.Equal(t, logo, content)

	slow := summary.Results[1]
	assert.False(t, slow.Succeeded)
	assert.True(t, errs.IsTimeout(slow.Err), "slow response should time out")
	assert.Equal(t, 0, slow.StatusCode)
	assert.NoFileExists(t, filepath.Join(dir, "20.png"))

	// the entry after the timeout was still attempted
	assert.True(t, summary.Results[2].Succeeded)

	missing := summary.Results[3]
	assert.False(t, missing.Succeeded)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.NoFileExists(t, filepath.Join(dir, "40.png"))
}

func TestReporterSecondRunOverwrites(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	table := newTable(t, teams.Entry{ID: 8, Name: "Repeat Rovers"})
	first := &stubClient{responses: map[int][]byte{8: []byte("first version of the logo")}}
	second := &stubClient{responses: map[int][]byte{8: []byte("second")}}

	NewReporter(NewDownloader(first, store, nil), &recordingPrinter{}, logger.NewNopLogger()).Run(context.Background(), table)
	summary := NewReporter(NewDownloader(second, store, nil), &recordingPrinter{}, logger.NewNopLogger()).Run(context.Background(), table)

	assert.Equal(t, 1, summary.Succeeded)
	content, err := os.ReadFile(filepath.Join(dir, "8.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestReporterDefaultTableWithDuplicates(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewManager(dir)
	require.NoError(t, err)

	table := teams.Default()
	client := &stubClient{responses: map[int][]byte{}}
	for _, e := range table.Entries() {
		client.responses[e.ID] = []byte(e.Name)
	}

	printer := &recordingPrinter{}
	summary := NewReporter(NewDownloader(client, store, nil), printer, logger.NewNopLogger()).Run(context.Background(), table)

	assert.Equal(t, table.Len(), summary.Total())
	assert.Equal(t, table.Len(), summary.Succeeded)
	assert.Len(t, client.calls, table.Len(), "a duplicated id is fetched once")

	content, err := os.ReadFile(filepath.Join(dir, "2829.png"))
	require.NoError(t, err)
	assert.Equal(t, "Celtic", string(content))
}

func TestReporterCancelledContext(t *testing.T) {
	store, err := storage.NewManager(t.TempDir())
	require.NoError(t, err)

	table := newTable(t,
		teams.Entry{ID: 1, Name: "One"},
		teams.Entry{ID: 2, Name: "Two"},
		teams.Entry{ID: 3, Name: "Three"},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &cancellingClient{cancel: cancel, data: []byte("logo")}
	log := logger.NewTestLogger()
	printer := &recordingPrinter{}
	summary := NewReporter(NewDownloader(client, store, log), printer, log).Run(ctx, table)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, table.Len(), summary.Total())
	assert.Equal(t, 1, client.calls)
	assert.Len(t, printer.progress, 1)
	assert.ErrorIs(t, summary.Results[2].Err, context.Canceled)
	assert.True(t, log.HasMessage("Run cancelled"))
	require.NotNil(t, printer.summary)
}

// cancellingClient succeeds once and then cancels the run
type cancellingClient struct {
	cancel context.CancelFunc
	data   []byte
	calls  int
}

func (c *cancellingClient) FetchTeamImage(ctx context.Context, teamID int) ([]byte, error) {
	c.calls++
	c.cancel()
	return c.data, nil
}
