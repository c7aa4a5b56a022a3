package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// LogoExt is the extension every saved logo gets, whatever the payload
const LogoExt = ".png"

// Manager writes team logos into a single output directory
type Manager struct {
	outputDir string
	saved     map[int]int64
	mu        sync.RWMutex
}

// NewManager creates a new storage manager, creating outputDir if needed
func NewManager(outputDir string) (*Manager, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Manager{
		outputDir: outputDir,
		saved:     make(map[int]int64),
	}, nil
}

// LogoFilename returns the bare file name for a team id
func LogoFilename(teamID int) string {
	return strconv.Itoa(teamID) + LogoExt
}

// LogoPath returns the full path of a team's logo file
func (m *Manager) LogoPath(teamID int) string {
	return filepath.Join(m.outputDir, LogoFilename(teamID))
}

// SaveLogo writes r to <dir>/<id>.png, replacing any existing file. Data is
// written to a temporary file first and renamed into place.
func (m *Manager) SaveLogo(r io.Reader, teamID int) (int64, error) {
	filename := m.LogoPath(teamID)

	out, err := os.CreateTemp(m.outputDir, "."+LogoFilename(teamID)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempFile := out.Name()

	n, err := io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to save logo data: %w", err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to close file: %w", closeErr)
	}

	// CreateTemp uses 0600
	if err := os.Chmod(tempFile, 0644); err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	m.mu.Lock()
	m.saved[teamID] = n
	m.mu.Unlock()

	return n, nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}

// SavedCount returns how many distinct logos this manager has written
func (m *Manager) SavedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.saved)
}
