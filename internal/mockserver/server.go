// Package mockserver provides an in-process stand-in for the SofaScore team
// image endpoint, used by tests that exercise the real HTTP client.
package mockserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const imagePrefix = "/api/v1/team/"

// Server serves /api/v1/team/{id}/image. Ids without a configured logo get 404.
type Server struct {
	server         *httptest.Server
	requestCount   int32
	logos          map[int][]byte
	errorResponses map[int]int
	delays         map[int]time.Duration
	requests       []Request
	mu             sync.RWMutex
}

// Request is one request the server received
type Request struct {
	TeamID    int
	UserAgent string
	Referer   string
	Accept    string
}

// New starts a mock server. Call Close when done.
func New() *Server {
	m := &Server{
		logos:          make(map[int][]byte),
		errorResponses: make(map[int]int),
		delays:         make(map[int]time.Duration),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(imagePrefix, m.handleImage)

	m.server = httptest.NewServer(mux)
	return m
}

func (m *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&m.requestCount, 1)

	idPart, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, imagePrefix), "/image")
	teamID, err := strconv.Atoi(idPart)
	if !ok || err != nil || r.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, Request{
		TeamID:    teamID,
		UserAgent: r.Header.Get("User-Agent"),
		Referer:   r.Header.Get("Referer"),
		Accept:    r.Header.Get("Accept"),
	})
	delay := m.delays[teamID]
	code := m.errorResponses[teamID]
	logo, found := m.logos[teamID]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if code > 0 {
		w.WriteHeader(code)
		fmt.Fprintf(w, "Error %d", code)
		return
	}

	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(logo)))
	_, _ = w.Write(logo)
}

// SetLogo makes the server return data for teamID
func (m *Server) SetLogo(teamID int, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logos[teamID] = data
}

// SetErrorResponse makes teamID answer with the given status code
func (m *Server) SetErrorResponse(teamID int, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorResponses[teamID] = code
}

// ClearErrorResponse removes an error configured for teamID
func (m *Server) ClearErrorResponse(teamID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.errorResponses, teamID)
}

// SetDelay holds the response for teamID, or until the client gives up
func (m *Server) SetDelay(teamID int, delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[teamID] = delay
}

// URL returns the base URL of the mock server
func (m *Server) URL() string {
	return m.server.URL
}

// RequestCount returns the total number of requests, including malformed ones
func (m *Server) RequestCount() int {
	return int(atomic.LoadInt32(&m.requestCount))
}

// Requests returns the image requests received so far, in order
func (m *Server) Requests() []Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Close shuts the server down
func (m *Server) Close() {
	m.server.Close()
}

// TestImage returns size bytes of deterministic fake image data
func TestImage(size int) []byte {
	img := make([]byte, size)
	for i := range img {
		img[i] = byte(i % 256)
	}
	return img
}
