// SPDX-License-Identifier: EPL-2.0

package ttswav

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/ttswav/audio"
	"github.com/ik5/ttswav/formats/wav"
)

// HistoryLimit is how many recent responses a Session remembers.
const HistoryLimit = 10

// ErrBusy is returned when a request arrives while another is in flight.
var ErrBusy = errors.New("another request is in progress")

// Entry is a history record of one processed response.
type Entry struct {
	ID        uuid.UUID
	Label     string
	Format    audio.Format
	Duration  time.Duration
	CreatedAt time.Time
}

// Session runs one request at a time through a Pipeline, keeps the latest
// WAV export and a bounded history of recent responses. The zero value is
// ready to use once Pipeline is set.
type Session struct {
	Pipeline *Pipeline

	mu      sync.Mutex
	busy    bool
	latest  *Result
	history []Entry
}

func NewSession(p *Pipeline) *Session {
	return &Session{Pipeline: p}
}

// Process runs encoded through the pipeline. label is kept in the history
// (typically the text that was spoken). On success the result replaces the
// previous export; on failure the session is left as it was.
func (s *Session) Process(label, encoded string, f audio.Format) (*Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	res, err := s.Pipeline.Process(encoded, f)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = res
	s.push(Entry{
		ID:        res.ID,
		Label:     label,
		Format:    res.Format,
		Duration:  res.Duration(),
		CreatedAt: res.CreatedAt,
	})

	return res, nil
}

// push prepends e, evicting the oldest entry past HistoryLimit.
func (s *Session) push(e Entry) {
	s.history = append([]Entry{e}, s.history...)
	if len(s.history) > HistoryLimit {
		s.history = s.history[:HistoryLimit]
	}
}

// Latest returns the most recent successful result, or nil.
func (s *Session) Latest() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest
}

// Export returns the latest WAV blob and its suggested file name.
func (s *Session) Export(prefix string) (wav.Blob, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return nil, "", false
	}
	return s.latest.WAV, s.latest.Filename(prefix), true
}

// History returns recent entries, newest first.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Clear forgets the history and the latest export.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.latest = nil
}
