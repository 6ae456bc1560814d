// Package voice implements the bounded dictation session that turns a
// stream of recognizer fragments into a single committed string.
package voice

import (
	"strings"
	"sync"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"
)

// Fragment is one transcript event from the recognition feed. Only
// fragments flagged Final are ever committed; interim results may be
// revised upstream and must never reach a note.
type Fragment struct {
	Text  string
	Final bool
}

// Recognizer is the injected capability behind a session. Start begins
// delivering fragments to the callback until Stop is called.
type Recognizer interface {
	Start(onFragment func(Fragment)) error
	Stop()
}

type State int

const (
	StateIdle State = iota
	StateListening
)

// DefaultDeadline bounds a capture session: with no manual stop the
// session finalizes itself after this long.
const DefaultDeadline = 60 * time.Second

type Session struct {
	mu       sync.Mutex
	state    State
	rec      Recognizer
	deadline time.Duration
	onFinal  func(string)

	buf      strings.Builder
	timer    *time.Timer
	run      uint64
	lastText string
}

type Option func(*Session)

// WithDeadline overrides the 60 second capture bound.
func WithDeadline(d time.Duration) Option {
	return func(s *Session) {
		s.deadline = d
	}
}

// NewSession wires a session to a recognizer. onFinalized receives the
// committed text exactly once per capture, whether the session ended by
// manual stop or by deadline.
func NewSession(rec Recognizer, onFinalized func(string), opts ...Option) *Session {
	s := &Session{
		rec:      rec,
		deadline: DefaultDeadline,
		onFinal:  onFinalized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start transitions IDLE -> LISTENING, resets the accumulated text and
// arms the deadline. A session that is already listening is rejected;
// callers should stop and restart instead of queueing starts.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.state == StateListening {
		s.mu.Unlock()
		return apperr.ErrAlreadyActive
	}

	s.buf.Reset()
	s.state = StateListening
	s.run++
	run := s.run
	s.mu.Unlock()

	if err := s.rec.Start(func(f Fragment) { s.handleFragment(run, f) }); err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	// Re-check: the recognizer may have failed fast elsewhere, or a
	// stale timer from a previous run may still be pending; the run
	// counter fences both.
	if s.run == run && s.state == StateListening {
		s.timer = time.AfterFunc(s.deadline, func() { s.finalize(run) })
	}
	s.mu.Unlock()
	return nil
}

func (s *Session) handleFragment(run uint64, f Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != run || s.state != StateListening {
		// Late delivery from a stopped run.
		return
	}
	if !f.Final {
		return
	}
	s.buf.WriteString(f.Text)
	s.buf.WriteString(" ")
}

// Stop ends the capture and returns the committed text. Stopping an
// idle session is a no-op that reports the last committed text, so the
// manual stop and the deadline can race safely in either order.
func (s *Session) Stop() (string, bool) {
	s.mu.Lock()
	run := s.run
	s.mu.Unlock()
	return s.finalize(run)
}

// finalize performs the single LISTENING -> IDLE transition for a run:
// stops the timer, trims the accumulated text, releases the recognizer
// and delivers the output. Every exit path funnels through here, so the
// recognizer is released no matter which trigger fires first.
func (s *Session) finalize(run uint64) (string, bool) {
	s.mu.Lock()
	if s.run != run || s.state != StateListening {
		last := s.lastText
		s.mu.Unlock()
		return last, false
	}

	s.state = StateIdle
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	text := strings.TrimRight(s.buf.String(), " \t\n")
	s.lastText = text
	cb := s.onFinal
	s.mu.Unlock()

	s.rec.Stop()
	if cb != nil {
		cb(text)
	}
	return text, true
}

// AppendTranscript merges a finalized transcript into existing note
// content. Dictation adds to whatever the user already typed; it never
// replaces it.
func AppendTranscript(existing, transcript string) string {
	if transcript == "" {
		return existing
	}
	if existing == "" {
		return transcript
	}
	return existing + " " + transcript
}
