package voice

import (
	"time"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	gocache "github.com/patrickmn/go-cache"
)

// Manager tracks at most one capture session per key (typically the
// user id). Sessions left behind by a caller that navigated away are
// evicted after the TTL, and eviction force-finalizes them, so the
// recognizer is released even on abandonment.
type Manager struct {
	sessions *gocache.Cache
}

func NewManager(ttl, cleanupInterval time.Duration) *Manager {
	c := gocache.New(ttl, cleanupInterval)
	c.OnEvicted(func(key string, v interface{}) {
		if s, ok := v.(*Session); ok {
			s.Stop()
		}
	})
	return &Manager{sessions: c}
}

// Start creates and starts a session for key. A key with a session that
// is still listening is rejected; the caller must stop it first.
func (m *Manager) Start(key string, rec Recognizer, onFinalized func(string), opts ...Option) (*Session, error) {
	if v, found := m.sessions.Get(key); found {
		if s, ok := v.(*Session); ok && s.State() == StateListening {
			return nil, apperr.ErrAlreadyActive
		}
	}

	s := NewSession(rec, onFinalized, opts...)
	if err := s.Start(); err != nil {
		return nil, err
	}
	m.sessions.Set(key, s, gocache.DefaultExpiration)
	return s, nil
}

// Stop finalizes the session for key, if any. Delete fires the eviction
// hook, which calls Stop again; Stop is idempotent so the double call
// is harmless.
func (m *Manager) Stop(key string) (string, bool) {
	v, found := m.sessions.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(*Session)
	if !ok {
		return "", false
	}
	text, stopped := s.Stop()
	m.sessions.Delete(key)
	return text, stopped
}
