package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stepsyncdev/stepsync/internal/usecase/timeline"
)

// Session is one live preview: a controller plus the command queue its
// remote playback surface drains. Each session belongs to one project.
// The controller and queue are not safe for concurrent use; mu must be
// held across every operation on them, including the drain.
type Session struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Controller *timeline.Controller
	Queue      *timeline.CommandQueue

	mu       sync.Mutex
	lastSeen time.Time
}

// registry is an in-memory session store with idle expiry. Sessions hold
// no persistent state, so losing one on restart only costs the client a
// re-open.
type registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func newRegistry(ttl time.Duration) *registry {
	r := &registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}

	go r.cleanupExpired()

	return r
}

func (r *registry) put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.lastSeen = time.Now()
	r.sessions[s.ID] = s
}

func (r *registry) get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(s.lastSeen) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	s.lastSeen = time.Now()
	return s, true
}

func (r *registry) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// cleanupExpired periodically removes idle sessions
func (r *registry) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for id, s := range r.sessions {
			if now.Sub(s.lastSeen) > r.ttl {
				delete(r.sessions, id)
			}
		}
		r.mu.Unlock()
	}
}
