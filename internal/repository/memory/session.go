package memory

import (
	"sync"

	"github.com/dimitar128425107/fasting-bot/internal/domain"
)

// SessionRepo keeps per-user fasting state in process memory for the
// lifetime of the bot. Entries are created lazily on first touch and never
// removed.
type SessionRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.UserState
}

// NewSessionRepo creates an empty in-memory session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		users: make(map[int64]*domain.UserState),
	}
}

// GetOrCreate returns the state for userID, initializing it on first use
func (r *SessionRepo) GetOrCreate(userID int64) *domain.UserState {
	r.mu.RLock()
	state, exists := r.users[userID]
	r.mu.RUnlock()
	if exists {
		return state
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another goroutine may have initialized in between.
	if state, exists = r.users[userID]; exists {
		return state
	}
	state = &domain.UserState{}
	r.users[userID] = state
	return state
}

// SetCurrent replaces the user's active session; nil clears it
func (r *SessionRepo) SetCurrent(userID int64, session *domain.FastSession) {
	state := r.GetOrCreate(userID)
	r.mu.Lock()
	defer r.mu.Unlock()
	state.Current = session
}

// PushHistory appends a finished session, keeping only the most recent
// entries up to domain.HistoryLimit
func (r *SessionRepo) PushHistory(userID int64, session *domain.FastSession) {
	state := r.GetOrCreate(userID)
	r.mu.Lock()
	defer r.mu.Unlock()
	state.PushHistory(session)
}

// History returns a copy of the user's history, oldest first
func (r *SessionRepo) History(userID int64) []*domain.FastSession {
	state := r.GetOrCreate(userID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.FastSession, len(state.History))
	copy(out, state.History)
	return out
}
