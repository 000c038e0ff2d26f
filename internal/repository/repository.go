package repository

import (
	"github.com/dimitar128425107/fasting-bot/internal/domain"
)

// SessionRepository defines per-user fasting state operations. Callers are
// expected to serialize mutations per user; implementations only guarantee
// that individual calls are safe under concurrent access.
type SessionRepository interface {
	GetOrCreate(userID int64) *domain.UserState
	SetCurrent(userID int64, session *domain.FastSession)
	PushHistory(userID int64, session *domain.FastSession)
	History(userID int64) []*domain.FastSession
}
