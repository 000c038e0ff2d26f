package service

import (
	"sync"
	"time"

	"github.com/dimitar128425107/fasting-bot/internal/scheduler"

	"go.uber.org/zap"
)

// TimerService coordinates the single deferred fast-completion callback
// each user may have pending. Scheduling a new completion replaces any
// pending one atomically; actual waiting is delegated to the scheduler.
type TimerService struct {
	scheduler scheduler.Scheduler
	logger    *zap.Logger

	mu      sync.Mutex
	pending map[int64]*pendingCompletion
}

// pendingCompletion ties a scheduler handle to one scheduled completion, so
// a fired or canceled timer can be told apart from its replacement.
type pendingCompletion struct {
	handle scheduler.Handle
}

// NewTimerService creates a new timer service
func NewTimerService(sched scheduler.Scheduler, logger *zap.Logger) *TimerService {
	return &TimerService{
		scheduler: sched,
		logger:    logger,
		pending:   make(map[int64]*pendingCompletion),
	}
}

// ScheduleCompletion arms the completion callback for userID after delay,
// stopping any previously pending one first. The fire callback receives the
// (userID, chatID) payload it was armed with.
func (s *TimerService) ScheduleCompletion(userID, chatID int64, delay time.Duration, fire func(userID, chatID int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, exists := s.pending[userID]; exists {
		old.handle.Stop()
		delete(s.pending, userID)
	}

	p := &pendingCompletion{}
	p.handle = s.scheduler.AfterFunc(delay, func() {
		s.release(userID, p)
		fire(userID, chatID)
	})
	s.pending[userID] = p

	s.logger.Debug("Completion timer scheduled",
		zap.Int64("user_id", userID),
		zap.Duration("delay", delay),
	)
}

// Cancel stops the pending completion callback for userID, if any. It
// reports whether a pending timer was found and stopped before firing.
func (s *TimerService) Cancel(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.pending[userID]
	if !exists {
		return false
	}
	delete(s.pending, userID)
	return p.handle.Stop()
}

// CancelAll stops every pending timer, used during shutdown.
func (s *TimerService) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, p := range s.pending {
		p.handle.Stop()
		delete(s.pending, userID)
	}
}

// release forgets a completion once it fired, unless a newer one already
// replaced it.
func (s *TimerService) release(userID int64, p *pendingCompletion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[userID] == p {
		delete(s.pending, userID)
	}
}
