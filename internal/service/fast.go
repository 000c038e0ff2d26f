package service

import (
	"errors"
	"sync"
	"time"

	"github.com/dimitar128425107/fasting-bot/internal/domain"
	"github.com/dimitar128425107/fasting-bot/internal/repository"

	"go.uber.org/zap"
)

// ErrNoActiveFast is returned when an action requires a current fast and
// the user has none.
var ErrNoActiveFast = errors.New("no active fast")

// Notifier delivers the fast-completion notification when a timer fires.
// It is the only piece of the presentation layer the engine calls into.
type Notifier interface {
	NotifyFastComplete(chatID int64) error
}

// FastStatus is a read-only snapshot of the current fast.
type FastStatus struct {
	Plan         domain.Plan
	Elapsed      time.Duration
	Remaining    time.Duration
	HasRemaining bool
}

// FastService drives the fast lifecycle: starting a fast, reporting its
// progress, ending it manually and completing it when the timer fires.
// Every transition runs under a per-user lock, so transitions for one user
// are serialized while different users proceed independently.
type FastService struct {
	sessions repository.SessionRepository
	timers   *TimerService
	notifier Notifier
	logger   *zap.Logger

	lockMux   sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewFastService creates a new fast lifecycle service
func NewFastService(
	sessions repository.SessionRepository,
	timers *TimerService,
	notifier Notifier,
	logger *zap.Logger,
) *FastService {
	return &FastService{
		sessions:  sessions,
		timers:    timers,
		notifier:  notifier,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// userLock returns the lock serializing transitions for this user
func (s *FastService) userLock(userID int64) *sync.Mutex {
	s.lockMux.Lock()
	defer s.lockMux.Unlock()

	lock, exists := s.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Start begins a new fast for the selected duration token. Any existing
// current session is moved into history as-is, whatever state it was in.
// For a fixed duration exactly one completion timer is armed, replacing any
// pending one; an open-ended fast arms none but still cancels leftovers.
func (s *FastService) Start(userID, chatID int64, token string) (*domain.FastSession, error) {
	duration, fixed, err := ResolveDuration(token)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := s.sessions.GetOrCreate(userID)
	if prev := state.Current; prev != nil {
		// Abandoned, not completed: it keeps whatever state it had.
		s.sessions.PushHistory(userID, prev)
	}

	now := time.Now().UTC()
	session := &domain.FastSession{Start: now}
	if fixed {
		session.Plan = domain.NewFixedPlan(now, duration)
	} else {
		session.Plan = domain.OpenEndedPlan()
	}
	s.sessions.SetCurrent(userID, session)

	if fixed {
		s.timers.ScheduleCompletion(userID, chatID, duration, func(uid, cid int64) {
			s.completeFast(uid, cid, session)
		})
	} else {
		// A timer armed for a replaced session must not outlive it.
		s.timers.Cancel(userID)
	}

	s.logger.Info("Fast started",
		zap.Int64("user_id", userID),
		zap.String("duration", session.Plan.String()),
	)
	return session, nil
}

// AttachStatusMessage records the status-message handle on the current
// session. The first recorded handle wins; later calls are ignored.
func (s *FastService) AttachStatusMessage(userID int64, ref domain.MessageRef) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current := s.sessions.GetOrCreate(userID).Current
	if current != nil && current.StatusMsg.IsZero() {
		current.StatusMsg = ref
	}
}

// Status reports elapsed and remaining time for the current fast without
// mutating anything. Returns ErrNoActiveFast when the user has no fast.
func (s *FastService) Status(userID int64) (*FastStatus, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current := s.sessions.GetOrCreate(userID).Current
	if current == nil {
		return nil, ErrNoActiveFast
	}

	now := time.Now().UTC()
	status := &FastStatus{
		Plan:    current.Plan,
		Elapsed: current.Elapsed(now),
	}
	status.Remaining, status.HasRemaining = current.Remaining(now)
	return status, nil
}

// EndNow terminates the current fast manually: the pending timer is
// canceled, the session is marked completed with its end set to now and
// moved into history. An open-ended fast gets its duration filled in
// retroactively. Returns the ended session, or ErrNoActiveFast.
func (s *FastService) EndNow(userID int64) (*domain.FastSession, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := s.sessions.GetOrCreate(userID)
	current := state.Current
	if current == nil {
		return nil, ErrNoActiveFast
	}

	s.timers.Cancel(userID)

	now := time.Now().UTC()
	current.Completed = true
	if duration, ok := current.Plan.Duration(); ok {
		current.Plan = domain.ClosedPlan(duration, now)
	} else {
		current.Plan = domain.ClosedPlan(now.Sub(current.Start), now)
	}

	s.sessions.PushHistory(userID, current)
	s.sessions.SetCurrent(userID, nil)

	s.logger.Info("Fast ended manually",
		zap.Int64("user_id", userID),
		zap.Duration("elapsed", current.Elapsed(now)),
	)
	return current, nil
}

// History returns the user's past fasts, most recent first.
func (s *FastService) History(userID int64) []*domain.FastSession {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	history := s.sessions.History(userID)
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history
}

// completeFast is the timer-fire transition. The session the timer was
// armed for is checked against the current one: if the user already ended
// the fast, or replaced it with a new one just as the timer came due, the
// stale fire is absorbed silently.
func (s *FastService) completeFast(userID, chatID int64, session *domain.FastSession) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := s.sessions.GetOrCreate(userID)
	if state.Current != session {
		s.logger.Debug("Stale completion timer ignored", zap.Int64("user_id", userID))
		return
	}

	session.Completed = true
	s.sessions.PushHistory(userID, session)
	s.sessions.SetCurrent(userID, nil)

	s.logger.Info("Fast completed",
		zap.Int64("user_id", userID),
		zap.String("duration", session.Plan.String()),
	)

	if err := s.notifier.NotifyFastComplete(chatID); err != nil {
		// State change stands; delivery is best effort.
		s.logger.Error("Failed to send completion notification",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
	}
}
