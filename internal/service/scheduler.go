// internal/service/scheduler.go
package service

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ReturnScheduler owns the pending end-of-leave alerts, one per user.
// Scheduling for a user who already has a pending alert stops the old timer
// before the new one is armed. Nothing is persisted: after a restart the
// startup replay rebuilds the map from channel history.
type ReturnScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	logger *logrus.Logger
}

func NewReturnScheduler() *ReturnScheduler {
	return &ReturnScheduler{
		timers: make(map[string]*time.Timer),
		logger: logrus.New(),
	}
}

// Schedule arms fn to fire when the leave ends. End times in the past are
// ignored.
func (s *ReturnScheduler) Schedule(userID string, endsAt time.Time, fn func()) {
	delay := time.Until(endsAt)
	if delay <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[userID]; ok {
		prev.Stop()
		delete(s.timers, userID)
		s.logger.Debugf("Replaced pending return alert for user %s", userID)
	}

	// Stop on an already-expired timer cannot hold back a callback that has
	// started, so the callback re-checks that it still owns the entry: a
	// stale one must neither fire nor evict its replacement.
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if current, ok := s.timers[userID]; !ok || current != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, userID)
		s.mu.Unlock()
		fn()
	})
	s.timers[userID] = timer
}

// Cancel drops a pending alert, reporting whether one existed.
func (s *ReturnScheduler) Cancel(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[userID]
	if ok {
		t.Stop()
		delete(s.timers, userID)
	}
	return ok
}

// Pending returns the number of armed alerts.
func (s *ReturnScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
