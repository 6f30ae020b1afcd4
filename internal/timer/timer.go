package timer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FireFunc is invoked when an armed timer elapses. The receiver must
// revalidate the token against current conversation state; delivery is
// at-least-once and fires may arrive arbitrarily late.
type FireFunc func(ctx context.Context, conversationID string, token int64)

type armedTimer struct {
	timer *time.Timer
	token int64
}

// Service schedules one pending promotion per conversation id. Stopping the
// underlying time.Timer on re-arm or cancel is an optimization only: a fire
// that slips through carries its original token and is rejected downstream.
type Service struct {
	logger  *zap.Logger
	onFire  FireFunc
	mu      sync.Mutex
	pending map[string]*armedTimer
	stopped bool
}

// NewService creates a timer service delivering fires to onFire.
func NewService(logger *zap.Logger, onFire FireFunc) *Service {
	return &Service{
		logger:  logger,
		onFire:  onFire,
		pending: make(map[string]*armedTimer),
	}
}

// Arm schedules a fire for the conversation after delay, replacing any
// previously scheduled fire. The token must come from the conversation's
// atomic arm-token bump; Arm itself does not validate it.
func (s *Service) Arm(conversationID string, delay time.Duration, token int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrTimerStopped
	}

	if prev, ok := s.pending[conversationID]; ok {
		prev.timer.Stop()
	}

	s.pending[conversationID] = &armedTimer{
		token: token,
		timer: time.AfterFunc(delay, func() {
			s.fire(conversationID, token)
		}),
	}

	s.logger.Debug("Handoff timer armed",
		zap.String("conversationID", conversationID),
		zap.Int64("token", token),
		zap.Duration("delay", delay))

	return nil
}

// Cancel drops the scheduled fire for the conversation if one exists. Callers
// must still invalidate the token; an in-flight fire cannot be stopped here.
func (s *Service) Cancel(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[conversationID]; ok {
		prev.timer.Stop()
		delete(s.pending, conversationID)
	}
}

// Stop cancels all scheduled fires and rejects further arming.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.pending {
		t.timer.Stop()
		delete(s.pending, id)
	}

	s.logger.Info("Handoff timer service stopped")
}

// PendingCount returns the number of scheduled fires.
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Service) fire(conversationID string, token int64) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	// A replacement may have been armed between this fire starting and the
	// lock being acquired; only clear the entry this fire still owns.
	if cur, ok := s.pending[conversationID]; ok && cur.token == token {
		delete(s.pending, conversationID)
	}
	s.mu.Unlock()

	s.logger.Debug("Handoff timer fired",
		zap.String("conversationID", conversationID),
		zap.Int64("token", token))

	s.onFire(context.Background(), conversationID, token)
}
