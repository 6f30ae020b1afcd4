package timer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/callbridge/callbridge/internal/timer"
)

type fireRecorder struct {
	mu    sync.Mutex
	fires []int64
	done  chan struct{}
}

func newFireRecorder(expected int) *fireRecorder {
	return &fireRecorder{done: make(chan struct{}, expected)}
}

func (r *fireRecorder) fire(ctx context.Context, conversationID string, token int64) {
	r.mu.Lock()
	r.fires = append(r.fires, token)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *fireRecorder) tokens() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, len(r.fires))
	copy(out, r.fires)
	return out
}

func (r *fireRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for timer fire")
	}
}

func TestTimerService_ArmAndFire(t *testing.T) {
	rec := newFireRecorder(1)
	svc := timer.NewService(zap.NewNop(), rec.fire)
	defer svc.Stop()

	err := svc.Arm("conv-1", 10*time.Millisecond, 7)
	require.NoError(t, err)

	rec.wait(t)
	assert.Equal(t, []int64{7}, rec.tokens())
	assert.Equal(t, 0, svc.PendingCount())
}

func TestTimerService_RearmReplacesPendingFire(t *testing.T) {
	rec := newFireRecorder(2)
	svc := timer.NewService(zap.NewNop(), rec.fire)
	defer svc.Stop()

	// The first timer is replaced before it can elapse; only the second
	// token is ever delivered.
	require.NoError(t, svc.Arm("conv-1", time.Hour, 1))
	require.NoError(t, svc.Arm("conv-1", 10*time.Millisecond, 2))

	rec.wait(t)
	assert.Equal(t, []int64{2}, rec.tokens())
	assert.Equal(t, 0, svc.PendingCount())
}

func TestTimerService_RearmKeepsNewerEntry(t *testing.T) {
	rec := newFireRecorder(2)
	svc := timer.NewService(zap.NewNop(), rec.fire)
	defer svc.Stop()

	// An immediate fire followed by a re-arm must leave the newer timer
	// pending; the elapsed fire may not clear an entry it does not own.
	require.NoError(t, svc.Arm("conv-1", 0, 1))
	rec.wait(t)

	require.NoError(t, svc.Arm("conv-1", time.Hour, 2))
	assert.Equal(t, 1, svc.PendingCount())
}

func TestTimerService_CancelDropsPendingFire(t *testing.T) {
	rec := newFireRecorder(1)
	svc := timer.NewService(zap.NewNop(), rec.fire)
	defer svc.Stop()

	require.NoError(t, svc.Arm("conv-1", 20*time.Millisecond, 1))
	svc.Cancel("conv-1")

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.tokens())
	assert.Equal(t, 0, svc.PendingCount())
}

func TestTimerService_CancelUnknownConversationIsNoop(t *testing.T) {
	svc := timer.NewService(zap.NewNop(), func(context.Context, string, int64) {})
	defer svc.Stop()

	svc.Cancel("never-armed")
	assert.Equal(t, 0, svc.PendingCount())
}

func TestTimerService_IndependentConversations(t *testing.T) {
	rec := newFireRecorder(2)
	svc := timer.NewService(zap.NewNop(), rec.fire)
	defer svc.Stop()

	require.NoError(t, svc.Arm("conv-1", 10*time.Millisecond, 1))
	require.NoError(t, svc.Arm("conv-2", 10*time.Millisecond, 2))

	rec.wait(t)
	rec.wait(t)
	assert.ElementsMatch(t, []int64{1, 2}, rec.tokens())
}

func TestTimerService_StopRejectsArming(t *testing.T) {
	rec := newFireRecorder(1)
	svc := timer.NewService(zap.NewNop(), rec.fire)

	require.NoError(t, svc.Arm("conv-1", time.Hour, 1))
	svc.Stop()

	assert.Equal(t, 0, svc.PendingCount())

	err := svc.Arm("conv-2", time.Millisecond, 2)
	assert.ErrorIs(t, err, timer.ErrTimerStopped)

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.tokens())
}
