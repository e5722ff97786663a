package app

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// ReactionTimer drives the timed reaction phase: a single-flight countdown
// that fires the phase's default action exactly once. The one-shot sent
// flag is shared between auto-expiry and manual submission so the two
// paths can race in either order without double-firing.
//
// AfterFunc callbacks run on a runtime goroutine, so the timer is the one
// core component that needs a mutex.
type ReactionTimer struct {
	log *zap.Logger

	// guard re-checks phase and eligibility at fire time; both may have
	// changed since scheduling.
	guard func() bool
	// fire performs the default action, typically dispatching a skip.
	fire func()

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	sent    bool
}

// NewReactionTimer constructs a stopped timer.
func NewReactionTimer(log *zap.Logger, guard func() bool, fire func()) *ReactionTimer {
	return &ReactionTimer{log: log, guard: guard, fire: fire}
}

// Start schedules the auto-action. Starting while already running is a
// no-op.
func (t *ReactionTimer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.sent = false
	t.timer = time.AfterFunc(d, t.expire)
	t.log.Debug("reaction timer started", zap.Duration("duration", d))
}

func (t *ReactionTimer) expire() {
	t.mu.Lock()
	if !t.running || t.sent {
		t.mu.Unlock()
		return
	}
	if t.guard != nil && !t.guard() {
		// Phase ended or the seat is no longer eligible; a late fire is
		// a guarded no-op.
		t.running = false
		t.mu.Unlock()
		return
	}
	t.sent = true
	t.running = false
	t.mu.Unlock()

	t.log.Debug("reaction timer expired, firing default action")
	t.fire()
}

// TrySubmit claims the one-shot flag for a manual submission. It returns
// false when the auto-action already fired (or a manual submit already
// went out), in which case the caller must not dispatch.
func (t *ReactionTimer) TrySubmit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sent {
		return false
	}
	t.sent = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.running = false
	return true
}

// Stop cancels the countdown and resets the one-shot flag. Called on phase
// exit and when the local seat ceases to be eligible.
func (t *ReactionTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.running = false
	t.sent = false
}

// Running reports whether a countdown is in flight.
func (t *ReactionTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
