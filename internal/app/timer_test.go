package app

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTimerAutoFireExactlyOnce(t *testing.T) {
	var fired atomic.Int32
	timer := NewReactionTimer(zap.NewNop(), func() bool { return true }, func() { fired.Add(1) })

	timer.Start(5 * time.Millisecond)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)

	// A manual submission after expiry must be refused.
	require.False(t, timer.TrySubmit())
	require.Equal(t, int32(1), fired.Load())
}

func TestTimerManualThenAutoFiresOnce(t *testing.T) {
	var fired atomic.Int32
	timer := NewReactionTimer(zap.NewNop(), func() bool { return true }, func() { fired.Add(1) })

	timer.Start(5 * time.Millisecond)
	require.True(t, timer.TrySubmit())

	// Give a racing expiry every chance to misfire.
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), fired.Load(), "manual submission claimed the flag; auto must not fire")
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	var fired atomic.Int32
	timer := NewReactionTimer(zap.NewNop(), func() bool { return true }, func() { fired.Add(1) })

	timer.Start(10 * time.Millisecond)
	timer.Start(time.Hour) // ignored; first countdown stands
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
}

func TestTimerGuardBlocksLateFire(t *testing.T) {
	var fired atomic.Int32
	var eligible atomic.Bool
	eligible.Store(true)
	timer := NewReactionTimer(zap.NewNop(), func() bool { return eligible.Load() }, func() { fired.Add(1) })

	timer.Start(10 * time.Millisecond)
	eligible.Store(false)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, int32(0), fired.Load(), "a fire after eligibility loss is a guarded no-op")
}

func TestTimerStopResetsOneShotFlag(t *testing.T) {
	var fired atomic.Int32
	timer := NewReactionTimer(zap.NewNop(), func() bool { return true }, func() { fired.Add(1) })

	timer.Start(time.Hour)
	require.True(t, timer.TrySubmit())
	timer.Stop()

	// A fresh phase entry gets a fresh flag.
	timer.Start(5 * time.Millisecond)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
}
