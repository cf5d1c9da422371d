package animate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_FiresInOrder(t *testing.T) {
	clock := NewManualClock()
	var got []string

	clock.Every(30*time.Millisecond, func() { got = append(got, "slow") })
	clock.Every(20*time.Millisecond, func() { got = append(got, "fast") })

	clock.Advance(60 * time.Millisecond)

	// fast@20, slow@30, fast@40, slow@60 and fast@60 (tie goes to the first timer)
	assert.Equal(t, []string{"fast", "slow", "fast", "slow", "fast"}, got)
	assert.Equal(t, 60*time.Millisecond, clock.Now())
}

func TestManualClock_NothingFiresWithoutAdvance(t *testing.T) {
	clock := NewManualClock()
	fired := 0
	clock.Every(time.Millisecond, func() { fired++ })

	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(999 * time.Microsecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Microsecond)
	assert.Equal(t, 1, fired)
}

func TestManualClock_CancelInsideTick(t *testing.T) {
	clock := NewManualClock()
	fired := 0

	var cancel CancelFunc
	cancel = clock.Every(10*time.Millisecond, func() {
		fired++
		if fired == 2 {
			cancel()
		}
	})

	clock.Advance(time.Second)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 0, clock.Pending())

	// Cancelling again is harmless
	cancel()
}

func TestManualClock_RejectsNonPositivePeriod(t *testing.T) {
	clock := NewManualClock()
	assert.Panics(t, func() { clock.Every(0, func() {}) })
}

func TestTickerScheduler_CancelStopsTicks(t *testing.T) {
	ticks := make(chan struct{}, 100)
	cancel := TickerScheduler{}.Every(time.Millisecond, func() { ticks <- struct{}{} })

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}

	cancel()
	cancel()

	// Drain anything that raced with cancel, then expect silence.
	time.Sleep(10 * time.Millisecond)
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, ticks)
}

func TestTickerScheduler_CancelFromTick(t *testing.T) {
	var (
		mu     sync.Mutex
		cancel CancelFunc
		count  int
	)
	returned := make(chan struct{})

	mu.Lock()
	cancel = TickerScheduler{}.Every(time.Millisecond, func() {
		mu.Lock()
		defer mu.Unlock()
		count++
		if count == 1 {
			cancel()
			close(returned)
		}
	})
	mu.Unlock()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("cancel inside a tick never returned")
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count, "no ticks after cancel")
}
