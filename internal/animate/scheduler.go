package animate

import (
	"sync"
	"time"
)

// CancelFunc releases a scheduled timer. Calling it more than once is safe.
type CancelFunc func()

// Scheduler runs tick every period until the returned CancelFunc is called.
// period must be positive.
type Scheduler interface {
	Every(period time.Duration, tick func()) CancelFunc
}

// TickerScheduler schedules ticks on the wall clock. Each timer gets its own
// goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// Every implements Scheduler. Ticks run on the timer goroutine.
func (TickerScheduler) Every(period time.Duration, tick func()) CancelFunc {
	ticker := time.NewTicker(period)
	stopChan := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopChan:
				return
			case <-ticker.C:
				// A stop that raced with this tick wins.
				select {
				case <-stopChan:
					return
				default:
				}
				tick()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopChan) })
	}
}
