// Package clock provides the wall-clock scheduler used outside of tests.
package clock

import (
	"sync"
	"time"

	"github.com/xvierd/reel-detox/internal/ports"
)

// TickerScheduler runs each repeating timer on its own goroutine.
type TickerScheduler struct {
	wg sync.WaitGroup
}

// NewTickerScheduler creates a scheduler backed by time.Ticker.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every calls fn every interval until the returned cancel is called.
// Cancel only signals the goroutine; a callback already in flight still runs.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	var once sync.Once

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}

// Wait blocks until every cancelled timer goroutine has exited.
func (s *TickerScheduler) Wait() {
	s.wg.Wait()
}

// Ensure TickerScheduler implements ports.Scheduler.
var _ ports.Scheduler = (*TickerScheduler)(nil)
