package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a clock source that can be shut down.
type Timer interface {
	Now() time.Time
	Stop()
}

// DefaultStep is the refresh period of a CachedTimer used for id generation.
const DefaultStep = time.Millisecond

// SystemTimer reads the wall clock on every call.
type SystemTimer struct{}

func (SystemTimer) Now() time.Time { return time.Now() }
func (SystemTimer) Stop()          {}

// CachedTimer serves a timestamp refreshed every step by a background
// goroutine, trading precision for a cheap Now.
type CachedTimer struct {
	now    atomic.Int64 // unix nanoseconds
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func NewCachedTimer(step time.Duration) *CachedTimer {
	t := &CachedTimer{
		ticker: time.NewTicker(step),
		done:   make(chan struct{}),
	}
	t.now.Store(time.Now().UnixNano())

	t.wg.Add(1)
	go t.run()

	return t
}

func (t *CachedTimer) run() {
	defer t.wg.Done()

	for {
		select {
		case now := <-t.ticker.C:
			t.now.Store(now.UnixNano())
		case <-t.done:
			t.ticker.Stop()
			return
		}
	}
}

func (t *CachedTimer) Now() time.Time {
	return time.Unix(0, t.now.Load())
}

// Stop halts the refresh goroutine. Now keeps returning the last value.
func (t *CachedTimer) Stop() {
	t.once.Do(func() { close(t.done) })
	t.wg.Wait()
}
