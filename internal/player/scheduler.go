package player

import (
	"sync"
	"time"
)

// Task is a handle to a running periodic task.
type Task interface {
	// Stop cancels the task. Calling Stop more than once is harmless.
	Stop()
}

// Scheduler starts periodic tasks.
type Scheduler interface {
	Every(period time.Duration, fn func()) Task
}

// TimeScheduler runs each task on its own goroutine driven by a time.Ticker.
type TimeScheduler struct{}

// Every implements Scheduler.
func (TimeScheduler) Every(period time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			fn()
		}
	}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
