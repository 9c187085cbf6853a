package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/service"
)

// RefreshWorker periodically re-lists entries from the server so the local
// snapshot keeps up with edits made on other devices. Each tick is a full
// List; the snapshot's wholesale replacement gives last-write-wins
// semantics, and a failed tick leaves the previous snapshot in place.
type RefreshWorker struct {
	entries  service.EntrySyncService
	interval time.Duration
	logger   *logger.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// NewRefreshWorker constructs a refresh worker. A non-positive interval
// disables it: Run becomes a no-op.
func NewRefreshWorker(entries service.EntrySyncService, interval time.Duration, log *logger.Logger) *RefreshWorker {
	return &RefreshWorker{
		entries:  entries,
		interval: interval,
		logger:   log,
		done:     make(chan struct{}),
	}
}

// Run implements [Worker]. The refresh loop runs in its own goroutine until
// Stop is called.
func (w *RefreshWorker) Run() {
	if w.interval <= 0 {
		w.logger.Debug().Msg("refresh worker disabled")
		return
	}

	go w.loop()
}

// Stop terminates the refresh loop. Safe to call multiple times.
func (w *RefreshWorker) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

func (w *RefreshWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			if err := w.entries.List(ctx); err != nil {
				// Expected before login; the next tick retries.
				w.logger.Debug().Err(err).Msg("background refresh failed")
			}
			cancel()
		}
	}
}
