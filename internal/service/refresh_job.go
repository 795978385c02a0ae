package service

import (
	"context"
	"sync"
	"time"

	"github.com/w4/1p/internal/logger"
	"github.com/w4/1p/internal/store"
)

// Refresher is the slice of [ItemService] the refresh job needs.
type Refresher interface {
	Refresh(ctx context.Context) (store.Snapshot, error)
}

type refreshJob struct {
	refresher Refresher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that re-fetches the listing metadata on
// a ticker. The job is idle until Start is called.
func NewRefreshJob(refresher Refresher, log *logger.Logger) RefreshJob {
	return &refreshJob{refresher: refresher, logger: log}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.refresher.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
