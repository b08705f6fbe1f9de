package workers

import (
	"context"
	"sync"
	"time"

	"github.com/gchalakovmmi/nap/internal/logger"
)

// catalogRefreshJob rereads the catalog table on a ticker so the first
// request after a TTL expiry does not pay the file read. A non-positive
// interval disables the job; the catalog then refreshes lazily on demand.
type catalogRefreshJob struct {
	catalog  CatalogRefresher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogRefreshJob creates a catalogRefreshJob that calls catalog.Refresh
// every interval. The job is idle until Start is called.
func NewCatalogRefreshJob(catalog CatalogRefresher, interval time.Duration, logger *logger.Logger) Worker {
	return &catalogRefreshJob{
		catalog:  catalog,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the refresh loop. It stops any previously running loop
// first. The goroutine exits when ctx is cancelled or Stop is called.
func (j *catalogRefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("catalog refresh job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.catalog.Refresh(jobCtx); err != nil {
					j.logger.Err(err).Msg("catalog refresh failed")
				}
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("catalog refresh job started")
}

// Stop cancels the refresh loop and blocks until its goroutine has exited.
// Safe to call when the job is not running.
func (j *catalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
