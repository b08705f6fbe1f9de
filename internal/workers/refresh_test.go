package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gchalakovmmi/nap/internal/logger"
)

// refresherStub counts Refresh calls.
type refresherStub struct {
	calls atomic.Int64
	err   error
}

func (r *refresherStub) Refresh(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestCatalogRefreshJob_RefreshesOnTicker(t *testing.T) {
	refresher := &refresherStub{}
	job := NewCatalogRefreshJob(refresher, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, refresher.calls.Load(), int64(2))
}

func TestCatalogRefreshJob_StopHaltsRefreshing(t *testing.T) {
	refresher := &refresherStub{}
	job := NewCatalogRefreshJob(refresher, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	calls := refresher.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, refresher.calls.Load())
}

func TestCatalogRefreshJob_ZeroIntervalDisablesJob(t *testing.T) {
	refresher := &refresherStub{}
	job := NewCatalogRefreshJob(refresher, 0, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, refresher.calls.Load())
}

func TestCatalogRefreshJob_StopWithoutStartIsSafe(t *testing.T) {
	job := NewCatalogRefreshJob(&refresherStub{}, time.Minute, logger.Nop())
	job.Stop()
}

func TestCatalogRefreshJob_ContextCancelStopsLoop(t *testing.T) {
	refresher := &refresherStub{}
	job := NewCatalogRefreshJob(refresher, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	calls := refresher.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, refresher.calls.Load())

	job.Stop()
}

func TestWorkers_StartAndStopAll(t *testing.T) {
	r1 := &refresherStub{}
	r2 := &refresherStub{}
	ws := NewWorkers(
		NewCatalogRefreshJob(r1, 5*time.Millisecond, logger.Nop()),
		NewCatalogRefreshJob(r2, 5*time.Millisecond, logger.Nop()),
	)

	ws.StartAll(context.Background())
	time.Sleep(30 * time.Millisecond)
	ws.StopAll()

	assert.Positive(t, r1.calls.Load())
	assert.Positive(t, r2.calls.Load())
}
