package workers

import "context"

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// StartAll starts every worker in registration order.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops every worker and blocks until all have exited.
func (w *Workers) StopAll() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
