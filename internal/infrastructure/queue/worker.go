package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Runner executes one job. It must not panic past its own boundary; the
// worker recovers anyway so one bad job cannot take the pool down.
type Runner interface {
	Run(ctx context.Context, job DownloadJob)
}

type Worker struct {
	ID      int
	JobChan <-chan DownloadJob
	Wg      *sync.WaitGroup
	Runner  Runner
	Log     *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				w.process(ctx, job)
			case <-ctx.Done():
				w.Log.Debug("stopping on context cancellation", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, job DownloadJob) {
	defer func() {
		if r := recover(); r != nil {
			w.Log.Error("job panicked", zap.Int("worker", w.ID), zap.String("job_id", job.ID), zap.Any("panic", r))
		}
	}()

	w.Log.Info("processing job", zap.Int("worker", w.ID), zap.String("job_id", job.ID), zap.String("url", job.URL))
	w.Runner.Run(ctx, job)
}
