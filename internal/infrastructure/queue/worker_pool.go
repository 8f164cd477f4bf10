package queue

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolStopped = errors.New("worker pool is shut down")

// WorkerPool runs accepted jobs on a fixed number of goroutines. Accepted jobs
// wait in an unbounded backlog, so Submit only fails once Shutdown has begun.
type WorkerPool struct {
	jobChan chan DownloadJob
	wake    chan struct{}
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger

	mu      sync.Mutex
	backlog []DownloadJob
	closed  bool
}

func NewWorkerPool(workerCount int, runner Runner, log *zap.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobChan: make(chan DownloadJob),
		wake:    make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		log:     log.Named("queue"),
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.jobChan,
			Wg:      &pool.wg,
			Runner:  runner,
			Log:     pool.log,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	pool.wg.Add(1)
	go pool.dispatch()
	return pool
}

// Submit appends job to the backlog. onAccept, when set, runs before any
// worker can pick the job up; it is not called when Submit fails.
func (p *WorkerPool) Submit(job DownloadJob, onAccept func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolStopped
	}

	if onAccept != nil {
		onAccept()
	}
	p.backlog = append(p.backlog, job)
	p.notify()
	return nil
}

// Pending reports jobs accepted but not yet handed to a worker.
func (p *WorkerPool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.backlog)
}

func (p *WorkerPool) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// dispatch feeds the backlog to idle workers in FIFO order and closes jobChan
// once the pool is closed and the backlog is drained.
func (p *WorkerPool) dispatch() {
	defer p.wg.Done()
	defer close(p.jobChan)

	for {
		p.mu.Lock()
		if len(p.backlog) == 0 {
			closed := p.closed
			p.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-p.wake:
				continue
			case <-p.ctx.Done():
				return
			}
		}
		job := p.backlog[0]
		p.backlog[0] = DownloadJob{}
		p.backlog = p.backlog[1:]
		p.mu.Unlock()

		select {
		case p.jobChan <- job:
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops accepting jobs and lets workers drain the backlog. When ctx
// expires first, in-flight jobs are cancelled and the rest are dropped.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.notify()
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.log.Warn("shutdown deadline reached, cancelling in-flight jobs", zap.Int("dropped", p.Pending()))
		p.cancel()
		<-done
		return ctx.Err()
	}
}
