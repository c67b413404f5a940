// Package worker averages batches of scouting reports on a pool of workers.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/okian/hoopscout/internal/adapters/mq/queue"
	"github.com/okian/hoopscout/internal/domain/report"
	"github.com/okian/hoopscout/pkg/logger"
	"github.com/okian/hoopscout/pkg/metrics"
)

// ErrNotProcessed is reported for jobs abandoned because the batch was canceled.
var ErrNotProcessed = errors.New("report not processed")

// Averager averages one report.
type Averager interface {
	Report(ctx context.Context, text string) (report.Averages, error)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Result is the outcome of one job.
type Result struct {
	Index    int
	Source   string
	Averages report.Averages
	Err      error
}

// InMemoryWorker takes jobs off the queue and sends their results on.
type InMemoryWorker struct {
	queue    Queue
	averager Averager
	results  chan<- Result
	name     string
	logger   logger.Logger
	done     chan struct{}
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, averager Averager, results chan<- Result, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		averager: averager,
		results:  results,
		name:     "worker",
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get()
	}
	w.logger = w.logger.Named(w.name)
	return w
}

// Run processes jobs until the queue is drained or ctx is canceled.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			res := w.process(ctx, job)
			select {
			case w.results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Done is closed when Run returns.
func (w *InMemoryWorker) Done() <-chan struct{} { return w.done }

func (w *InMemoryWorker) process(ctx context.Context, job queue.Job) Result {
	res := Result{Index: job.Index, Source: job.Source}
	res.Averages, res.Err = w.averager.Report(ctx, job.Text)
	if res.Err != nil {
		metrics.RecordBatchJob(metrics.OutcomeFailed)
		w.logger.Debug(ctx, "report failed",
			logger.String("source", job.Source),
			logger.Error(res.Err),
		)
		return res
	}
	metrics.RecordBatchJob(metrics.OutcomeOK)
	return res
}

// Pool manages multiple workers sharing one queue.
type Pool struct {
	workers []*InMemoryWorker
	results chan Result
	logger  logger.Logger
}

// NewPool creates a pool of workerCount workers. A count below one uses
// runtime.NumCPU().
func NewPool(workerCount int, q Queue, averager Averager, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		results: make(chan Result, workerCount),
	}
	for i := range p.workers {
		wopts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		p.workers[i] = NewInMemoryWorker(q, averager, p.results, wopts...)
	}
	probe := &InMemoryWorker{}
	for _, opt := range opts {
		opt(probe)
	}
	if probe.logger == nil {
		probe.logger = logger.Get()
	}
	p.logger = probe.logger.Named("worker-pool")
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Start starts every worker. Results closes once all workers have stopped.
func (p *Pool) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, w := range p.workers {
		wg.Add(1)
		go func(w *InMemoryWorker) {
			defer wg.Done()
			w.Run(ctx)
		}(w)
	}
	go func() {
		wg.Wait()
		close(p.results)
	}()
}

// Results returns the channel of finished jobs.
func (p *Pool) Results() <-chan Result { return p.results }

// Process averages every text on a pool of workerCount workers and returns
// the results in input order. Jobs left when ctx is canceled carry
// ErrNotProcessed.
func Process(ctx context.Context, averager Averager, jobs []queue.Job, workerCount int, opts ...Option) []Result {
	out := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	for i, j := range jobs {
		out[i] = Result{Index: i, Source: j.Source, Err: ErrNotProcessed}
	}
	if err := ctx.Err(); err != nil {
		return abandon(out, err)
	}

	q := queue.NewInMemoryQueue(queue.WithCapacity(len(jobs)))
	for i, j := range jobs {
		j.Index = i
		q.Enqueue(ctx, j)
	}
	_ = q.Close()

	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}
	p := NewPool(workerCount, q, averager, opts...)
	p.Start(ctx)
	for res := range p.Results() {
		out[res.Index] = res
	}

	failed := 0
	for _, r := range out {
		if r.Err != nil {
			failed++
		}
	}
	p.logger.Debug(ctx, "batch finished",
		logger.Int("reports", len(jobs)),
		logger.Int("failed", failed),
		logger.Int("workers", p.Size()),
	)
	if err := ctx.Err(); err != nil {
		return abandon(out, err)
	}
	return out
}

func abandon(out []Result, cause error) []Result {
	for i := range out {
		if errors.Is(out[i].Err, ErrNotProcessed) {
			out[i].Err = fmt.Errorf("%w: %w", ErrNotProcessed, cause)
		}
	}
	return out
}
