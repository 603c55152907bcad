package imports

import (
	"context"
	"sync"

	"github.com/carson-networks/ledger-server/internal/service"
)

// importRunner is the pipeline a worker hands each job to.
type importRunner interface {
	Execute(ctx context.Context, path string) ([]service.Transaction, error)
}

type job struct {
	ctx      context.Context
	path     string
	response chan jobResult
}

type jobResult struct {
	transactions []service.Transaction
	err          error
}

// Dispatcher manages the import queue, starts/stops workers, and enqueues
// jobs. With the default single worker, imports run one at a time.
type Dispatcher struct {
	runner     importRunner
	queue      chan job
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewDispatcher(runner importRunner, numWorkers int) *Dispatcher {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Dispatcher{
		runner:     runner,
		queue:      make(chan job, 100),
		numWorkers: numWorkers,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.run()
		}()
	}
}

// run drains the queue until it is closed.
func (d *Dispatcher) run() {
	for item := range d.queue {
		transactions, err := d.runner.Execute(item.ctx, item.path)
		item.response <- jobResult{transactions: transactions, err: err}
	}
}

func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues an import for the file at path and waits for the result.
func (d *Dispatcher) Process(ctx context.Context, path string) ([]service.Transaction, error) {
	respCh := make(chan jobResult, 1)
	d.queue <- job{ctx: ctx, path: path, response: respCh}

	select {
	case resp := <-respCh:
		return resp.transactions, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
