package syssched

import (
	"context"
	"errors"
	"time"

	"github.com/open-control-systems/monoclock/components/core"
	"github.com/open-control-systems/monoclock/components/status"
)

// AsyncTaskRunnerParams represents various options for AsyncTaskRunner.
type AsyncTaskRunnerParams struct {
	// UpdateInterval is the interval between two task runs.
	UpdateInterval time.Duration
}

// AsyncTaskRunner periodically runs task in the standalone goroutine.
type AsyncTaskRunner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	doneCh  chan struct{}
	task    Task
	handler core.ErrorHandler
	params  AsyncTaskRunnerParams
}

// NewAsyncTaskRunner is an initialization of AsyncTaskRunner.
//
// Parameters:
//   - ctx - parent context, the runner stops when it's cancelled.
//   - task - task to run, the runner stops when it returns status.StatusDone.
//   - handler - receives all other task errors, can be nil.
func NewAsyncTaskRunner(
	ctx context.Context,
	task Task,
	handler core.ErrorHandler,
	params AsyncTaskRunnerParams,
) *AsyncTaskRunner {
	ctx, cancel := context.WithCancel(ctx)

	return &AsyncTaskRunner{
		ctx:     ctx,
		cancel:  cancel,
		doneCh:  make(chan struct{}),
		task:    task,
		handler: handler,
		params:  params,
	}
}

// Start begins asynchronous task processing.
func (r *AsyncTaskRunner) Start() {
	go r.run()
}

// Stop ends asynchronous task processing and waits until it finishes.
func (r *AsyncTaskRunner) Stop() error {
	r.cancel()
	<-r.doneCh

	return nil
}

// Done returns a channel that is closed when the task processing is finished.
func (r *AsyncTaskRunner) Done() <-chan struct{} {
	return r.doneCh
}

func (r *AsyncTaskRunner) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.params.UpdateInterval)
	defer ticker.Stop()

	if r.runTask() {
		return
	}

	for {
		select {
		case <-ticker.C:
			if r.runTask() {
				return
			}

		case <-r.ctx.Done():
			return
		}
	}
}

func (r *AsyncTaskRunner) runTask() bool {
	err := r.task.Run()
	if err == nil {
		return false
	}

	if errors.Is(err, status.StatusDone) {
		return true
	}

	if r.handler != nil {
		r.handler.HandleError(err)
	}

	return false
}
