package journal

import (
	"sync"

	coreport "github.com/amirhossein-jamali/async-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/usecase"
)

// Worker is the single consumer of a MessageQueue.
// It forwards every dequeued record to the logger until shutdown is requested and the queue is drained.
type Worker struct {
	queue        *MessageQueue
	logger       usecase.RecordLogger
	timeProvider coreport.TimeProvider
	diag         coreport.Logger

	startOnce sync.Once
	done      chan struct{}
	processed int
}

// NewWorker creates a worker; call Start to launch it
func NewWorker(
	queue *MessageQueue,
	logger usecase.RecordLogger,
	timeProvider coreport.TimeProvider,
	diag coreport.Logger,
) *Worker {
	if queue == nil || logger == nil {
		panic("journal: worker queue and logger cannot be nil")
	}

	return &Worker{
		queue:        queue,
		logger:       logger,
		timeProvider: timeProvider,
		diag:         diag,
		done:         make(chan struct{}),
	}
}

// Start launches the worker goroutine. Only the first call has an effect.
func (w *Worker) Start() {
	w.startOnce.Do(func() {
		go func() {
			defer close(w.done)
			w.processed = w.Run()
		}()
	})
}

// Wait blocks until the worker has drained the queue and exited.
// For a worker that was never started it returns immediately and the worker can no longer be started.
func (w *Worker) Wait() {
	w.startOnce.Do(func() {
		close(w.done)
	})
	<-w.done
}

// Processed returns the number of records forwarded to the logger.
// The value is only meaningful after Wait returns.
func (w *Worker) Processed() int {
	<-w.done
	return w.processed
}

// Run consumes the queue on the calling goroutine and returns the number of records forwarded.
// It stops only after an empty dequeue observed together with a shutdown request,
// so every record enqueued before RequestShutdown is processed.
func (w *Worker) Run() int {
	started := w.timeProvider.Now()
	w.diag.Info("Journal worker started", nil)

	processed := 0
	for {
		record, ok := w.queue.Dequeue()
		if !ok && w.queue.IsShutdownRequested() {
			break
		}

		if record.IsEmpty() {
			continue
		}

		w.logger.Log(record.Message, record.Level)
		processed++
	}

	w.diag.Info("Journal worker stopped", map[string]any{
		"processed": processed,
		"elapsed":   w.timeProvider.Since(started).String(),
	})

	return processed
}
