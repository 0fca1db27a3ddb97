package journal

import (
	"sync"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
)

// MessageQueue is an unbounded FIFO of pending records with a blocking Dequeue.
// Once shutdown is requested it stays requested; records already queued are still handed out.
type MessageQueue struct {
	mu       sync.Mutex
	ready    *sync.Cond
	pending  []entity.LogRecord
	shutdown bool
}

// NewMessageQueue creates an empty queue
func NewMessageQueue() *MessageQueue {
	q := &MessageQueue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends record to the tail and wakes one waiting consumer
func (q *MessageQueue) Enqueue(record entity.LogRecord) {
	q.mu.Lock()
	q.pending = append(q.pending, record)
	q.mu.Unlock()

	q.ready.Signal()
}

// Dequeue blocks until a record is available or shutdown is requested.
// It returns the oldest record and true, or a zero record and false when
// the queue is empty and shutdown has been requested.
func (q *MessageQueue) Dequeue() (entity.LogRecord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.pending) == 0 && !q.shutdown {
		q.ready.Wait()
	}

	if len(q.pending) == 0 {
		return entity.LogRecord{}, false
	}

	record := q.pending[0]
	q.pending[0] = entity.LogRecord{}
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = nil
	}

	return record, true
}

// RequestShutdown marks the queue as shutting down and wakes every waiter.
// Calling it more than once has no further effect.
func (q *MessageQueue) RequestShutdown() {
	q.mu.Lock()
	q.shutdown = true
	q.mu.Unlock()

	q.ready.Broadcast()
}

// IsEmpty reports whether no records are pending
func (q *MessageQueue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) == 0
}

// IsShutdownRequested reports whether RequestShutdown has been called
func (q *MessageQueue) IsShutdownRequested() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.shutdown
}

// Len returns the number of pending records
func (q *MessageQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
