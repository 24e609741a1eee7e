package queue

import "context"

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the queue.
	// Returns true if successful, false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns an item from the queue.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Capacity returns the total capacity of the queue.
	Capacity() uint64
}

// BlockingQueue is a bounded FIFO whose producers wait while it is full and
// whose consumers wait while it is empty.
type BlockingQueue[T any] interface {
	Queue[T]

	// Put appends item, waiting for free space.
	Put(item T) error

	// PutContext is Put bounded by ctx.
	PutContext(ctx context.Context, item T) error

	// Get removes the oldest item, waiting for one to arrive.
	// ok is false when the dequeued element is the stop sentinel.
	Get() (item T, ok bool)

	// GetContext is Get bounded by ctx.
	GetContext(ctx context.Context) (item T, ok bool, err error)

	// Stop enqueues the stop sentinel with the same backpressure as Put.
	Stop() error

	// StopContext is Stop bounded by ctx.
	StopContext(ctx context.Context) error

	// Len returns the number of queued elements, sentinels included.
	Len() int

	// Destroy releases the queue. See Bounded.Destroy for preconditions.
	Destroy() error
}
