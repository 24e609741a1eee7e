package queue

import (
	"context"
	"sync"

	ring "github.com/eapache/queue"
	"github.com/pkg/errors"
)

var (
	_ Queue[int]         = (*Bounded[int])(nil)
	_ BlockingQueue[int] = (*Bounded[int])(nil)
)

// node carries one value through the queue. A node with stop set is the
// sentinel enqueued by Stop and carries no value.
type node[T any] struct {
	value T
	stop  bool
}

// Bounded is a blocking multiple-producer multiple-consumer FIFO with a fixed
// capacity.
//
// Producers block in Put while the queue is full; consumers block in Get while
// it is empty. Values are delivered in the order producers acquired the lock,
// each to exactly one consumer. The queue never copies or inspects values.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	nodes     *ring.Queue // of *node[T]
	capacity  int
	load      int
	destroyed bool

	// goroutines currently parked in Put/Stop and Get
	putWaiters int
	getWaiters int
}

// New creates an empty queue holding at most capacity elements.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d must be positive", capacity)
	}
	if capacity > MaxCapacity {
		return nil, errors.Wrapf(ErrAllocationFailure, "capacity %d exceeds %d", capacity, MaxCapacity)
	}

	q := &Bounded[T]{
		nodes:    ring.New(),
		capacity: capacity,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q, nil
}

// Destroy marks the queue unusable. Later Put, Stop and Enqueue calls fail
// with ErrInvalidArgument.
//
// The caller must ensure the queue is quiescent: no goroutine is blocked in
// Put, Get or Stop and no further calls are in flight. Elements still queued
// are not drained. Destroying a queue with blocked callers is a contract
// violation and its outcome is undefined.
func (q *Bounded[T]) Destroy() error {
	if q == nil {
		return errors.Wrap(ErrInvalidArgument, "destroy nil queue")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed {
		return errors.Wrap(ErrInvalidArgument, "queue already destroyed")
	}
	q.destroyed = true
	return nil
}

// Put appends v at the tail, blocking while the queue is full.
// It returns only once v is visible to a subsequent Get.
func (q *Bounded[T]) Put(v T) error {
	return q.PutContext(context.Background(), v)
}

// PutContext is like Put but gives up when ctx is done, returning ctx.Err().
// The value is not enqueued in that case.
func (q *Bounded[T]) PutContext(ctx context.Context, v T) error {
	return q.put(ctx, &node[T]{value: v})
}

// Stop enqueues the stop sentinel. A consumer whose Get returns ok == false
// has received it. Stop blocks while the queue is full, exactly like Put.
func (q *Bounded[T]) Stop() error {
	return q.StopContext(context.Background())
}

// StopContext is like Stop but gives up when ctx is done.
func (q *Bounded[T]) StopContext(ctx context.Context) error {
	return q.put(ctx, &node[T]{stop: true})
}

func (q *Bounded[T]) put(ctx context.Context, n *node[T]) error {
	if q == nil {
		return errors.Wrap(ErrInvalidArgument, "put on nil queue")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed {
		return errors.Wrap(ErrInvalidArgument, "put on destroyed queue")
	}

	q.putWaiters++
	err := q.wait(ctx, q.notFull, q.full)
	q.putWaiters--
	if err != nil {
		return err
	}

	q.push(n)
	return nil
}

// Get removes and returns the oldest value, blocking while the queue is empty.
// ok is false when the removed element is the stop sentinel; v is then the
// zero value. Get panics on a nil queue.
func (q *Bounded[T]) Get() (v T, ok bool) {
	v, ok, _ = q.get(context.Background())
	return v, ok
}

// GetContext is like Get but gives up when ctx is done, returning ctx.Err()
// and leaving the queue unchanged.
func (q *Bounded[T]) GetContext(ctx context.Context) (v T, ok bool, err error) {
	if q == nil {
		return v, false, errors.Wrap(ErrInvalidArgument, "get on nil queue")
	}
	return q.get(ctx)
}

func (q *Bounded[T]) get(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}

	q.mu.Lock()
	q.getWaiters++
	err := q.wait(ctx, q.notEmpty, q.empty)
	q.getWaiters--
	if err != nil {
		q.mu.Unlock()
		return zero, false, err
	}
	n := q.pop()
	q.mu.Unlock()

	if n.stop {
		return zero, false, nil
	}
	return n.value, true, nil
}

// Enqueue appends v without blocking. It returns false if the queue is full
// or destroyed.
func (q *Bounded[T]) Enqueue(v T) bool {
	n := &node[T]{value: v}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.destroyed || q.full() {
		return false
	}
	q.push(n)
	return true
}

// Dequeue removes the head value without blocking. It returns false if the
// queue is empty or if the head is the stop sentinel, which stays queued for
// a blocking Get.
func (q *Bounded[T]) Dequeue() (T, bool) {
	var zero T

	q.mu.Lock()
	if q.empty() || q.nodes.Peek().(*node[T]).stop {
		q.mu.Unlock()
		return zero, false
	}
	n := q.pop()
	q.mu.Unlock()

	return n.value, true
}

// Len returns the number of queued elements, sentinels included.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load
}

// Capacity returns the fixed maximum number of queued elements.
func (q *Bounded[T]) Capacity() uint64 { return uint64(q.capacity) }

// Waiters reports how many goroutines are blocked in Put/Stop and in Get.
func (q *Bounded[T]) Waiters() (producers, consumers int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.putWaiters, q.getWaiters
}

func (q *Bounded[T]) full() bool  { return q.load >= q.capacity }
func (q *Bounded[T]) empty() bool { return q.load == 0 }

// push appends n. q.mu must be held and the queue must not be full.
func (q *Bounded[T]) push(n *node[T]) {
	wasEmpty := q.load == 0
	q.nodes.Add(n)
	q.load++
	if wasEmpty {
		q.notEmpty.Broadcast()
	}
}

// pop removes the head node. q.mu must be held and the queue must not be empty.
func (q *Bounded[T]) pop() *node[T] {
	n := q.nodes.Remove().(*node[T])
	wasFull := q.load == q.capacity
	q.load--
	if wasFull {
		q.notFull.Broadcast()
	}
	return n
}

// wait blocks on cond until blocked reports false or ctx is done.
// q.mu must be held; it is released while parked.
func (q *Bounded[T]) wait(ctx context.Context, cond *sync.Cond, blocked func() bool) error {
	if !blocked() {
		return nil
	}

	// Background and TODO contexts never end; skip the wake-up hook.
	if ctx.Done() == nil {
		for blocked() {
			cond.Wait()
		}
		return nil
	}

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	for blocked() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cond.Wait()
	}
	return nil
}
