package pool

import "sync"

// queue is an unbounded FIFO. Push never blocks, Pop blocks until an element is available.
type queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
	head  int
}

func newQueue[T any]() *queue[T] {
	q := new(queue[T])
	q.cond = sync.NewCond(&q.mu)

	return q
}

func (q *queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) {
		q.cond.Wait()
	}

	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	if q.head == len(q.items) {
		// everything is consumed, so the backing array can be reused from the start
		q.items = q.items[:0]
		q.head = 0
	}

	return item
}

func (q *queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}
