// Package pool implements a fixed set of workers consuming jobs from a single unbounded
// queue.
package pool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/lattice/logging"
)

var ErrClosed = errors.New("pool is closed")

type Job interface {
	Run()
}

type JobFunc func()

func (j JobFunc) Run() {
	j()
}

type State uint32

const (
	Idle State = iota
	Running
	Exited
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// message is either a job, or a signal to the worker that took it to exit.
type message struct {
	job       Job
	terminate bool
}

type Pool struct {
	queue  *queue[message]
	states []atomic.Uint32
	wg     sync.WaitGroup
	logger logging.Logger

	mu     sync.Mutex
	closed bool
}

// DefaultSize is the number of logical CPUs plus one.
func DefaultSize() int {
	return runtime.NumCPU() + 1
}

// New spawns size workers. It panics if size isn't positive. A nil logger falls back to
// logging.Default().
func New(size int, logger logging.Logger) *Pool {
	if size <= 0 {
		panic(fmt.Sprintf("pool: size must be positive, got %d", size))
	}

	p := &Pool{
		queue:  newQueue[message](),
		states: make([]atomic.Uint32, size),
		logger: logging.OrDefault(logger),
	}

	p.wg.Add(size)
	for i := range size {
		go p.worker(i)
	}

	return p
}

// Submit enqueues the job. It never blocks and never drops a job, unless the pool is
// closed.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.queue.Push(message{job: job})

	return nil
}

// Close enqueues a terminate message per worker behind all the pending jobs and waits
// until every worker exits. Therefore, all the jobs submitted before are completed by the
// time it returns. Subsequent calls only wait.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true

		for range p.states {
			p.queue.Push(message{terminate: true})
		}
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.states)
}

// Pending returns the number of queued messages not yet taken by any worker.
func (p *Pool) Pending() int {
	return p.queue.Len()
}

// States returns a snapshot of the workers' states.
func (p *Pool) States() []State {
	states := make([]State, len(p.states))
	for i := range p.states {
		states[i] = State(p.states[i].Load())
	}

	return states
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		msg := p.queue.Pop()
		if msg.terminate {
			p.states[id].Store(uint32(Exited))
			return
		}

		p.states[id].Store(uint32(Running))
		p.run(id, msg.job)
		p.states[id].Store(uint32(Idle))
	}
}

func (p *Pool) run(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("pool: worker %d recovered from panic: %v", id, r)
		}
	}()

	job.Run()
}
