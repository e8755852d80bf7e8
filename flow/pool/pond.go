package pool

import (
	"sync"

	"github.com/alitto/pond"
)

// PondPool is a Pool backed by a pond worker pool with all workers started upfront.
type PondPool struct {
	options
	size    int
	wp      *pond.WorkerPool
	stopped chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewPond(size int, opts ...Option) (*PondPool, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	p := &PondPool{
		options: newOptions(Pond, size, opts),
		size:    size,
		stopped: make(chan struct{}),
	}
	p.wp = pond.New(size, 0,
		pond.MinWorkers(size),
		pond.PanicHandler(func(v interface{}) {
			p.log.Errorf("task panicked: %+v", v)
		}),
	)
	p.log.Debug("pool started")
	return p, nil
}

func (p *PondPool) Go(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrShutdown
	}
	p.wp.Submit(task)
	return nil
}

func (p *PondPool) Size() int {
	return p.size
}

func (p *PondPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	// StopAndWait lets accepted tasks finish; it runs off the caller's goroutine
	go func() {
		p.wp.StopAndWait()
		p.log.WithField("completed", p.wp.CompletedTasks()).Debug("pool shut down")
		close(p.stopped)
	}()
}

func (p *PondPool) Shutdown() {
	p.Close()
	<-p.stopped
}

func (p *PondPool) IsShutdown() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}
