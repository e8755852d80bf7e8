package pool

import (
	"sync"

	"github.com/rprtr258/poolreuse/flow/result"
)

// NativePool runs tasks on size goroutines reading from a shared channel.
type NativePool struct {
	options
	size    int
	tasks   chan func()
	wg      sync.WaitGroup
	stopped chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewNative starts size workers.
func NewNative(size int, opts ...Option) (*NativePool, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	p := &NativePool{
		options: newOptions(Native, size, opts),
		size:    size,
		tasks:   make(chan func()),
		stopped: make(chan struct{}),
	}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	p.log.Debug("pool started")
	return p, nil
}

func (p *NativePool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		run(task)
	}
}

func run(task func()) {
	defer result.RecoverToLog("pool.worker")
	task()
}

func (p *NativePool) Go(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrShutdown
	}
	p.tasks <- task
	return nil
}

func (p *NativePool) Size() int {
	return p.size
}

func (p *NativePool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
	go func() {
		p.wg.Wait()
		p.log.Debug("pool shut down")
		close(p.stopped)
	}()
}

func (p *NativePool) Shutdown() {
	p.Close()
	<-p.stopped
}

func (p *NativePool) IsShutdown() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}
