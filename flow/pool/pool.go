// Package pool provides fixed-size worker pools that run submitted tasks concurrently.
package pool

import (
	"github.com/pkg/errors"
)

var (
	ErrShutdown    = errors.New("pool is shut down")
	ErrInvalidSize = errors.New("pool size must be positive")
)

// Pool is a fixed set of workers capable of running tasks in parallel.
type Pool interface {
	// Go hands task to a worker, blocking while all workers are busy.
	// Returns ErrShutdown once the pool stopped accepting work.
	Go(task func()) error
	// Size is the number of workers.
	Size() int
	// Close stops accepting work without waiting for running tasks.
	// Workers exit once their current task returns.
	Close()
	// Shutdown is Close followed by waiting for running tasks.
	// Both may be called any number of times.
	Shutdown()
	IsShutdown() bool
}

// Backend names a Pool implementation.
type Backend string

const (
	Native Backend = "native"
	Pond   Backend = "pond"
)

var Backends = []Backend{Native, Pond}

// New creates a pool of size workers using the given backend.
func New(backend Backend, size int, opts ...Option) (Pool, error) {
	var (
		p   Pool
		err error
	)
	switch backend {
	case Native:
		p, err = NewNative(size, opts...)
	case Pond:
		p, err = NewPond(size, opts...)
	default:
		return nil, errors.Errorf("unknown pool backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", errors.Errorf("unknown pool backend %q, expected one of %v", name, Backends)
}
