package pool

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	log *log.Entry
}

// Option configures a pool.
type Option func(*options)

// WithLogger sets the logger pools report lifecycle events to.
func WithLogger(l *log.Entry) Option {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(backend Backend, size int, opts []Option) options {
	o := options{log: log.NewEntry(log.StandardLogger())}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.WithFields(log.Fields{
		"backend": backend,
		"workers": size,
	})
	return o
}
