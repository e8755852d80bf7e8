package stream

// functions to make Stream from something that is not stream

import (
	"github.com/rprtr258/poolreuse/flow/fun"
)

type sliceImpl[A any] struct {
	data []A
	i    int
}

func (xs *sliceImpl[A]) Next() fun.Option[A] {
	if xs.i == len(xs.data) {
		return fun.None[A]()
	}
	xs.i++
	return fun.Some(xs.data[xs.i-1])
}

// FromSlice constructs a stream from the slice. The slice is not copied.
func FromSlice[A any](xs []A) Stream[A] {
	return &sliceImpl[A]{xs, 0}
}
