// Package stream provides a way to construct data processing streams from smaller pieces.
package stream

import (
	"github.com/rprtr258/poolreuse/flow/fun"
	"github.com/rprtr258/poolreuse/flow/slice"
)

// Stream is a finite or infinite stream of values.
type Stream[A any] interface {
	// Next gives either value or nothing if stream has ended.
	Next() fun.Option[A]
}

type mapImpl[A, B any] struct {
	Stream[A]
	f func(A) B
}

func (xs *mapImpl[A, B]) Next() fun.Option[B] {
	return fun.Map(xs.Stream.Next(), xs.f)
}

// Map converts values of the stream.
func Map[A, B any](xs Stream[A], f func(A) B) Stream[B] {
	return &mapImpl[A, B]{xs, f}
}

type indexedImpl[A any] struct {
	Stream[A]
	i int
}

func (xs *indexedImpl[A]) Next() fun.Option[fun.Pair[int, A]] {
	return fun.Map(xs.Stream.Next(), func(a A) fun.Pair[int, A] {
		xs.i++
		return fun.NewPair(xs.i-1, a)
	})
}

// Indexed pairs each element with its position, starting from zero.
func Indexed[A any](xs Stream[A]) Stream[fun.Pair[int, A]] {
	return &indexedImpl[A]{xs, 0}
}

// Sum adds up all elements.
func Sum[A slice.Number](xs Stream[A]) A {
	var zero A
	return Reduce(zero, func(x, y A) A { return x + y }, xs)
}

type chunkedImpl[A any] struct {
	Stream[A]
	chunkSize int
}

func (xs *chunkedImpl[A]) Next() fun.Option[[]A] {
	x := xs.Stream.Next()
	if x.IsNone() {
		return fun.None[[]A]()
	}
	chunk := make([]A, 1, xs.chunkSize)
	chunk[0] = x.Unwrap()
	for len(chunk) < xs.chunkSize {
		x := xs.Stream.Next()
		if x.IsNone() {
			break
		}
		chunk = append(chunk, x.Unwrap())
	}
	return fun.Some(chunk)
}

// Chunked groups elements by n and produces a stream of slices.
// The last chunk may be shorter. n < 1 is treated as 1.
func Chunked[A any](xs Stream[A], n int) Stream[[]A] {
	if n < 1 {
		n = 1
	}
	return &chunkedImpl[A]{xs, n}
}

