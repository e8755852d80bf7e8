package stream

// functions to make something from Stream that is not Stream

// ForEach invokes a simple function for each element of the stream.
func ForEach[A any](xs Stream[A], f func(A)) {
	for x := xs.Next(); x.IsSome(); x = xs.Next() {
		f(x.Unwrap())
	}
}

// Reduce folds the stream into a single value, left to right.
func Reduce[A, B any](start A, op func(A, B) A, xs Stream[B]) A {
	ForEach(xs, func(b B) { start = op(start, b) })
	return start
}
