// Package result holds a value-or-error container for calculations run off the caller's goroutine.
package result

import (
	"github.com/pkg/errors"

	"github.com/rprtr258/poolreuse/flow/fun"
)

// Result represents a calculation that yielded either a value of type A or an error.
type Result[A any] fun.Either[A, error]

func either[A any](r Result[A]) fun.Either[A, error] {
	return fun.Either[A, error](r)
}

func Success[A any](a A) Result[A] {
	return Result[A](fun.Left[A, error](a))
}

func Err[A any](err error) Result[A] {
	return Result[A](fun.Right[A](err))
}

// FromGoResult constructs Result from Go value/error pair.
func FromGoResult[A any](a A, err error) Result[A] {
	if err != nil {
		return Err[A](err)
	}
	return Success(a)
}

// Eval runs f and captures its outcome.
// A panic in f is recovered from and represented as an error.
func Eval[A any](f func() (A, error)) (res Result[A]) {
	var err error
	defer func() {
		if err != nil {
			res = Err[A](err)
		}
	}()
	defer RecoverToErrorVar("Eval", &err)
	var a A
	a, err = f()
	return FromGoResult(a, err)
}

func (r Result[A]) IsErr() bool {
	return fun.IsRight(either(r))
}

// Unwrap returns value if present, panics otherwise.
func (r Result[A]) Unwrap() A {
	return Fold(r, fun.Identity[A], func(err error) A { panic(err) })
}

// UnwrapErr returns error if present, panics otherwise.
func (r Result[A]) UnwrapErr() error {
	return Fold(r, func(a A) error { panic(errors.Errorf("not an error: %v", a)) }, fun.Identity[error])
}

// Get converts back to the Go value/error pair.
func (r Result[A]) Get() (A, error) {
	if r.IsErr() {
		var zero A
		return zero, r.UnwrapErr()
	}
	return r.Unwrap(), nil
}

// Map converts the value using a function that cannot fail.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	return Fold(r, fun.Compose(f, Success[B]), Err[B])
}

// FlatMap converts the value using a function that might fail.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	return Fold(r, f, Err[B])
}

func Fold[A, B any](r Result[A], fSuccess func(A) B, fErr func(error) B) B {
	return fun.Fold(either(r), fSuccess, fErr)
}

