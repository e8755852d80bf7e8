package fun

// Either is either A value or B value.
type Either[A, B any] struct {
	left  *A
	right *B
}

// Fold pattern matches Either with two given handlers.
func Fold[A, B, C any](x Either[A, B], fLeft func(A) C, fRight func(B) C) C {
	if x.left != nil {
		return fLeft(*x.left)
	}
	return fRight(*x.right)
}

func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{&a, nil}
}

func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{nil, &b}
}

func IsLeft[A, B any](x Either[A, B]) bool {
	return Fold(x, Const[A](true), Const[B](false))
}

func IsRight[A, B any](x Either[A, B]) bool {
	return !IsLeft(x)
}

// Option is a value that might be absent.
type Option[A any] Either[A, Unit]

func None[A any]() Option[A] {
	return Option[A](Right[A](Unit1))
}

func Some[A any](a A) Option[A] {
	return Option[A](Left[A, Unit](a))
}

func (x Option[A]) IsNone() bool {
	return IsRight(Either[A, Unit](x))
}

func (x Option[A]) IsSome() bool {
	return IsLeft(Either[A, Unit](x))
}

// Unwrap returns the value, panics on None.
func (x Option[A]) Unwrap() A {
	return *x.left
}

func FoldOption[A, B any](x Option[A], fSome func(A) B, fNone func() B) B {
	return Fold(
		Either[A, Unit](x),
		fSome,
		func(Unit) B { return fNone() },
	)
}

// Map converts the value of Option if present.
func Map[A, B any](x Option[A], f func(A) B) Option[B] {
	return FoldOption(x, Compose(f, Some[B]), None[B])
}
