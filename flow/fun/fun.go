package fun

func Identity[A any](a A) A {
	return a
}

// Const makes a function that ignores its argument and returns b.
func Const[A, B any](b B) func(A) B {
	return func(A) B { return b }
}

// Compose applies f, then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}
