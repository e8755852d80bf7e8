package fun

// Unit is a type that has only a single value.
type Unit struct{}

// Unit1 is the value of type Unit.
var Unit1 = Unit{}
