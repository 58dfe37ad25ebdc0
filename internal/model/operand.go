// Package model defines the data structures shared by the operator demonstration.
package model

// Bindings maps operand names to their signed 32-bit values.
type Bindings map[string]int32

// Clone returns an independent copy so a run never mutates the declared operands.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for name, value := range b {
		out[name] = value
	}

	return out
}

// Term is one side of an expression: either a named binding or an integer literal.
type Term struct {
	Name    string
	Literal int32
}

// Ref returns a term that reads the binding called name.
func Ref(name string) Term {
	return Term{Name: name}
}

// Lit returns a literal term.
func Lit(value int32) Term {
	return Term{Literal: value}
}

// IsRef reports whether the term names a binding.
func (t Term) IsRef() bool {
	return t.Name != ""
}

// Constant is a read-only floating-point value printed as-is.
type Constant struct {
	Label string
	Name  string
	Value float64
}
