package model

import (
	"fmt"
	"go/token"
)

// Category groups expressions by the kind of operator they demonstrate.
type Category string

const (
	// CategoryArithmetic covers +, -, *, / and %.
	CategoryArithmetic Category = "arithmetic"
	// CategoryRelational covers ==, !=, <, >, <= and >=.
	CategoryRelational Category = "relational"
	// CategoryLogical covers &&, || and !.
	CategoryLogical Category = "logical"
	// CategoryBitwise covers &, |, ^ and unary complement.
	CategoryBitwise Category = "bitwise"
	// CategoryAssignment covers compound assignment such as +=.
	CategoryAssignment Category = "assignment"
	// CategoryConstant is used for the floating-point constant line.
	CategoryConstant Category = "constant"
)

// Expression is a single operator application in the demonstration.
// Unary expressions leave Right as the zero Term.
type Expression struct {
	Category Category
	Label    string
	Op       token.Token
	Left     Term
	Right    Term
	Unary    bool
}

// String renders the expression in C notation, e.g. "a+b" or "~m".
func (e Expression) String() string {
	if e.Unary {
		return cOperator(e.Op, true) + e.Left.String()
	}

	return e.Left.String() + cOperator(e.Op, false) + e.Right.String()
}

func (t Term) String() string {
	if t.IsRef() {
		return t.Name
	}

	return fmt.Sprintf("%d", t.Literal)
}

// cOperator spells a Go token the way C source does. The only
// difference is unary XOR, which C writes as ~.
func cOperator(op token.Token, unary bool) string {
	if unary && op == token.XOR {
		return "~"
	}

	return op.String()
}

// Line is one evaluated result ready for display.
type Line struct {
	Category   Category `yaml:"category"`
	Label      string   `yaml:"label"`
	Expression string   `yaml:"expression"`
	Value      string   `yaml:"value,omitempty"`
}
