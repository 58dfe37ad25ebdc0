package domain

import (
	"fmt"
	"go/token"
	"log/slog"

	m "opshow.dev/pkg/opshow/internal/model"
)

// Program is a fixed sequence of expressions over declared operands,
// followed by one floating-point constant.
type Program struct {
	Bindings    m.Bindings
	Expressions []m.Expression
	Constant    m.Constant
}

// DefaultProgram returns the operator demonstration: arithmetic, relational,
// logical, bitwise and compound assignment, then PI.
func DefaultProgram() Program {
	return Program{
		Bindings: m.Bindings{
			"a":          5,
			"b":          3,
			"x":          10,
			"y":          20,
			"condition1": 1,
			"condition2": 0,
			"m":          5,
			"n":          3,
			"variable":   10,
		},
		Expressions: []m.Expression{
			binary(m.CategoryArithmetic, "Sum", token.ADD, "a", "b"),
			binary(m.CategoryArithmetic, "Difference", token.SUB, "a", "b"),
			binary(m.CategoryArithmetic, "Product", token.MUL, "a", "b"),
			binary(m.CategoryArithmetic, "Quotient", token.QUO, "a", "b"),
			binary(m.CategoryArithmetic, "Remainder", token.REM, "a", "b"),

			binary(m.CategoryRelational, "Is x equal to y?", token.EQL, "x", "y"),
			binary(m.CategoryRelational, "Is x not equal to y?", token.NEQ, "x", "y"),
			binary(m.CategoryRelational, "Is x less than y?", token.LSS, "x", "y"),
			binary(m.CategoryRelational, "Is x greater than y?", token.GTR, "x", "y"),
			binary(m.CategoryRelational, "Is x less than or equal to y?", token.LEQ, "x", "y"),
			binary(m.CategoryRelational, "Is x greater than or equal to y?", token.GEQ, "x", "y"),

			binary(m.CategoryLogical, "Logical AND", token.LAND, "condition1", "condition2"),
			binary(m.CategoryLogical, "Logical OR", token.LOR, "condition1", "condition2"),
			unary(m.CategoryLogical, "Logical NOT", token.NOT, "condition1"),

			binary(m.CategoryBitwise, "Bitwise AND", token.AND, "m", "n"),
			binary(m.CategoryBitwise, "Bitwise OR", token.OR, "m", "n"),
			binary(m.CategoryBitwise, "Bitwise XOR", token.XOR, "m", "n"),
			unary(m.CategoryBitwise, "Bitwise NOT", token.XOR, "m"),

			{
				Category: m.CategoryAssignment,
				Label:    "Updated variable",
				Op:       token.ADD_ASSIGN,
				Left:     m.Ref("variable"),
				Right:    m.Lit(5),
			},
		},
		Constant: m.Constant{Label: "Value of PI", Name: "PI", Value: 3.14159},
	}
}

func binary(category m.Category, label string, op token.Token, left, right string) m.Expression {
	return m.Expression{Category: category, Label: label, Op: op, Left: m.Ref(left), Right: m.Ref(right)}
}

func unary(category m.Category, label string, op token.Token, operand string) m.Expression {
	return m.Expression{Category: category, Label: label, Op: op, Left: m.Ref(operand), Unary: true}
}

// Run evaluates every expression once, in order, and returns one line per
// result plus the constant line. The program's own bindings are not modified.
func (p Program) Run() ([]m.Line, error) {
	env := p.Bindings.Clone()
	lines := make([]m.Line, 0, len(p.Expressions)+1)

	for _, expr := range p.Expressions {
		value, err := evaluate(env, expr)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", expr.Label, err)
		}

		slog.Debug("evaluated expression", "label", expr.Label, "expression", expr.String(), "value", value)

		lines = append(lines, m.Line{
			Category:   expr.Category,
			Label:      expr.Label,
			Expression: expr.String(),
			Value:      fmt.Sprintf("%d", value),
		})
	}

	lines = append(lines, constantLine(p.Constant))

	return lines, nil
}

// Catalog lists the expressions without evaluating them.
func (p Program) Catalog() []m.Line {
	lines := make([]m.Line, 0, len(p.Expressions)+1)
	for _, expr := range p.Expressions {
		lines = append(lines, m.Line{Category: expr.Category, Label: expr.Label, Expression: expr.String()})
	}

	c := constantLine(p.Constant)
	c.Value = ""

	return append(lines, c)
}

// constantLine formats the constant like C's printf("%f"): six fractional digits.
func constantLine(c m.Constant) m.Line {
	return m.Line{
		Category:   m.CategoryConstant,
		Label:      c.Label,
		Expression: c.Name,
		Value:      fmt.Sprintf("%f", c.Value),
	}
}

func evaluate(env m.Bindings, expr m.Expression) (int32, error) {
	if IsAssignOp(expr.Op) {
		return evaluateAssign(env, expr)
	}

	left, err := resolve(env, expr.Left)
	if err != nil {
		return 0, err
	}

	if expr.Unary {
		return Unary(expr.Op, left)
	}

	right, err := resolve(env, expr.Right)
	if err != nil {
		return 0, err
	}

	return Binary(expr.Op, left, right)
}

func evaluateAssign(env m.Bindings, expr m.Expression) (int32, error) {
	if !expr.Left.IsRef() {
		return 0, fmt.Errorf("assignment to literal %s: %w", expr.Left, ErrUnsupportedOperator)
	}

	target, ok := env[expr.Left.Name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", expr.Left.Name, ErrUnknownOperand)
	}

	right, err := resolve(env, expr.Right)
	if err != nil {
		return 0, err
	}

	if err := Assign(expr.Op, &target, right); err != nil {
		return 0, err
	}

	env[expr.Left.Name] = target

	return target, nil
}

func resolve(env m.Bindings, t m.Term) (int32, error) {
	if !t.IsRef() {
		return t.Literal, nil
	}

	value, ok := env[t.Name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", t.Name, ErrUnknownOperand)
	}

	return value, nil
}
