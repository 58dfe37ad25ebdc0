// Package domain evaluates the operator demonstration and checks its transcript.
package domain

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	// ErrDivisionByZero is returned when / or % is applied with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnsupportedOperator is returned for tokens the evaluator does not handle.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrUnknownOperand is returned when a term names a binding that was never declared.
	ErrUnknownOperand = errors.New("unknown operand")
)

// Binary applies a binary operator with C int semantics: comparisons and
// logical operators yield 0 or 1, division truncates toward zero.
func Binary(op token.Token, x, y int32) (int32, error) {
	switch op {
	case token.ADD:
		return x + y, nil
	case token.SUB:
		return x - y, nil
	case token.MUL:
		return x * y, nil
	case token.QUO:
		if y == 0 {
			return 0, fmt.Errorf("%d %s %d: %w", x, op, y, ErrDivisionByZero)
		}

		return x / y, nil
	case token.REM:
		if y == 0 {
			return 0, fmt.Errorf("%d %s %d: %w", x, op, y, ErrDivisionByZero)
		}

		return x % y, nil
	case token.EQL:
		return boolToInt(x == y), nil
	case token.NEQ:
		return boolToInt(x != y), nil
	case token.LSS:
		return boolToInt(x < y), nil
	case token.GTR:
		return boolToInt(x > y), nil
	case token.LEQ:
		return boolToInt(x <= y), nil
	case token.GEQ:
		return boolToInt(x >= y), nil
	case token.LAND:
		return boolToInt(x != 0 && y != 0), nil
	case token.LOR:
		return boolToInt(x != 0 || y != 0), nil
	case token.AND:
		return x & y, nil
	case token.OR:
		return x | y, nil
	case token.XOR:
		return x ^ y, nil
	}

	return 0, fmt.Errorf("binary %q: %w", op, ErrUnsupportedOperator)
}

// Unary applies a prefix operator. token.XOR is bitwise complement (C's ~).
func Unary(op token.Token, x int32) (int32, error) {
	switch op {
	case token.NOT:
		return boolToInt(x == 0), nil
	case token.XOR:
		return ^x, nil
	case token.SUB:
		return -x, nil
	}

	return 0, fmt.Errorf("unary %q: %w", op, ErrUnsupportedOperator)
}

// Assign applies a compound assignment and stores the result in target.
// target is left untouched on error.
func Assign(op token.Token, target *int32, y int32) error {
	binOp, ok := assignOps[op]
	if !ok {
		return fmt.Errorf("assignment %q: %w", op, ErrUnsupportedOperator)
	}

	result, err := Binary(binOp, *target, y)
	if err != nil {
		return err
	}

	*target = result

	return nil
}

// IsAssignOp reports whether op is a compound assignment the evaluator handles.
func IsAssignOp(op token.Token) bool {
	_, ok := assignOps[op]
	return ok
}

var assignOps = map[token.Token]token.Token{
	token.ADD_ASSIGN: token.ADD,
	token.SUB_ASSIGN: token.SUB,
	token.MUL_ASSIGN: token.MUL,
	token.QUO_ASSIGN: token.QUO,
	token.REM_ASSIGN: token.REM,
	token.AND_ASSIGN: token.AND,
	token.OR_ASSIGN:  token.OR,
	token.XOR_ASSIGN: token.XOR,
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}

	return 0
}
