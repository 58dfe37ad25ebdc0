package domain

import (
	"go/token"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		op   token.Token
		x, y int32
		want int32
	}{
		{"sum", token.ADD, 5, 3, 8},
		{"difference", token.SUB, 5, 3, 2},
		{"product", token.MUL, 5, 3, 15},
		{"quotient truncates", token.QUO, 5, 3, 1},
		{"negative quotient truncates toward zero", token.QUO, -5, 3, -1},
		{"remainder", token.REM, 5, 3, 2},
		{"negative remainder keeps dividend sign", token.REM, -5, 3, -2},
		{"equal false", token.EQL, 10, 20, 0},
		{"equal true", token.EQL, 7, 7, 1},
		{"not equal", token.NEQ, 10, 20, 1},
		{"less", token.LSS, 10, 20, 1},
		{"greater", token.GTR, 10, 20, 0},
		{"less or equal", token.LEQ, 10, 20, 1},
		{"greater or equal", token.GEQ, 10, 20, 0},
		{"logical and", token.LAND, 1, 0, 0},
		{"logical and non-zero operands", token.LAND, 2, -1, 1},
		{"logical or", token.LOR, 1, 0, 1},
		{"logical or both zero", token.LOR, 0, 0, 0},
		{"bitwise and", token.AND, 5, 3, 1},
		{"bitwise or", token.OR, 5, 3, 7},
		{"bitwise xor", token.XOR, 5, 3, 6},
		{"overflow wraps", token.ADD, math.MaxInt32, 1, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Binary(tt.op, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinary_DivisionByZero(t *testing.T) {
	for _, op := range []token.Token{token.QUO, token.REM} {
		t.Run(op.String(), func(t *testing.T) {
			_, err := Binary(op, 5, 0)
			require.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestBinary_Unsupported(t *testing.T) {
	_, err := Binary(token.SHL, 1, 2)
	require.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestUnary(t *testing.T) {
	tests := []struct {
		name string
		op   token.Token
		x    int32
		want int32
	}{
		{"logical not of true", token.NOT, 1, 0},
		{"logical not of false", token.NOT, 0, 1},
		{"logical not of non-one truthy", token.NOT, 42, 0},
		{"complement of 5", token.XOR, 5, -6},
		{"complement of 0", token.XOR, 0, -1},
		{"complement of -1", token.XOR, -1, 0},
		{"negation", token.SUB, 5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unary(tt.op, tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Unary(token.ADD, 1)
	require.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestAssign(t *testing.T) {
	t.Run("add assign stores result", func(t *testing.T) {
		variable := int32(10)
		require.NoError(t, Assign(token.ADD_ASSIGN, &variable, 5))
		assert.Equal(t, int32(15), variable)
	})

	t.Run("xor assign", func(t *testing.T) {
		variable := int32(123)
		require.NoError(t, Assign(token.XOR_ASSIGN, &variable, 0xaa))
		assert.Equal(t, int32(123^0xaa), variable)
	})

	t.Run("failed assignment leaves target untouched", func(t *testing.T) {
		variable := int32(10)
		err := Assign(token.QUO_ASSIGN, &variable, 0)
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.Equal(t, int32(10), variable)
	})

	t.Run("plain assignment token is rejected", func(t *testing.T) {
		variable := int32(10)
		err := Assign(token.ASSIGN, &variable, 5)
		require.ErrorIs(t, err, ErrUnsupportedOperator)
	})
}

func TestIsAssignOp(t *testing.T) {
	assert.True(t, IsAssignOp(token.ADD_ASSIGN))
	assert.True(t, IsAssignOp(token.REM_ASSIGN))
	assert.False(t, IsAssignOp(token.ADD))
	assert.False(t, IsAssignOp(token.DEFINE))
}
