package common

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		tests := []struct {
			input string
			want  int64
		}{
			{"0", 0},
			{"42", 42},
			{"-7", -7},
			{"+5", 5},
			{"  12  ", 12},
		}
		for _, tt := range tests {
			v, err := ParseToken(tt.input)
			require.NoError(t, err, tt.input)
			assert.True(t, v.IsInt(), tt.input)
			got, ok := v.Int64()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("floats", func(t *testing.T) {
		tests := []struct {
			input string
			want  float64
		}{
			{"3.14", 3.14},
			{"5.0", 5.0},
			{".5", 0.5},
			{"-2.5", -2.5},
			{"1e3", 1000},
			{"2.5E-2", 0.025},
		}
		for _, tt := range tests {
			v, err := ParseToken(tt.input)
			require.NoError(t, err, tt.input)
			assert.Equal(t, KindFloat, v.Kind(), tt.input)
			assert.Equal(t, tt.want, v.Float64())
		}
	})

	t.Run("integer beyond int64 becomes float", func(t *testing.T) {
		v, err := ParseToken("123456789012345678901234")
		require.NoError(t, err)
		assert.False(t, v.IsInt())
		assert.InDelta(t, 1.2345678901234568e23, v.Float64(), 1e9)
	})

	t.Run("rejects non-numbers", func(t *testing.T) {
		for _, input := range []string{"", "   ", "abc", "1,5", "12a", "done", "nan", "inf", "Infinity", "0x1p-2", "1_000", "--1"} {
			_, err := ParseToken(input)
			assert.ErrorIs(t, err, ErrNotANumber, input)
		}
	})
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Int(10), "10"},
		{Int(-3), "-3"},
		{Float(2), "2.0"},
		{Float(12), "12.0"},
		{Float(0.5), "0.5"},
		{Float(-0.25), "-0.25"},
		{Float(1e16), "1e+16"},
		{Float(1.5e-5), "1.5e-05"},
		{Float(0), "0.0"},
		{Float(gomath.Inf(1)), "inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String())
	}
}

func TestFormatSignificant(t *testing.T) {
	assert.Equal(t, "2", FormatSignificant(2.0, 6))
	assert.Equal(t, "3.33333", FormatSignificant(10.0/3, 6))
	assert.Equal(t, "100000", FormatSignificant(100000, 6))
	assert.Equal(t, "1e+06", FormatSignificant(1e6, 6))
	assert.Equal(t, "33.33", FormatSignificant(100.0/3, 4))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", Int(1).TypeName())
	assert.Equal(t, "float", Float(1).TypeName())
}

func TestEqual(t *testing.T) {
	assert.True(t, Int(2).Equal(Float(2)))
	assert.False(t, Int(2).Equal(Int(3)))
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber(1.5, "x"))
	assert.Error(t, ValidateNumber(gomath.NaN(), "x"))
	assert.Error(t, ValidateNumber(gomath.Inf(-1), "x"))
	assert.Error(t, ValidateValues([]Value{Int(1), Float(gomath.Inf(1))}, "numbers"))
}

func TestMathOpsValidateOperands(t *testing.T) {
	var nilOps *MathOps
	for _, ops := range []*MathOps{{}, nilOps} {
		assert.NoError(t, ops.ValidateOperands([]string{"x", "y"}, Int(1), Float(2.5)))

		err := ops.ValidateOperands([]string{"x", "y"}, Int(1), Float(gomath.NaN()))
		assert.EqualError(t, err, "y is NaN")

		// Unnamed operands are numbered
		err = ops.ValidateOperands(nil, Float(gomath.Inf(1)))
		assert.EqualError(t, err, "operand 1 is infinite")

		assert.EqualError(t, ops.ValidateValues([]Value{Int(3), Float(gomath.Inf(-1))}, "dataset"), "dataset[1] is infinite")
	}
}
