package operations

import (
	"testing"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArithmetic() *ArithmeticOps {
	return &ArithmeticOps{}
}

func TestArithmeticCompute(t *testing.T) {
	ops := newArithmetic()

	t.Run("integer operands", func(t *testing.T) {
		r := ops.Compute(common.Int(10), common.Int(3))

		assert.Equal(t, common.Int(13), r.Sum)
		assert.Equal(t, common.Int(7), r.Difference)
		assert.Equal(t, common.Int(30), r.Product)

		require.True(t, r.Quotient.Defined())
		assert.InDelta(t, 3.333333, r.Quotient.Value.Float64(), 1e-6)
		require.True(t, r.Remainder.Defined())
		assert.Equal(t, common.Int(1), r.Remainder.Value)
		require.True(t, r.FloorQuotient.Defined())
		assert.Equal(t, common.Int(3), r.FloorQuotient.Value)
		require.True(t, r.Power.Defined())
		assert.Equal(t, common.Int(1000), r.Power.Value)
	})

	t.Run("division by zero", func(t *testing.T) {
		r := ops.Compute(common.Int(10), common.Int(0))

		assert.Equal(t, common.Int(10), r.Sum)
		assert.Equal(t, common.Int(10), r.Difference)
		assert.Equal(t, common.Int(0), r.Product)

		for _, o := range []Outcome{r.Quotient, r.Remainder, r.FloorQuotient} {
			assert.False(t, o.Defined())
			assert.ErrorIs(t, o.Err, common.ErrDivisionByZero)
		}

		require.True(t, r.Power.Defined())
		assert.Equal(t, common.Int(1), r.Power.Value)
	})

	t.Run("zero float divisor", func(t *testing.T) {
		r := ops.Compute(common.Float(1.5), common.Float(0))
		assert.ErrorIs(t, r.Quotient.Err, common.ErrDivisionByZero)
	})

	t.Run("negative base fractional exponent", func(t *testing.T) {
		r := ops.Compute(common.Int(-8), common.Float(0.5))

		assert.False(t, r.Power.Defined())
		assert.ErrorIs(t, r.Power.Err, common.ErrComplexResult)
		assert.True(t, r.Quotient.Defined())
	})

	t.Run("mixed operands", func(t *testing.T) {
		r := ops.Compute(common.Float(7.5), common.Int(2))

		assert.Equal(t, common.Float(9.5), r.Sum)
		assert.Equal(t, common.Float(3.75), r.Quotient.Value)
		assert.Equal(t, common.Float(1.5), r.Remainder.Value)
		assert.Equal(t, common.Float(3), r.FloorQuotient.Value)
		assert.Equal(t, common.Float(56.25), r.Power.Value)
	})
}
