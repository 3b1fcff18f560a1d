package math

import (
	"testing"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/expression"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathProvider(t *testing.T) {
	provider := NewProvider(Options{})

	t.Run("Arithmetic", func(t *testing.T) {
		r := provider.Arithmetic(common.Int(10), common.Int(0))
		assert.Equal(t, common.Int(10), r.Sum)
		assert.ErrorIs(t, r.Quotient.Err, common.ErrDivisionByZero)
	})

	t.Run("Percentage", func(t *testing.T) {
		assert.Equal(t, 100.0, provider.PortionOf(common.Int(50), common.Int(200)))

		_, err := provider.RatioOf(common.Int(50), common.Int(0))
		assert.ErrorIs(t, err, operations.ErrZeroTotal)

		c, err := provider.Change(common.Int(50), common.Int(75))
		require.NoError(t, err)
		assert.Equal(t, 50.0, c.Percent)
	})

	t.Run("Statistics", func(t *testing.T) {
		s, err := provider.Describe([]common.Value{common.Int(1), common.Int(2), common.Int(2), common.Int(3)})
		require.NoError(t, err)
		assert.Equal(t, 2.0, s.Median)
	})

	t.Run("Expression", func(t *testing.T) {
		v, err := provider.Evaluate("(3 + 4) * 2 - 10 / 5")
		require.NoError(t, err)
		assert.Equal(t, common.Float(12), v)
	})

	t.Run("Expression options are applied", func(t *testing.T) {
		limited := NewProvider(Options{Expression: expression.Options{MaxInputLength: 3}})
		_, err := limited.Evaluate("1 + 2")
		assert.ErrorIs(t, err, expression.ErrInputTooLong)
	})
}
