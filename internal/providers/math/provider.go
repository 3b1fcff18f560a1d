package math

import (
	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/expression"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/operations"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/statistics"
)

// Options configures the math provider
type Options struct {
	Expression expression.Options
}

// Provider implements the calculator's mathematical operations
type Provider struct {
	// Module instances
	arithmetic *operations.ArithmeticOps
	percentage *operations.PercentageOps
	stats      *statistics.StatsOps
	expression *expression.Evaluator
}

// NewProvider creates a modular math provider
func NewProvider(opts Options) *Provider {
	ops := &common.MathOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{},
		percentage: &operations.PercentageOps{MathOps: ops},
		stats:      &statistics.StatsOps{MathOps: ops},
		expression: expression.New(opts.Expression),
	}
}

// Arithmetic computes every two-operand result for a and b
func (m *Provider) Arithmetic(a, b common.Value) operations.ArithmeticReport {
	return m.arithmetic.Compute(a, b)
}

// PortionOf returns x percent of y
func (m *Provider) PortionOf(x, y common.Value) float64 {
	return m.percentage.PortionOf(x, y)
}

// RatioOf returns what percentage x is of y
func (m *Provider) RatioOf(x, y common.Value) (float64, error) {
	return m.percentage.RatioOf(x, y)
}

// Change returns the percentage change from old to new
func (m *Provider) Change(old, new common.Value) (operations.PercentChange, error) {
	return m.percentage.Change(old, new)
}

// Describe summarizes a dataset
func (m *Provider) Describe(dataset []common.Value) (statistics.Summary, error) {
	return m.stats.Describe(dataset)
}

// Evaluate evaluates a restricted arithmetic expression
func (m *Provider) Evaluate(input string) (common.Value, error) {
	return m.expression.Evaluate(input)
}
