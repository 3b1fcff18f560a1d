package operations

import (
	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
)

// ArithmeticOps handles two-operand arithmetic
type ArithmeticOps struct{}

// Outcome is a result that may be undefined for the given operands
type Outcome struct {
	Value common.Value
	Err   error
}

// Defined reports whether the outcome carries a value
func (o Outcome) Defined() bool {
	return o.Err == nil
}

// ArithmeticReport holds every result computed for a pair of operands
type ArithmeticReport struct {
	A, B common.Value

	Sum        common.Value
	Difference common.Value
	Product    common.Value

	Quotient      Outcome
	Remainder     Outcome
	FloorQuotient Outcome
	Power         Outcome
}

// Compute evaluates all operations on a and b.
// Division-family results are undefined when b is zero; the power result is
// undefined when it has no real, representable value.
func (a *ArithmeticOps) Compute(x, y common.Value) ArithmeticReport {
	report := ArithmeticReport{
		A:          x,
		B:          y,
		Sum:        common.Add(x, y),
		Difference: common.Sub(x, y),
		Product:    common.Mul(x, y),
	}

	if y.IsZero() {
		undefined := Outcome{Err: common.ErrDivisionByZero}
		report.Quotient = undefined
		report.Remainder = undefined
		report.FloorQuotient = undefined
	} else {
		report.Quotient = outcome(common.Div(x, y))
		report.Remainder = outcome(common.Mod(x, y))
		report.FloorQuotient = outcome(common.FloorDiv(x, y))
	}

	report.Power = outcome(common.Pow(x, y))
	return report
}

func outcome(v common.Value, err error) Outcome {
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Value: v}
}
