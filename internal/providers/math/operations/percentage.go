package operations

import (
	"errors"
	gomath "math"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
)

var (
	// ErrZeroTotal is returned when a ratio has a zero denominator
	ErrZeroTotal = errors.New("cannot divide by zero")
	// ErrZeroBase is returned when a percentage change starts from zero
	ErrZeroBase = errors.New("old value cannot be zero")
)

// Direction labels a percentage change
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// PercentChange is the relative change between two values
type PercentChange struct {
	Old, New  common.Value
	Percent   float64
	Direction Direction
}

// PercentageOps handles percentage computations
type PercentageOps struct {
	*common.MathOps
}

// PortionOf returns x percent of y
func (p *PercentageOps) PortionOf(x, y common.Value) float64 {
	return (x.Float64() / 100) * y.Float64()
}

// RatioOf returns what percentage x is of y
func (p *PercentageOps) RatioOf(x, y common.Value) (float64, error) {
	if err := p.ValidateOperands([]string{"x", "y"}, x, y); err != nil {
		return 0, err
	}
	if y.IsZero() {
		return 0, ErrZeroTotal
	}
	return (x.Float64() / y.Float64()) * 100, nil
}

// Change returns the percentage change from old to new, relative to |old|
func (p *PercentageOps) Change(old, new common.Value) (PercentChange, error) {
	if err := p.ValidateOperands([]string{"old value", "new value"}, old, new); err != nil {
		return PercentChange{}, err
	}
	if old.IsZero() {
		return PercentChange{}, ErrZeroBase
	}

	base := old.Float64()
	percent := ((new.Float64() - base) / gomath.Abs(base)) * 100

	direction := DirectionIncrease
	if percent < 0 {
		direction = DirectionDecrease
	}

	return PercentChange{
		Old:       old,
		New:       new,
		Percent:   percent,
		Direction: direction,
	}, nil
}
