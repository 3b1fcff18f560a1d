package common

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// Domain errors shared by the math modules
var (
	ErrNotANumber     = errors.New("not a number")
	ErrDivisionByZero = errors.New("division by zero")
	ErrComplexResult  = errors.New("negative number cannot be raised to a fractional power")
	ErrOverflow       = errors.New("numerical result out of range")
)

// Kind discriminates the two numeric representations
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// Value is an immutable integer or floating-point number
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int creates an integer value
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float creates a floating-point value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Kind returns the numeric representation
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether the value is an integer
func (v Value) IsInt() bool { return v.kind == KindInt }

// Float64 returns the value as float64
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Int64 returns the integer and true for integer values
func (v Value) Int64() (int64, bool) {
	if v.kind == KindInt {
		return v.i, true
	}
	return 0, false
}

// IsZero reports whether the value equals zero
func (v Value) IsZero() bool {
	if v.kind == KindInt {
		return v.i == 0
	}
	return v.f == 0
}

// Equal compares numerically, so Int(2) equals Float(2.0)
func (v Value) Equal(other Value) bool {
	if v.kind == KindInt && other.kind == KindInt {
		return v.i == other.i
	}
	return v.Float64() == other.Float64()
}

// TypeName returns "int" or "float"
func (v Value) TypeName() string {
	if v.kind == KindInt {
		return "int"
	}
	return "float"
}

// String renders the canonical representation: 10, 2.0, 0.5, 1e+16
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return FormatFloat(v.f)
}

// FormatFloat renders a float so it always reads as a float
func FormatFloat(f float64) string {
	switch {
	case gomath.IsNaN(f):
		return "nan"
	case gomath.IsInf(f, 1):
		return "inf"
	case gomath.IsInf(f, -1):
		return "-inf"
	}

	abs := gomath.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatSignificant renders x with at most digits significant digits,
// dropping trailing zeros
func FormatSignificant(x float64, digits int) string {
	switch {
	case gomath.IsNaN(x):
		return "nan"
	case gomath.IsInf(x, 1):
		return "inf"
	case gomath.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'g', digits, 64)
}

// Format renders v with at most digits significant digits
func (v Value) Format(digits int) string {
	return FormatSignificant(v.Float64(), digits)
}

// MathOps provides operand validation shared by the percentage and
// statistics modules. The zero value and a nil pointer are both usable.
type MathOps struct{}

// ValidateNumber checks that a number is finite
func (m *MathOps) ValidateNumber(x float64, name string) error {
	return ValidateNumber(x, name)
}

// ValidateOperands checks named operands in order, stopping at the first
// that is not finite
func (m *MathOps) ValidateOperands(names []string, values ...Value) error {
	for i, v := range values {
		name := fmt.Sprintf("operand %d", i+1)
		if i < len(names) {
			name = names[i]
		}
		if err := m.ValidateNumber(v.Float64(), name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateValues checks every element of a dataset
func (m *MathOps) ValidateValues(values []Value, name string) error {
	return ValidateValues(values, name)
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateValues validates a slice of values
func ValidateValues(values []Value, name string) error {
	for i, v := range values {
		if err := ValidateNumber(v.Float64(), fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// Floats converts values to a float64 slice
func Floats(values []Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Float64()
	}
	return out
}
