package common

import (
	gomath "math"
)

// Add returns a + b
func Add(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		if s, ok := addInt(a.i, b.i); ok {
			return Int(s)
		}
	}
	return Float(a.Float64() + b.Float64())
}

// Sub returns a - b
func Sub(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		if d, ok := subInt(a.i, b.i); ok {
			return Int(d)
		}
	}
	return Float(a.Float64() - b.Float64())
}

// Mul returns a * b
func Mul(a, b Value) Value {
	if a.IsInt() && b.IsInt() {
		if p, ok := mulInt(a.i, b.i); ok {
			return Int(p)
		}
	}
	return Float(a.Float64() * b.Float64())
}

// Div returns the true quotient a / b, always as a float
func Div(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return Float(a.Float64() / b.Float64()), nil
}

// FloorDiv returns a // b rounded toward negative infinity
func FloorDiv(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}

	if a.IsInt() && b.IsInt() {
		// MinInt64 // -1 does not fit
		if !(a.i == gomath.MinInt64 && b.i == -1) {
			q := a.i / b.i
			if a.i%b.i != 0 && (a.i < 0) != (b.i < 0) {
				q--
			}
			return Int(q), nil
		}
	}

	return Float(floorDivFloat(a.Float64(), b.Float64())), nil
}

// Mod returns the remainder of a // b; the result takes the sign of b
func Mod(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}

	if a.IsInt() && b.IsInt() {
		r := a.i % b.i
		if r != 0 && (r < 0) != (b.i < 0) {
			r += b.i
		}
		return Int(r), nil
	}

	x, y := a.Float64(), b.Float64()
	r := gomath.Mod(x, y)
	if r != 0 {
		if (y < 0) != (r < 0) {
			r += y
		}
	} else {
		r = gomath.Copysign(0, y)
	}
	return Float(r), nil
}

// Pow returns a raised to b
func Pow(a, b Value) (Value, error) {
	if a.IsInt() && b.IsInt() {
		if b.i >= 0 {
			if p, ok := powInt(a.i, b.i); ok {
				return Int(p), nil
			}
		} else if a.i == 0 {
			return Value{}, ErrDivisionByZero
		}
	}

	x, y := a.Float64(), b.Float64()
	if x == 0 && y < 0 {
		return Value{}, ErrDivisionByZero
	}
	if x < 0 && y != gomath.Trunc(y) && !gomath.IsInf(y, 0) {
		return Value{}, ErrComplexResult
	}

	r := gomath.Pow(x, y)
	if gomath.IsInf(r, 0) && !gomath.IsInf(x, 0) && !gomath.IsInf(y, 0) {
		return Value{}, ErrOverflow
	}
	return Float(r), nil
}

// Neg returns -v
func Neg(v Value) Value {
	if v.IsInt() && v.i != gomath.MinInt64 {
		return Int(-v.i)
	}
	return Float(-v.Float64())
}

// Abs returns |v|
func Abs(v Value) Value {
	if v.Float64() < 0 {
		return Neg(v)
	}
	return v
}

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt(a, b int64) (int64, bool) {
	d := a - b
	if (a >= 0 && b < 0 && d < 0) || (a < 0 && b > 0 && d >= 0) {
		return 0, false
	}
	return d, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == gomath.MinInt64) || (b == -1 && a == gomath.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// powInt computes base**exp by squaring, reporting overflow
func powInt(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// floorDivFloat mirrors the usual divmod definition for floats
func floorDivFloat(a, b float64) float64 {
	mod := gomath.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return gomath.Copysign(0, a/b)
	}
	floor := gomath.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
