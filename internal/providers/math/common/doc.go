// Package common provides the numeric value type shared by every math module.
//
// A Value is either an integer or a floating-point number. It is produced by
// ParseToken (user text) or by the constructors Int and Float, and it is
// immutable once created.
//
// Arithmetic follows the rules users of a desk calculator expect:
//   - int op int stays int for +, -, *, // and %, and for ** with a
//     non-negative exponent
//   - true division / always yields a float
//   - any float operand yields a float
//   - int64 overflow promotes the result to float
//   - // floors toward negative infinity and % takes the sign of the divisor
//
// Domain failures are reported as sentinel errors (ErrDivisionByZero,
// ErrComplexResult, ErrOverflow) so callers can render them instead of
// crashing.
//
// Example Usage:
//
//	a, _ := common.ParseToken("10")
//	b, _ := common.ParseToken("4")
//	q, err := common.Div(a, b) // 2.5
package common
