package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseToken converts user text into a Value.
//
// Integer text becomes an int; anything else that reads as a finite decimal
// number becomes a float. Integers too large for int64 are accepted as
// floats. Everything else, including nan, inf and hex-float notation, fails
// with ErrNotANumber.
func ParseToken(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("empty input: %w", ErrNotANumber)
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int(i), nil
	}
	if !errors.Is(err, strconv.ErrSyntax) && !errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}

	if !isDecimalText(s) {
		return Value{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return Float(f), nil
}

// isDecimalText accepts sign, digits, one decimal point and an exponent
func isDecimalText(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
