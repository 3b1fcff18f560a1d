// Package expression evaluates restricted arithmetic expressions.
//
// Input is limited to digits, '.', '+', '-', '*', '/', '%', spaces and
// parentheses. Validate rejects anything else before a single token is read.
// The evaluator understands numeric literals and a fixed operator set only;
// there are no identifiers, function calls or variables.
//
// Grammar (lowest to highest precedence):
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/' | '//' | '%') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('**' unary)?
//	primary := NUMBER | '(' expr ')'
//
// Exponentiation is right-associative and binds tighter than a unary minus
// on its left, so "-2 ** 2" is -4 and "2 ** -1" is 0.5. True division always
// yields a float; every other operator keeps integer results integral.
//
// Example Usage:
//
//	ev := expression.New(expression.Options{})
//	v, err := ev.Evaluate("(3 + 4) * 2 - 10 / 5") // 12.0
package expression
