package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/GriffinCanCode/calcshell/internal/console"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/expression"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/operations"
	"github.com/GriffinCanCode/calcshell/internal/shared/types"
	"go.uber.org/zap"
)

// Significant digits used when rendering float results
const (
	arithmeticDigits = 6
	percentDigits    = 4
	statsDigits      = 6
)

// DefaultModules returns the standard calculator modules in menu order
func DefaultModules() []Module {
	return []Module{
		&ArithmeticModule{},
		&PercentageModule{},
		&StatisticsModule{},
		&ExpressionModule{},
	}
}

// ArithmeticModule applies every binary operator to two numbers
type ArithmeticModule struct{}

func (m *ArithmeticModule) Definition() types.Module {
	return types.Module{Key: "1", Name: "Arithmetic", Description: "A+B, A-B, A*B, A/B, A%B"}
}

func (m *ArithmeticModule) Run(ctx context.Context, env *Env) error {
	p := env.Prompter

	p.Println()
	p.Println(env.Theme.Title("Arithmetic Calculator"))

	a, err := p.Number("  Enter first number  (A): ")
	if err != nil {
		return err
	}
	b, err := p.Number("  Enter second number (B): ")
	if err != nil {
		return err
	}

	report := env.Math.Arithmetic(a, b)

	p.Printf("\n  A = %s  (%s)\n", a, a.TypeName())
	p.Printf("  B = %s  (%s)\n\n", b, b.TypeName())

	p.Println(env.Theme.Box(
		resultRow("A + B", report.Sum.String()),
		resultRow("A - B", report.Difference.String()),
		resultRow("A * B", report.Product.String()),
		resultRow("A / B", quotientText(report.Quotient, arithmeticDigits)),
		resultRow("A % B", quotientText(report.Remainder, 0)),
		resultRow("A // B", quotientText(report.FloorQuotient, 0)),
		resultRow("A ** B", powerText(report.Power)),
	))

	for _, o := range []operations.Outcome{report.Quotient, report.Power} {
		if !o.Defined() {
			recordDomainError(env, "arithmetic", o.Err)
		}
	}
	return nil
}

// PercentageModule offers the three percentage computations
type PercentageModule struct{}

func (m *PercentageModule) Definition() types.Module {
	return types.Module{Key: "2", Name: "Percentage", Description: "X% of Y, change, ratio"}
}

func (m *PercentageModule) Run(ctx context.Context, env *Env) error {
	p := env.Prompter

	p.Println()
	p.Println(env.Theme.Title("Percentage Calculator"))
	p.Println("  [1] X % of Y")
	p.Println("  [2] What % is X of Y?")
	p.Println("  [3] Percentage change (old → new)")

	choice, err := p.ReadLine("  Choose (1/2/3): ")
	if err != nil && !errors.Is(err, console.ErrLineTooLong) {
		return err
	}

	switch choice {
	case "1":
		x, y, err := readPair(env, "  Enter X (percent): ", "  Enter Y (total):   ")
		if err != nil {
			return err
		}
		result := env.Math.PortionOf(x, y)
		p.Printf("\n  %s%% of %s  =  %s\n", x, y, common.FormatSignificant(result, percentDigits))

	case "2":
		x, y, err := readPair(env, "  Enter X (part):  ", "  Enter Y (total): ")
		if err != nil {
			return err
		}
		ratio, err := env.Math.RatioOf(x, y)
		if err != nil {
			recordDomainError(env, "percentage", err)
			p.Error(sentence(err))
			return nil
		}
		p.Printf("\n  %s is %s%% of %s\n", x, common.FormatSignificant(ratio, percentDigits), y)

	case "3":
		before, after, err := readPair(env, "  Enter old value: ", "  Enter new value: ")
		if err != nil {
			return err
		}
		change, err := env.Math.Change(before, after)
		if err != nil {
			recordDomainError(env, "percentage", err)
			p.Error(sentence(err))
			return nil
		}
		p.Printf("\n  Change: %s%% %s  (%s → %s)\n",
			common.FormatSignificant(change.Percent, percentDigits), change.Direction, change.Old, change.New)

	default:
		env.Logger.Debug("Invalid percentage choice", zap.String("choice", choice))
		p.Error("invalid choice")
	}
	return nil
}

// StatisticsModule summarizes a user-entered dataset
type StatisticsModule struct{}

func (m *StatisticsModule) Definition() types.Module {
	return types.Module{Key: "3", Name: "Statistics", Description: "mean, median, mode, avg"}
}

func (m *StatisticsModule) Run(ctx context.Context, env *Env) error {
	p := env.Prompter

	p.Println()
	p.Println(env.Theme.Title("Statistical Calculator"))

	dataset, err := p.Dataset()
	if err != nil {
		return err
	}

	summary, err := env.Math.Describe(dataset)
	if err != nil {
		recordDomainError(env, "statistics", err)
		p.Error(sentence(err))
		return nil
	}

	p.Printf("\n  Dataset : %s\n", listText(summary.Values))
	p.Printf("  Sorted  : %s\n", listText(summary.Sorted))
	p.Printf("  Count   : %d\n\n", summary.Count)

	p.Println(env.Theme.Box(
		statRow("Sum", summary.Sum.String()),
		statRow("Average", common.FormatSignificant(summary.Average, statsDigits)),
		statRow("Mean", common.FormatSignificant(summary.Mean, statsDigits)),
		statRow("Median", common.FormatSignificant(summary.Median, statsDigits)),
		statRow("Mode", listText(summary.Modes)),
	))

	if !summary.SharesDefined {
		p.Println("\n  (Sum is 0, cannot compute percentages)")
		return nil
	}

	p.Printf("\n  Percentage of total (sum = %s):\n", summary.Sum)
	for _, share := range summary.Shares {
		p.Printf("    %10s  →  %6.2f%%  %s\n", share.Value, share.Percent, env.Theme.Bar(share.Bar))
	}
	return nil
}

// ExpressionModule evaluates one restricted arithmetic expression
type ExpressionModule struct{}

func (m *ExpressionModule) Definition() types.Module {
	return types.Module{Key: "4", Name: "Expression", Description: "custom math expression"}
}

func (m *ExpressionModule) Run(ctx context.Context, env *Env) error {
	p := env.Prompter

	p.Println()
	p.Println(env.Theme.Title("Expression Evaluator"))
	p.Println("  Supports: + - * / // ** % and parentheses")
	p.Println("  Example : (3 + 4) * 2 - 10 / 5")
	p.Println()

	input, err := p.ReadLine("  Enter expression: ")
	if errors.Is(err, console.ErrLineTooLong) {
		// Reported like any expression over the evaluator's length limit
		err = expression.ErrInputTooLong
	} else if err != nil {
		return err
	}

	var result common.Value
	if err == nil {
		result, err = env.Math.Evaluate(input)
	}
	if err != nil {
		recordDomainError(env, "expression", err)
		switch {
		case errors.Is(err, expression.ErrInvalidCharacters), errors.Is(err, common.ErrDivisionByZero):
			p.Error(sentence(err))
		default:
			p.Error("error: " + err.Error())
		}
		return nil
	}

	p.Printf("\n  %s  =  %s\n", input, result)
	return nil
}

func readPair(env *Env, firstPrompt, secondPrompt string) (common.Value, common.Value, error) {
	x, err := env.Prompter.Number(firstPrompt)
	if err != nil {
		return common.Value{}, common.Value{}, err
	}
	y, err := env.Prompter.Number(secondPrompt)
	if err != nil {
		return common.Value{}, common.Value{}, err
	}
	return x, y, nil
}

// resultRow aligns arithmetic rows: "A + B  =  13", "A // B =  3"
func resultRow(label, value string) string {
	return fmt.Sprintf("%-6s =  %s", label, value)
}

func statRow(label, value string) string {
	return fmt.Sprintf("%-7s =  %s", label, value)
}

// quotientText renders a division-family outcome; digits 0 keeps the exact form
func quotientText(o operations.Outcome, digits int) string {
	if !o.Defined() {
		if errors.Is(o.Err, common.ErrDivisionByZero) {
			return "undefined (division by zero)"
		}
		return "error: " + o.Err.Error()
	}
	if digits > 0 {
		return o.Value.Format(digits)
	}
	return o.Value.String()
}

func powerText(o operations.Outcome) string {
	if !o.Defined() {
		return "error: " + o.Err.Error()
	}
	return o.Value.Format(arithmeticDigits)
}

// listText renders values like a list literal: [1, 2.5, 3]
func listText(values []common.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sentence capitalizes an error message and ends it with a period
func sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "."
}

func recordDomainError(env *Env, module string, err error) {
	kind := errorKind(err)
	env.Metrics.RecordDomainError(module, kind)
	env.Logger.Debug("Domain error", zap.String("kind", kind), zap.Error(err))
}

// errorKind maps an error to a low-cardinality metric label
func errorKind(err error) string {
	var syntaxErr *expression.SyntaxError
	switch {
	case errors.Is(err, common.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, common.ErrComplexResult):
		return "complex_result"
	case errors.Is(err, common.ErrOverflow):
		return "overflow"
	case errors.Is(err, operations.ErrZeroTotal):
		return "zero_total"
	case errors.Is(err, operations.ErrZeroBase):
		return "zero_base"
	case errors.Is(err, expression.ErrInvalidCharacters):
		return "invalid_characters"
	case errors.Is(err, expression.ErrEmptyExpression):
		return "empty_expression"
	case errors.Is(err, expression.ErrInputTooLong), errors.Is(err, expression.ErrTooDeep):
		return "limit_exceeded"
	case errors.As(err, &syntaxErr):
		return "syntax"
	default:
		return "other"
	}
}
