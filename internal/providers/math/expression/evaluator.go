package expression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"go.uber.org/zap"
)

var (
	ErrInvalidCharacters = errors.New("expression contains invalid characters")
	ErrEmptyExpression   = errors.New("expression is empty")
	ErrInputTooLong      = errors.New("expression is too long")
	ErrTooDeep           = errors.New("expression is nested too deeply")
)

// AllowedCharacters is the complete input alphabet
const AllowedCharacters = "0123456789.+-*/% ()"

const (
	DefaultMaxInputLength = 1024
	DefaultMaxDepth       = 64
)

// Options configures evaluator limits
type Options struct {
	MaxInputLength int
	MaxDepth       int
	Logger         *zap.Logger
}

// Evaluator evaluates restricted arithmetic expressions
type Evaluator struct {
	options Options
	logger  *zap.Logger
}

// New creates an evaluator, filling unset options with defaults
func New(opts Options) *Evaluator {
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Evaluator{
		options: opts,
		logger:  opts.Logger.Named("expression"),
	}
}

// Validate checks that every character belongs to AllowedCharacters.
// Multi-character operators such as ** and // pass because each of their
// characters is allowed.
func Validate(input string) error {
	for _, r := range input {
		if !strings.ContainsRune(AllowedCharacters, r) {
			return ErrInvalidCharacters
		}
	}
	return nil
}

// Evaluate validates and evaluates input.
// Arithmetic failures wrap the common domain errors; malformed input returns
// a *SyntaxError.
func (e *Evaluator) Evaluate(input string) (common.Value, error) {
	if err := Validate(input); err != nil {
		return common.Value{}, err
	}
	if len(input) > e.options.MaxInputLength {
		return common.Value{}, fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(input), e.options.MaxInputLength)
	}
	if strings.TrimSpace(input) == "" {
		return common.Value{}, ErrEmptyExpression
	}

	v, err := newParser(input, e.options.MaxDepth).parse()
	if err != nil {
		e.logger.Debug("Expression evaluation failed",
			zap.String("expression", input),
			zap.Error(err),
		)
		return common.Value{}, err
	}

	e.logger.Debug("Expression evaluated",
		zap.String("expression", input),
		zap.String("result", v.String()),
	)
	return v, nil
}
