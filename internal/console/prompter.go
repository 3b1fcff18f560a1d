package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/calcshell/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
)

// Sentinel ends dataset collection (case-insensitive)
const Sentinel = "done"

// DefaultMaxLineLength bounds a single input line in bytes
const DefaultMaxLineLength = 64 * 1024

// Rejection reasons recorded in metrics
const (
	ReasonNotANumber   = "not_a_number"
	ReasonEmptyDataset = "empty_dataset"
	ReasonLineTooLong  = "line_too_long"
)

// ErrLineTooLong is returned by ReadLine after an over-long line has been
// consumed. The next read starts on the following line.
var ErrLineTooLong = errors.New("input line is too long")

// Options configures a Prompter
type Options struct {
	Theme         *Theme
	Metrics       *monitoring.Metrics
	MaxLineLength int // bytes; 0 means DefaultMaxLineLength
}

// Prompter reads user input line by line and writes prompts and results.
// Every read blocks until a full line arrives; closed input surfaces as
// io.EOF.
type Prompter struct {
	reader  *bufio.Reader
	maxLine int
	out     io.Writer
	theme   *Theme
	metrics *monitoring.Metrics
}

// NewPrompter creates a prompter over in and out
func NewPrompter(in io.Reader, out io.Writer, opts Options) *Prompter {
	theme := opts.Theme
	if theme == nil {
		theme = NewTheme(out, ThemeOptions{})
	}

	maxLine := opts.MaxLineLength
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLength
	}

	return &Prompter{
		reader:  bufio.NewReader(in),
		maxLine: maxLine,
		out:     out,
		theme:   theme,
		metrics: opts.Metrics,
	}
}

// Theme returns the renderer used for output
func (p *Prompter) Theme() *Theme { return p.theme }

// Println writes a line of output
func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output
func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Error writes an inline error line
func (p *Prompter) Error(msg string) {
	fmt.Fprintln(p.out, p.theme.Error(msg))
}

// ReadLine shows prompt and returns the next line with surrounding space removed.
// Lines longer than the configured limit yield ErrLineTooLong.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.readLine()
	switch {
	case err == nil:
		return strings.TrimSpace(line), nil
	case errors.Is(err, ErrLineTooLong):
		return "", err
	case errors.Is(err, io.EOF):
		fmt.Fprintln(p.out)
		return "", io.EOF
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}

// readLine drains one line in buffer-sized chunks, keeping at most maxLine bytes
func (p *Prompter) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, more, err := p.reader.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > p.maxLine {
				tooLong, line = true, nil
			}
		}
		if !more {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	return string(line), nil
}

// Number keeps prompting until the user enters a number
func (p *Prompter) Number(prompt string) (common.Value, error) {
	for {
		raw, err := p.ReadLine(prompt)
		if errors.Is(err, ErrLineTooLong) {
			p.metrics.RecordRejectedInput(ReasonLineTooLong)
			p.Error("Input is too long. Please try again.")
			continue
		}
		if err != nil {
			return common.Value{}, err
		}

		v, err := common.ParseToken(raw)
		if err == nil {
			return v, nil
		}

		p.metrics.RecordRejectedInput(ReasonNotANumber)
		p.Error(fmt.Sprintf("'%s' is not a number. Please try again.", raw))
	}
}

// Dataset collects numbers until the sentinel is entered.
// The returned slice is never empty.
func (p *Prompter) Dataset() ([]common.Value, error) {
	p.Printf("\n  Enter numbers one by one. Type '%s' when finished.\n\n", Sentinel)

	var dataset []common.Value
	for {
		raw, err := p.ReadLine(fmt.Sprintf("  Number [%d] (or '%s'): ", len(dataset)+1, Sentinel))
		if errors.Is(err, ErrLineTooLong) {
			p.metrics.RecordRejectedInput(ReasonLineTooLong)
			p.Error("Input is too long. Skipped.")
			continue
		}
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(raw, Sentinel) {
			if len(dataset) == 0 {
				p.metrics.RecordRejectedInput(ReasonEmptyDataset)
				p.Error("Please enter at least one number.")
				continue
			}
			return dataset, nil
		}

		v, err := common.ParseToken(raw)
		if err != nil {
			p.metrics.RecordRejectedInput(ReasonNotANumber)
			p.Error(fmt.Sprintf("'%s' is not a valid number. Skipped.", raw))
			continue
		}

		dataset = append(dataset, v)
		p.Println(p.theme.Added(fmt.Sprintf("Added: %s  (type: %s)", v, v.TypeName())))
	}
}
