// Package testutil provides testing utilities and helpers for calculator tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/GriffinCanCode/calcshell/internal/app"
	"github.com/GriffinCanCode/calcshell/internal/shared/types"
	"github.com/stretchr/testify/mock"
)

// Script builds console input from lines, one entry per line.
func Script(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// MockModule is a mock implementation of app.Module for testing.
type MockModule struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockModule) Definition() types.Module {
	args := m.Called()
	return args.Get(0).(types.Module)
}

// Run mocks the Run method.
func (m *MockModule) Run(ctx context.Context, env *app.Env) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

// NewMockModule creates a new mock module with default behaviors.
func NewMockModule(t *testing.T, key, name string) *MockModule {
	t.Helper()
	m := new(MockModule)

	// Default behavior: return a simple module definition
	m.On("Definition").Return(types.Module{
		Key:         key,
		Name:        name,
		Description: "Mock module for testing",
	}).Maybe()

	return m
}

// AssertContainsInOrder asserts that each fragment appears in output after the previous one.
func AssertContainsInOrder(t *testing.T, output string, fragments ...string) {
	t.Helper()

	rest := output
	for _, f := range fragments {
		i := strings.Index(rest, f)
		if i < 0 {
			t.Fatalf("expected %q in remaining output:\n%s", f, rest)
		}
		rest = rest[i+len(f):]
	}
}
