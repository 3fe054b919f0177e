package console

import (
	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockPrompter is a mock implementation of Prompter for testing.
type MockPrompter struct {
	mock.Mock
}

var _ contract.Prompter = &MockPrompter{} // Compile-time check

// AskYesNo implements the Prompter interface.
func (m *MockPrompter) AskYesNo(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

// Select implements the Prompter interface.
func (m *MockPrompter) Select(question string, options []string) (int, error) {
	args := m.Called(question, options)
	return args.Int(0), args.Error(1)
}

// Say implements the Prompter interface. The format arguments are passed
// through as one slice so expectations keep a fixed arity.
func (m *MockPrompter) Say(format string, args ...any) {
	m.Called(format, args)
}
