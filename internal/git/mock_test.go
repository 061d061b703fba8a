package git

import (
	"fmt"
	"strings"
)

// MockGitExecutor is a mock implementation of GitExecutor for testing.
type MockGitExecutor struct {
	// Commands stores the executed commands for verification
	Commands [][]string
	// Responses maps command patterns to their responses
	Responses map[string]MockResponse
	// CallCount tracks how many times Execute was called
	CallCount int
}

// MockResponse defines a mock git command response.
type MockResponse struct {
	Output string
	Error  error
}

// NewMockGitExecutor creates a new mock executor with no configured responses.
func NewMockGitExecutor() *MockGitExecutor {
	return &MockGitExecutor{
		Commands:  [][]string{},
		Responses: make(map[string]MockResponse),
	}
}

// Execute simulates git command execution.
func (m *MockGitExecutor) Execute(args ...string) (string, error) {
	m.CallCount++
	m.Commands = append(m.Commands, args)

	cmdKey := strings.Join(args, " ")

	if response, exists := m.Responses[cmdKey]; exists {
		return response.Output, response.Error
	}

	for pattern, response := range m.Responses {
		if strings.HasPrefix(cmdKey, pattern) {
			return response.Output, response.Error
		}
	}

	return "", fmt.Errorf("mock: unhandled git command: %s", cmdKey)
}

// SetResponse configures a response for a specific command pattern.
func (m *MockGitExecutor) SetResponse(pattern, output string, err error) {
	m.Responses[pattern] = MockResponse{Output: output, Error: err}
}

// SetSuccessResponse configures a successful response.
func (m *MockGitExecutor) SetSuccessResponse(pattern, output string) {
	m.SetResponse(pattern, output, nil)
}

// SetMissingRefResponse configures the exit-1 GitError show-ref emits
// for a ref that does not exist.
func (m *MockGitExecutor) SetMissingRefResponse(pattern string) {
	m.SetResponse(pattern, "", &GitError{
		Command:  "git",
		Args:     strings.Split(pattern, " "),
		ExitCode: 1,
	})
}

// LastCommand returns the most recently executed command.
func (m *MockGitExecutor) LastCommand() []string {
	if len(m.Commands) == 0 {
		return nil
	}
	return m.Commands[len(m.Commands)-1]
}
