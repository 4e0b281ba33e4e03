package cli

import "fmt"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or a command that needs a login first.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Workflow, stage, task or user ids that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stored state or input that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Bad dates, rejected credentials, or any case where input
	// fails validation rules.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command. The message
// has already been reported to the user by the time it is returned.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code.
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}
