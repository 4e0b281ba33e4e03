package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Identifiable is implemented by results that quiet mode reduces to an id.
type Identifiable interface {
	GetID() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON   bool
	Quiet  bool
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result. human renders the
// human-readable form; when nil, data is printed with %+v.
func (f *OutputFormatter) Success(data interface{}, human func(w io.Writer) error) error {
	if f.Quiet {
		if item, ok := data.(Identifiable); ok {
			_, err := fmt.Fprintln(f.out(), item.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports the error and returns it wrapped with exitCode.
func (f *OutputFormatter) Fail(exitCode int, code, message, suggestion string) error {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		return Exit(ExitError, fmt.Errorf("failed to write error output: %w", err))
	}
	return Exit(exitCode, errors.New(message))
}
