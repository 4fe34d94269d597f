// Package errors provides sentinel errors and custom error types for the mosrun application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrParse indicates that a configuration file could not be parsed
	ErrParse = errors.New("configuration parse error")

	// ErrEnvNotFound indicates that a requested environment is not declared
	ErrEnvNotFound = errors.New("environment not found")

	// ErrUnresolvedPlaceholder indicates that a placeholder could not be substituted
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrCommandFailed indicates that a spawned command exited non-zero
	ErrCommandFailed = errors.New("command failed")
)

// ParseError represents a malformed configuration file
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(path string, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Path:    path,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// EnvNotFoundError represents an error when a requested environment is not declared
type EnvNotFoundError struct {
	Name string
}

func (e *EnvNotFoundError) Error() string {
	return fmt.Sprintf("environment %s is not declared", e.Name)
}

// Is returns true if the target error is ErrEnvNotFound
func (e *EnvNotFoundError) Is(target error) bool {
	return target == ErrEnvNotFound
}

// NewEnvNotFoundError creates a new EnvNotFoundError
func NewEnvNotFoundError(name string) *EnvNotFoundError {
	return &EnvNotFoundError{Name: name}
}

// UnresolvedPlaceholderError represents a placeholder whose path context is missing
type UnresolvedPlaceholderError struct {
	Placeholder string
	Where       string
}

func (e *UnresolvedPlaceholderError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("cannot resolve %s in %q", e.Placeholder, e.Where)
	}
	return fmt.Sprintf("cannot resolve %s", e.Placeholder)
}

// Is returns true if the target error is ErrUnresolvedPlaceholder
func (e *UnresolvedPlaceholderError) Is(target error) bool {
	return target == ErrUnresolvedPlaceholder
}

// NewUnresolvedPlaceholderError creates a new UnresolvedPlaceholderError
func NewUnresolvedPlaceholderError(placeholder, where string) *UnresolvedPlaceholderError {
	return &UnresolvedPlaceholderError{Placeholder: placeholder, Where: where}
}

// CommandError represents a non-zero exit from a spawned command
type CommandError struct {
	Env      string
	Argv     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed in environment %s: %s (exit code %d)",
		e.Env, strings.Join(e.Argv, " "), e.ExitCode)
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(env string, argv []string, exitCode int, err error) *CommandError {
	return &CommandError{
		Env:      env,
		Argv:     argv,
		ExitCode: exitCode,
		Err:      err,
	}
}
