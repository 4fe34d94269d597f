package cli

import "fmt"

// ExitCodeError carries a non-zero process exit code out of a command whose
// failure has already been reported to the user.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitCodeError creates a new ExitCodeError
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}
