package magic

import "fmt"

// ArgumentError reports a malformed magic argument line.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %s", e.Reason)
}

// AuthenticationError reports a failed connection setup.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a query rejected or failed by the remote engine.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("query execution failed: %s", e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
