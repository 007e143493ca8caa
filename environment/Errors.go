package environment

import "errors"

// Error implements errors returned by environments, recording the
// operation that failed.
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error so that Error can be used with
// errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrUnsupportedRenderMode is returned when an environment cannot
	// render in the requested mode
	ErrUnsupportedRenderMode = errors.New("unsupported render mode")

	// ErrInvalidAction is returned when an action cannot be taken
	// in an environment
	ErrInvalidAction = errors.New("invalid action")
)
