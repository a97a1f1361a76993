package workout

import "fmt"

// ValidationError reports malformed cell-addressing arguments. These are
// caller bugs and are raised immediately rather than coerced.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return "workout: " + e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// InvalidStateError reports session-lifecycle misuse, such as starting a
// workout while one is already active or referencing an unknown day.
type InvalidStateError struct {
	msg string
}

func (e *InvalidStateError) Error() string { return "workout: " + e.msg }

func invalidStateErrorf(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{msg: fmt.Sprintf(format, args...)}
}

// StorageError reports a failed durable read/write. In-memory state stays
// usable; callers should warn the user about data-loss risk rather than
// abort the session.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("workout: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
