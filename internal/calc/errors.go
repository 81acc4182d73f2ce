package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error the evaluator returns. Callers
// tell failures apart by message only.
var ErrInvalidInput = errors.New("invalid input")

type inputError struct {
	msg   string
	cause error
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return e.cause }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidf(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

// invalid wraps an engine error from the numeral package, keeping its message.
func invalid(err error) error {
	return &inputError{msg: err.Error(), cause: err}
}
