package core

import (
	"errors"
	"fmt"
)

// Errors shared by all model packages. Callers test with errors.Is.
var (
	// ErrInvalidParameter reports an unusable configuration value, such as a
	// window length below one.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrValueOutOfRange reports a sample that does not fit the declared
	// sample format.
	ErrValueOutOfRange = errors.New("value out of range")
)

// InvalidParameterf returns an error wrapping ErrInvalidParameter.
func InvalidParameterf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// OutOfRangef returns an error wrapping ErrValueOutOfRange.
func OutOfRangef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValueOutOfRange, fmt.Sprintf(format, args...))
}
