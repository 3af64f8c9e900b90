package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an argument is numerically outside its
	// valid domain (year, month, day, term index).
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned when a value is inside its domain but
	// inconsistent with the calendar, such as a leap flag on a month that is
	// not the year's leap month.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsOutOfRange checks if an error is an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsInvalidArgument checks if an error is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// outOfRange builds an ErrOutOfRange naming the argument, its value and the
// accepted interval.
func outOfRange(name string, value, low, high int) error {
	return fmt.Errorf("%w: %s %d, expected [%d-%d]", ErrOutOfRange, name, value, low, high)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
