package blinkytape

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that port auto-detection found no compatible device.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "no compatible BlinkyTape device detected"
}

// IsNotFoundError returns true if the error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// CapacityError indicates that sending another pixel would exceed the
// session's configured LED count.
type CapacityError struct {
	// LEDCount is the configured strip length
	LEDCount int

	// Pending is the number of pixels already set in the current frame
	Pending int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("attempting to set pixel outside range: %d pixels already set, strip holds %d",
		e.Pending, e.LEDCount)
}

// IsCapacityError returns true if the error is a CapacityError.
func IsCapacityError(err error) bool {
	var e *CapacityError
	return errors.As(err, &e)
}

// ClosedError indicates an operation was attempted on a closed session.
type ClosedError struct {
	// Op is the operation that was attempted
	Op string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("%s: session is closed", e.Op)
}

// IsClosedError returns true if the error is a ClosedError.
func IsClosedError(err error) bool {
	var e *ClosedError
	return errors.As(err, &e)
}
