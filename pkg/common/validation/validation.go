// Package validation provides common validation utilities for the
// enkiTS module's caller-visible entry points.
package validation

import (
	"fmt"
)

// ValidatePositive validates that an integer value is positive (> 0),
// wrapping sentinel with field context. Used by scheduler.NewSize to
// reject a non-positive worker count.
func ValidatePositive(field string, value int, sentinel error) error {
	if value <= 0 {
		return fmt.Errorf("%s: got %d: %w", field, value, sentinel)
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil. Used by
// scheduler.AddTaskSetToPipeFromWorker to reject a nil task.Set
// (WaitForTaskSet accepts nil as a documented yield hint and does not
// use this helper).
func ValidateNotNil(field string, value interface{}, sentinel error) error {
	if value == nil {
		return fmt.Errorf("%s: %w", field, sentinel)
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty. Used by
// periodic.Runner.Schedule to reject an unnamed job id.
func ValidateNotEmpty(field, value string, sentinel error) error {
	if value == "" {
		return fmt.Errorf("%s: %w", field, sentinel)
	}
	return nil
}
