/*
errors.go - Centralized error types for the outer layers

PURPOSE:
  The reward calculator never fails: invalid input yields a zero reward.
  Errors only exist where raw caller input is turned into calculator
  inputs (factory, API, CLI). They live here for consistency.

ERROR CATEGORIES:
  1. Input errors - Payloads that cannot be read at all
  2. Lookup errors - Unknown scenario or formula names

USAGE:
  if generic.IsClientError(err) {
      // 400
  }

SEE ALSO:
  - factory/inputs.go: Wraps these errors with field context
  - api/handlers.go: Maps them to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPayload is returned when a request body is not valid JSON.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidDate is returned when a stake date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownFormula is returned for a formula name that is not registered.
	ErrUnknownFormula = errors.New("unknown formula")

	// ErrScenarioNotFound is returned when a scenario id is not in the catalog.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FieldError ties an input error to the payload field it came from.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPayload) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownFormula)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}
