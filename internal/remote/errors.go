package remote

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")
var ErrInvalidValue = errors.New("invalid value")

// DeserializationError reports a payload that is not valid JSON or does not
// match the upstream schema.
type DeserializationError struct {
	Resource string
	Err      error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize %s: %s", e.Resource, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func missingFields(names ...string) error {
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%v: %w", names, ErrMissingField)
}
