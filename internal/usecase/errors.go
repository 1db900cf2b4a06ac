package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a record that does not exist and a record owned by
// another user. The two cases must stay indistinguishable to the caller.
var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// GenerationError wraps any failure between loading the prospect and
// persisting the generated email: the external call, or the insert itself.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "email generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
