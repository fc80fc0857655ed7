package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is wrapped by every rule violation so callers can tell
	// user input problems apart from programming errors with one errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrImageRequired        = fmt.Errorf("%w: image is required", ErrValidation)
	ErrImageTooLarge        = fmt.Errorf("%w: image is too large", ErrValidation)
	ErrUnsupportedImageType = fmt.Errorf("%w: unsupported image type", ErrValidation)
)
