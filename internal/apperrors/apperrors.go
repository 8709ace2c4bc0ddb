package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingServiceSecret = errors.New("SERVICE_SECRET must be set")
	ErrMissingGatewaySecret = errors.New("GATEWAY_SECRET must be set")

	// ErrInvalidInput is the umbrella for every caller-side validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidHexInput reports a hex string that cannot be decoded.
	ErrInvalidHexInput = fmt.Errorf("%w: invalid hex", ErrInvalidInput)
	// ErrSerialization reports metadata that has no canonical byte form.
	ErrSerialization = fmt.Errorf("%w: metadata serialization failed", ErrInvalidInput)
)
