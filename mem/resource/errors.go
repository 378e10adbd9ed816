package resource

import "errors"

var (
	// ErrExhausted indicates the resource cannot satisfy a reservation.
	ErrExhausted = errors.New("resource: exhausted")

	// ErrBadAddress indicates an address with no live reservation on this
	// resource.
	ErrBadAddress = errors.New("resource: bad address")

	// ErrBadSize indicates a non-positive reservation size.
	ErrBadSize = errors.New("resource: size must be positive")

	// ErrBadAdvice indicates an advice value or accessor the resource does
	// not recognize.
	ErrBadAdvice = errors.New("resource: bad advice")
)
