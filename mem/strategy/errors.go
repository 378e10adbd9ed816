package strategy

import (
	"errors"

	"github.com/memkit/memkit/mem/resource"
)

var (
	// ErrExhausted indicates the strategy or its backing layer cannot
	// satisfy a reservation. Resource-level exhaustion surfaces unchanged,
	// so errors.Is matches across layers.
	ErrExhausted = resource.ErrExhausted

	// ErrBadAddress indicates a deallocate or size query on an address
	// with no live record for the strategy.
	ErrBadAddress = resource.ErrBadAddress

	// ErrBadSize indicates an invalid allocation size: zero or negative,
	// or a fixed-pool request exceeding the element size.
	ErrBadSize = resource.ErrBadSize

	// ErrBadAdvice indicates an unrecognized advice operation, a missing
	// required accessor, or an advisor over a chain whose resource does
	// not accept advice. Always raised at construction, never deferred to
	// the first allocation.
	ErrBadAdvice = errors.New("strategy: bad advice operation")

	// ErrBadConfig indicates invalid strategy construction parameters.
	ErrBadConfig = errors.New("strategy: bad configuration")
)
