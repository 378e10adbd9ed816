package mem

import "errors"

var (
	// ErrDupName indicates a MakeAllocator call with a name that is
	// already registered. Uniqueness is case-sensitive and checked before
	// any strategy construction work.
	ErrDupName = errors.New("mem: allocator name already registered")

	// ErrUnknownAllocator indicates a lookup for a name that was never
	// registered.
	ErrUnknownAllocator = errors.New("mem: unknown allocator")
)
