package mem

import (
	"github.com/memkit/memkit/mem/resource"
	"github.com/memkit/memkit/mem/strategy"
)

// Allocator is the handle callers hold: a name bound to one strategy
// instance. It forwards every operation to the strategy and adds nothing.
// The zero Allocator is not usable; obtain handles from a Registry.
type Allocator struct {
	s strategy.AllocationStrategy
}

// Allocate reserves size bytes through the bound strategy.
func (a Allocator) Allocate(size int64) (resource.Ptr, error) {
	return a.s.Allocate(size)
}

// Deallocate releases the allocation at p.
func (a Allocator) Deallocate(p resource.Ptr) error {
	return a.s.Deallocate(p)
}

// Size reports the recorded size of the live allocation at p. For fixed
// pools this is the element size, not the requested byte count.
func (a Allocator) Size(p resource.Ptr) (int64, error) {
	return a.s.Size(p)
}

// CurrentSize reports live bytes allocated through this allocator.
func (a Allocator) CurrentSize() int64 { return a.s.CurrentSize() }

// HighWatermark reports the maximum CurrentSize ever observed.
func (a Allocator) HighWatermark() int64 { return a.s.HighWatermark() }

// ActualSize reports bytes physically reserved from the backing layer.
func (a Allocator) ActualSize() int64 { return a.s.ActualSize() }

// Name returns the registry name of the bound strategy.
func (a Allocator) Name() string { return a.s.Name() }

// Strategy exposes the bound strategy, e.g. for composing further
// decorators outside the registry.
func (a Allocator) Strategy() strategy.AllocationStrategy { return a.s }
