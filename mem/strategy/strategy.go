package strategy

import "github.com/memkit/memkit/mem/resource"

// AllocationStrategy is the contract every strategy implements. A strategy
// always wraps either another strategy or, via NewPassthrough, a raw
// resource.
//
// Implementations:
//   - bumpStrategy: monotonic cursor allocation (Bump)
//   - fixedPool: homogeneous 64-slot chunks (FixedPool)
//   - dynamicPool: first-fit free lists with coalescing (Pool)
//   - threadSafe: mutex decorator (ThreadSafe)
//   - advisor: placement-advice decorator (Advisor)
//   - passthrough: raw resource adapter (NewPassthrough)
type AllocationStrategy interface {
	// Allocate reserves size bytes and returns the base address.
	Allocate(size int64) (resource.Ptr, error)

	// Deallocate releases the allocation at p. Deallocating an address
	// with no live record on this strategy fails with ErrBadAddress.
	Deallocate(p resource.Ptr) error

	// Size reports the recorded size of the live allocation at p.
	// FixedPool reports the element size rather than the requested size.
	Size(p resource.Ptr) (int64, error)

	// CurrentSize reports live bytes allocated through this strategy.
	CurrentSize() int64

	// HighWatermark reports the maximum CurrentSize ever observed.
	HighWatermark() int64

	// ActualSize reports bytes physically reserved from the backing layer.
	ActualSize() int64

	// Name returns the registry name this strategy was created under.
	Name() string
}

// Maker constructs a strategy of one concrete kind under the given name on
// top of a backing strategy. The registry resolves a (name, backing, Maker)
// triple into a registered allocator.
type Maker func(name string, backing AllocationStrategy) (AllocationStrategy, error)

// Unwrapper is implemented by every strategy that wraps another one. It
// exposes the next layer down so cross-cutting concerns (such as locating
// the adviser at the bottom of a chain) can walk the composition.
type Unwrapper interface {
	Unwrap() AllocationStrategy
}

// ResourceHolder is implemented by the passthrough at the bottom of a
// chain, exposing the raw resource it adapts.
type ResourceHolder interface {
	Resource() resource.Resource
}

// findAdviser walks a strategy chain to the raw resource and reports it as
// an Adviser if the resource accepts placement advice.
func findAdviser(s AllocationStrategy) (resource.Adviser, bool) {
	for cur := s; cur != nil; {
		if rh, ok := cur.(ResourceHolder); ok {
			adv, ok := rh.Resource().(resource.Adviser)
			return adv, ok
		}
		u, ok := cur.(Unwrapper)
		if !ok {
			return nil, false
		}
		cur = u.Unwrap()
	}
	return nil, false
}
