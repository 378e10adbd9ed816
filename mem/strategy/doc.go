// Package strategy implements composable allocation strategies over raw
// memory resources.
//
// # Overview
//
// An AllocationStrategy services allocate/deallocate requests on top of a
// backing layer - either another strategy or, at the bottom of every chain,
// a passthrough over a raw resource. Strategies compose: a coalescing pool
// can sit on device memory, a thread-safety decorator on the pool, and a
// placement advisor on a unified-memory passthrough, all behind the same
// contract.
//
// # Strategies
//
// The closed set of strategy kinds is the set of exported constructors:
//
//   - Bump(capacity): monotonic cursor over one up-front reservation.
//     Deallocate releases bookkeeping only; address space is never reused.
//     Cheapest possible allocation for short-lived bursts.
//   - FixedPool(elementSize): homogeneous slots, 64 per chunk, recycled
//     through a free-slot queue. Every live block reports elementSize.
//   - Pool(initial, subsequent): general pool with per-chunk free lists,
//     first-fit placement, block splitting, and mandatory coalescing of
//     address-adjacent free blocks on every deallocate.
//   - ThreadSafe(): serializes every operation of the wrapped strategy on
//     one mutex.
//   - Advisor(op, opts...): issues placement advice to the underlying
//     unified-memory resource after every successful allocation.
//
// NewPassthrough adapts a raw resource to the strategy contract; the
// registry uses it for the default per-resource allocators.
//
// # Accounting
//
// Every strategy tracks three byte counters with identical semantics:
// CurrentSize (live bytes), HighWatermark (maximum CurrentSize ever
// observed, never reset), and ActualSize (bytes physically reserved from
// the backing layer - monotone for pooling strategies, which never return
// chunks). Decorators forward all three to the strategy they wrap.
//
// # Thread safety
//
// Strategies are not safe for concurrent mutation unless wrapped in
// ThreadSafe. Calling an undecorated strategy from multiple goroutines is a
// caller contract violation.
package strategy
