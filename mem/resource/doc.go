// Package resource provides the raw memory resources that allocation
// strategies draw from.
//
// # Overview
//
// A Resource is the primitive behind every allocator: it hands out opaque
// addresses for contiguous ranges and takes them back. Resources do no
// pooling and no free-list bookkeeping beyond remembering which addresses
// are outstanding - all reuse policy lives in the strategy layer
// (github.com/memkit/memkit/mem/strategy).
//
// # Resource kinds
//
// Four kinds exist, matching the memory spaces a heterogeneous node exposes:
//
//	Host           ordinary pageable host memory ("HOST")
//	Device         discrete device memory        ("DEVICE")
//	UnifiedManaged unified/managed memory        ("UM")
//	PinnedHost     page-locked host memory       ("PINNED")
//
// The host resource reserves real anonymous mappings (mmap on unix, heap
// slices elsewhere). The other kinds are capacity-enforced address-space
// simulations: strategies only ever do arithmetic on the returned addresses,
// so nothing in this module dereferences them.
//
// # Placement advice
//
// Unified-memory resources additionally implement Adviser, accepting
// non-binding residency hints (read-mostly, preferred location, accessed-by)
// over an allocated range. Advice never affects the validity of an
// allocation.
//
// # Thread safety
//
// All resources in this package are safe for concurrent use. This keeps a
// resource's internal address table coherent when several strategies share
// it; it does NOT make the strategies above it safe - see the strategy
// package for the thread-safety decorator.
package resource
