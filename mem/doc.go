// Package mem ties allocation strategies and memory resources together
// behind named allocator handles.
//
// # Overview
//
// A Registry owns the name -> strategy table for one process. It
// pre-registers a default allocator for every available memory resource
// kind ("HOST", "DEVICE", "UM", "PINNED") and builds user allocators on top
// of them through MakeAllocator:
//
//	rm := mem.Default()
//
//	host, _ := rm.GetAllocator("HOST")
//	pool, err := rm.MakeAllocator("scratch", host, strategy.Pool(1024, 512))
//	if err != nil {
//	    return err
//	}
//
//	p, err := pool.Allocate(100)
//	if err != nil {
//	    return err
//	}
//	defer pool.Deallocate(p)
//
// Names are globally unique for the registry's lifetime and case-sensitive.
// Once created, an Allocator handle talks straight to its strategy; the
// registry is out of the request path.
//
// # Handles
//
// Allocator is a thin copyable value. The registry keeps the authoritative
// reference to the strategy, so a strategy outlives every handle copy and
// handles can be passed around freely.
//
// # Thread safety
//
// The registry's own table is safe for concurrent use: two concurrent
// MakeAllocator calls with the same name cannot both succeed. The
// allocators themselves are only as safe as their strategy composition -
// wrap with strategy.ThreadSafe() for shared handles.
package mem
