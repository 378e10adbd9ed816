package strategy

import (
	"sync"

	"github.com/memkit/memkit/mem/resource"
)

// threadSafe serializes every operation of the wrapped strategy on one
// mutex, making any composition safe for concurrent callers. It changes no
// allocation or accounting semantics: callers observe a linearizable
// sequence of the wrapped strategy's operations. The lock is never held
// outside a single forwarded call, so no re-entrancy is assumed of nested
// strategies.
type threadSafe struct {
	mu      sync.Mutex
	wrapped AllocationStrategy
	name    string
}

// ThreadSafe returns a Maker that wraps the backing strategy in a mutex.
func ThreadSafe() Maker {
	return func(name string, backing AllocationStrategy) (AllocationStrategy, error) {
		return &threadSafe{wrapped: backing, name: name}, nil
	}
}

func (t *threadSafe) Allocate(size int64) (resource.Ptr, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.Allocate(size)
}

func (t *threadSafe) Deallocate(p resource.Ptr) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.Deallocate(p)
}

func (t *threadSafe) Size(p resource.Ptr) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.Size(p)
}

func (t *threadSafe) CurrentSize() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.CurrentSize()
}

func (t *threadSafe) HighWatermark() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.HighWatermark()
}

func (t *threadSafe) ActualSize() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrapped.ActualSize()
}

func (t *threadSafe) Name() string { return t.name }

func (t *threadSafe) Unwrap() AllocationStrategy { return t.wrapped }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*threadSafe)(nil)
	_ Unwrapper          = (*threadSafe)(nil)
)
