package mem

import (
	"fmt"
	"sort"
	"sync"

	"github.com/memkit/memkit/mem/resource"
	"github.com/memkit/memkit/mem/strategy"
)

// Registry is the process-wide name -> strategy table. It creates strategy
// instances through MakeAllocator, enforces global name uniqueness, and
// resolves names back to handles. The registry retains the owning reference
// to every strategy; handles are copies that never outlive it.
type Registry struct {
	mu         sync.Mutex
	strategies map[string]strategy.AllocationStrategy
}

// New constructs a registry with a default allocator pre-registered for
// every given resource. With no arguments it wires the full default set:
// the real host resource plus simulated device, unified and pinned spaces.
func New(resources ...resource.Resource) *Registry {
	if len(resources) == 0 {
		resources = []resource.Resource{
			resource.NewHost(),
			resource.NewSim(resource.Device, 0),
			resource.NewSim(resource.UnifiedManaged, 0),
			resource.NewSim(resource.PinnedHost, 0),
		}
	}

	r := &Registry{strategies: make(map[string]strategy.AllocationStrategy)}
	for _, res := range resources {
		r.strategies[res.Name()] = strategy.NewPassthrough(res.Name(), res)
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, constructing it with the
// default resource set on first access. It lives for the process duration
// and is never torn down.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// MakeAllocator constructs a strategy under the given unique name on top of
// the backing allocator, registers it, and returns its handle. The name
// check, construction and insertion happen as one atomic unit: of two
// concurrent calls with the same name exactly one succeeds, the other fails
// with ErrDupName.
func (r *Registry) MakeAllocator(name string, backing Allocator, mk strategy.Maker) (Allocator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.strategies[name]; taken {
		return Allocator{}, fmt.Errorf("%w: %q", ErrDupName, name)
	}

	s, err := mk(name, backing.s)
	if err != nil {
		return Allocator{}, err
	}

	r.strategies[name] = s
	return Allocator{s: s}, nil
}

// GetAllocator resolves a registered name to its handle.
func (r *Registry) GetAllocator(name string) (Allocator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.strategies[name]
	if !ok {
		return Allocator{}, fmt.Errorf("%w: %q", ErrUnknownAllocator, name)
	}
	return Allocator{s: s}, nil
}

// IsAllocator reports whether a name is registered. It never fails.
func (r *Registry) IsAllocator(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.strategies[name]
	return ok
}

// Allocators returns a handle for every registered allocator, sorted by
// name.
func (r *Registry) Allocators() []Allocator {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Allocator, 0, len(names))
	for _, name := range names {
		out = append(out, Allocator{s: r.strategies[name]})
	}
	return out
}
