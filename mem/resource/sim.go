package resource

import (
	"fmt"
	"sync"
)

// Sim is a capacity-enforced simulated memory resource. It hands out
// addresses from a private address space without backing storage, which is
// exactly what the strategy layer needs: allocators do address arithmetic
// and bookkeeping, never loads or stores.
//
// A Sim of kind UnifiedManaged also implements Adviser and records every
// advice it receives, so tests can assert on the advice stream.
type Sim struct {
	mu       sync.Mutex
	kind     Kind
	capacity int64 // <= 0 means unlimited
	used     int64
	next     uint64
	live     map[Ptr]int64
	advices  []AdviceEvent
}

// AdviceEvent is one recorded Advise call.
type AdviceEvent struct {
	Addr     Ptr
	Size     int64
	Advice   Advice
	Accessor Accessor
}

// NewSim creates a simulated resource of the given kind. A capacity <= 0
// means unlimited. Address spaces of different Sim instances never overlap.
func NewSim(kind Kind, capacity int64) *Sim {
	return &Sim{
		kind:     kind,
		capacity: capacity,
		// Tag the space with the kind so a pointer misdirected across
		// resources can never accidentally resolve.
		next: uint64(kind) << 56,
		live: make(map[Ptr]int64),
	}
}

// Allocate reserves size bytes of simulated address space.
func (s *Sim) Allocate(size int64) (Ptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacity > 0 && s.used+size > s.capacity {
		return 0, fmt.Errorf("%w: %s cannot reserve %d bytes (%d of %d in use)",
			ErrExhausted, s.kind, size, s.used, s.capacity)
	}

	p := Ptr(s.next)
	s.next += uint64(size)
	s.used += size
	s.live[p] = size

	return p, nil
}

// Deallocate releases the reservation at p.
func (s *Sim) Deallocate(p Ptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	size, ok := s.live[p]
	if !ok {
		return fmt.Errorf("%w: 0x%x is not live on %s", ErrBadAddress, uint64(p), s.kind)
	}
	delete(s.live, p)
	s.used -= size

	return nil
}

// Advise records a placement hint over the range starting at p. Only
// unified-memory resources accept advice.
func (s *Sim) Advise(p Ptr, size int64, advice Advice, accessor Accessor) error {
	if s.kind != UnifiedManaged {
		return fmt.Errorf("%w: %s does not accept placement advice", ErrBadAdvice, s.kind)
	}
	if advice < AdviceReadMostly || advice > AdviceAccessedBy {
		return fmt.Errorf("%w: advice %d", ErrBadAdvice, advice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Advice may target any sub-range of a live reservation, not just the
	// reservation base.
	covered := false
	for base, rsize := range s.live {
		if p >= base && p < base+Ptr(rsize) {
			covered = true
			break
		}
	}
	if !covered {
		return fmt.Errorf("%w: advise on 0x%x with no reservation", ErrBadAddress, uint64(p))
	}
	s.advices = append(s.advices, AdviceEvent{Addr: p, Size: size, Advice: advice, Accessor: accessor})

	return nil
}

// AdviceEvents returns a snapshot of all advice received so far.
func (s *Sim) AdviceEvents() []AdviceEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]AdviceEvent, len(s.advices))
	copy(out, s.advices)
	return out
}

// InUse reports the number of reserved bytes.
func (s *Sim) InUse() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

// Name returns the canonical resource name.
func (s *Sim) Name() string { return s.kind.String() }

// Kind returns the simulated memory space.
func (s *Sim) Kind() Kind { return s.kind }

// Compile-time interface checks
var (
	_ Resource = (*Sim)(nil)
	_ Adviser  = (*Sim)(nil)
)
