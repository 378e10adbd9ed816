package resource

import (
	"fmt"
	"sync"
	"unsafe"
)

// hostResource reserves real anonymous mappings for host memory. The
// returned Ptr is the address of the first mapped byte; the mapping itself
// is retained in the live table until Deallocate so the range stays valid
// for the lifetime of the reservation.
type hostResource struct {
	mu   sync.Mutex
	live map[Ptr][]byte
}

// NewHost creates the host memory resource. On linux and darwin the
// reservations are anonymous mmap regions; elsewhere they fall back to
// heap-allocated slices.
func NewHost() Resource {
	return &hostResource{live: make(map[Ptr][]byte)}
}

func (h *hostResource) Allocate(size int64) (Ptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	buf, err := mapAnon(int(size))
	if err != nil {
		return 0, fmt.Errorf("%w: host reservation of %d bytes: %v", ErrExhausted, size, err)
	}

	p := Ptr(uintptr(unsafe.Pointer(&buf[0])))

	h.mu.Lock()
	h.live[p] = buf
	h.mu.Unlock()

	return p, nil
}

func (h *hostResource) Deallocate(p Ptr) error {
	h.mu.Lock()
	buf, ok := h.live[p]
	if ok {
		delete(h.live, p)
	}
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: 0x%x is not live on HOST", ErrBadAddress, uint64(p))
	}

	return unmapAnon(buf)
}

func (h *hostResource) Name() string { return Host.String() }

func (h *hostResource) Kind() Kind { return Host }

// Compile-time interface check
var _ Resource = (*hostResource)(nil)
