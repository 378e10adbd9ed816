package strategy

import (
	"fmt"

	"github.com/memkit/memkit/mem/resource"
)

// bumpStrategy is a monotonic allocator over a single up-front reservation.
// Allocation advances a cursor; deallocation drops the record but never
// returns address space for reuse. This trades reclamation away for the
// cheapest possible allocation path, which suits short-lived bursts that
// are torn down wholesale.
type bumpStrategy struct {
	backing  AllocationStrategy
	base     resource.Ptr
	capacity int64
	cursor   int64
	recs     records
}

// Bump returns a Maker for a monotonic strategy of the given fixed
// capacity. The whole capacity is reserved from the backing layer at
// construction, so ActualSize equals capacity before the first allocation.
func Bump(capacity int64) Maker {
	return func(name string, backing AllocationStrategy) (AllocationStrategy, error) {
		if capacity <= 0 {
			return nil, fmt.Errorf("%w: bump capacity %d", ErrBadConfig, capacity)
		}
		base, err := backing.Allocate(capacity)
		if err != nil {
			return nil, err
		}
		return &bumpStrategy{
			backing:  backing,
			base:     base,
			capacity: capacity,
			recs:     newRecords(name),
		}, nil
	}
}

func (b *bumpStrategy) Allocate(size int64) (resource.Ptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %s cannot allocate %d bytes", ErrBadSize, b.recs.owner, size)
	}
	if b.cursor+size > b.capacity {
		return 0, fmt.Errorf("%w: %s has %d of %d bytes consumed, cannot place %d",
			ErrExhausted, b.recs.owner, b.cursor, b.capacity, size)
	}

	p := b.base + resource.Ptr(b.cursor)
	b.cursor += size
	b.recs.add(p, size)

	return p, nil
}

// Deallocate removes the allocation record only. The cursor never moves
// back, so the address range stays consumed for the strategy's lifetime.
func (b *bumpStrategy) Deallocate(p resource.Ptr) error {
	_, err := b.recs.remove(p)
	return err
}

func (b *bumpStrategy) Size(p resource.Ptr) (int64, error) {
	return b.recs.size(p)
}

func (b *bumpStrategy) CurrentSize() int64 { return b.recs.current }

func (b *bumpStrategy) HighWatermark() int64 { return b.recs.high }

// ActualSize is the construction-time reservation, unconditionally.
func (b *bumpStrategy) ActualSize() int64 { return b.capacity }

func (b *bumpStrategy) Name() string { return b.recs.owner }

func (b *bumpStrategy) Unwrap() AllocationStrategy { return b.backing }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*bumpStrategy)(nil)
	_ Unwrapper          = (*bumpStrategy)(nil)
)
