package strategy

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/memkit/memkit/mem/resource"
)

// slotsPerChunk is the number of element slots reserved per backing
// reservation. Growth always happens in whole chunks.
const slotsPerChunk = 64

// fixedPool serves uniformly sized blocks. Every allocation returns exactly
// one element-sized slot regardless of the requested byte count, drawn from
// a FIFO of free slots; when the FIFO runs dry the pool reserves one more
// chunk of 64 slots from the backing layer. Homogeneous slots make
// coalescing unnecessary.
type fixedPool struct {
	backing AllocationStrategy
	elem    int64
	slots   *queue.Queue // free slot addresses
	actual  int64
	recs    records
}

// FixedPool returns a Maker for a slab pool over elements of a fixed size.
func FixedPool(elementSize int64) Maker {
	return func(name string, backing AllocationStrategy) (AllocationStrategy, error) {
		if elementSize <= 0 {
			return nil, fmt.Errorf("%w: fixed pool element size %d", ErrBadConfig, elementSize)
		}
		return &fixedPool{
			backing: backing,
			elem:    elementSize,
			slots:   queue.New(),
			recs:    newRecords(name),
		}, nil
	}
}

// Allocate returns one element-sized slot. The requested size is validated
// against the element size and then ignored: Size on the returned address
// always reports the element size.
func (f *fixedPool) Allocate(size int64) (resource.Ptr, error) {
	if size <= 0 || size > f.elem {
		return 0, fmt.Errorf("%w: %s serves %d-byte elements, cannot place %d",
			ErrBadSize, f.recs.owner, f.elem, size)
	}

	if f.slots.Length() == 0 {
		if err := f.grow(); err != nil {
			return 0, err
		}
	}

	p := f.slots.Remove().(resource.Ptr)
	f.recs.add(p, f.elem)

	return p, nil
}

// grow reserves one more chunk of slotsPerChunk elements and queues every
// slot as free.
func (f *fixedPool) grow() error {
	chunkSize := f.elem * slotsPerChunk
	base, err := f.backing.Allocate(chunkSize)
	if err != nil {
		return err
	}
	f.actual += chunkSize
	for i := int64(0); i < slotsPerChunk; i++ {
		f.slots.Add(base + resource.Ptr(i*f.elem))
	}
	return nil
}

func (f *fixedPool) Deallocate(p resource.Ptr) error {
	if _, err := f.recs.remove(p); err != nil {
		return err
	}
	f.slots.Add(p)
	return nil
}

func (f *fixedPool) Size(p resource.Ptr) (int64, error) {
	return f.recs.size(p)
}

func (f *fixedPool) CurrentSize() int64 { return f.recs.current }

func (f *fixedPool) HighWatermark() int64 { return f.recs.high }

// ActualSize is the sum of all chunks ever reserved; chunks are never
// returned to the backing layer.
func (f *fixedPool) ActualSize() int64 { return f.actual }

func (f *fixedPool) Name() string { return f.recs.owner }

func (f *fixedPool) Unwrap() AllocationStrategy { return f.backing }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*fixedPool)(nil)
	_ Unwrapper          = (*fixedPool)(nil)
)
