package strategy

import (
	"fmt"
	"sort"

	"github.com/memkit/memkit/mem/resource"
)

// span is one contiguous free range inside a chunk.
type span struct {
	addr resource.Ptr
	size int64
}

// chunk is one reservation obtained from the backing layer. Chunks are
// owned exclusively by the pool that reserved them and are never released
// individually; free space is tracked per chunk as an address-ordered span
// list with no two adjacent spans left unmerged.
type chunk struct {
	base resource.Ptr
	size int64
	free []span
}

// end returns the first address past the chunk.
func (c *chunk) end() resource.Ptr {
	return c.base + resource.Ptr(c.size)
}

// contains reports whether p falls inside the chunk.
func (c *chunk) contains(p resource.Ptr) bool {
	return p >= c.base && p < c.end()
}

// dynamicPool is a growing pool with first-fit placement. Allocation scans
// free spans across chunks in acquisition order and carves the requested
// prefix off the first span that fits; deallocation reinserts the span and
// immediately merges it with any address-adjacent free neighbor. When no
// span fits, the pool reserves one more chunk - max(size, initialSize) for
// the very first chunk, max(size, subsequentSize) after that - and retries
// the scan once.
type dynamicPool struct {
	backing    AllocationStrategy
	initial    int64
	subsequent int64
	chunks     []*chunk
	actual     int64
	recs       records
}

// Pool returns a Maker for a coalescing pool with the given growth sizes.
func Pool(initialSize, subsequentSize int64) Maker {
	return func(name string, backing AllocationStrategy) (AllocationStrategy, error) {
		if initialSize <= 0 || subsequentSize <= 0 {
			return nil, fmt.Errorf("%w: pool chunk sizes %d/%d", ErrBadConfig,
				initialSize, subsequentSize)
		}
		return &dynamicPool{
			backing:    backing,
			initial:    initialSize,
			subsequent: subsequentSize,
			recs:       newRecords(name),
		}, nil
	}
}

func (d *dynamicPool) Allocate(size int64) (resource.Ptr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %s cannot allocate %d bytes", ErrBadSize, d.recs.owner, size)
	}

	p, ok := d.carve(size)
	if !ok {
		if err := d.grow(size); err != nil {
			return 0, err
		}
		p, ok = d.carve(size)
		if !ok {
			// A fresh chunk of at least size bytes was just added.
			return 0, fmt.Errorf("%s: new chunk cannot place %d bytes", d.recs.owner, size)
		}
	}

	d.recs.add(p, size)
	return p, nil
}

// carve finds the first free span of at least size bytes, in chunk
// acquisition order and address order within each chunk, and splits the
// requested prefix off it.
func (d *dynamicPool) carve(size int64) (resource.Ptr, bool) {
	for _, c := range d.chunks {
		for i := range c.free {
			if c.free[i].size < size {
				continue
			}
			p := c.free[i].addr
			if c.free[i].size == size {
				c.free = append(c.free[:i], c.free[i+1:]...)
			} else {
				c.free[i].addr += resource.Ptr(size)
				c.free[i].size -= size
			}
			return p, true
		}
	}
	return 0, false
}

// grow reserves one more chunk from the backing layer. The new chunk's
// whole span starts free.
func (d *dynamicPool) grow(size int64) error {
	chunkSize := d.subsequent
	if len(d.chunks) == 0 {
		chunkSize = d.initial
	}
	if size > chunkSize {
		chunkSize = size
	}

	base, err := d.backing.Allocate(chunkSize)
	if err != nil {
		// Backing exhaustion surfaces unchanged; the retry policy, if
		// any, belongs to the caller.
		return err
	}

	d.chunks = append(d.chunks, &chunk{
		base: base,
		size: chunkSize,
		free: []span{{addr: base, size: chunkSize}},
	})
	d.actual += chunkSize

	return nil
}

func (d *dynamicPool) Deallocate(p resource.Ptr) error {
	size, err := d.recs.remove(p)
	if err != nil {
		return err
	}

	c := d.chunkOf(p)
	if c == nil {
		// Record table and chunk list disagree; must not happen.
		return fmt.Errorf("%w: %s record 0x%x outside every chunk",
			ErrBadAddress, d.recs.owner, uint64(p))
	}
	c.release(p, size)

	return nil
}

// chunkOf returns the chunk containing p.
func (d *dynamicPool) chunkOf(p resource.Ptr) *chunk {
	for _, c := range d.chunks {
		if c.contains(p) {
			return c
		}
	}
	return nil
}

// release reinserts [p, p+size) into the chunk's free list and merges it
// with the address-adjacent neighbors. Coalescing happens on every release,
// never deferred, so the list can hold no two adjacent unmerged spans.
func (c *chunk) release(p resource.Ptr, size int64) {
	i := sort.Search(len(c.free), func(i int) bool { return c.free[i].addr > p })

	mergePrev := i > 0 && c.free[i-1].addr+resource.Ptr(c.free[i-1].size) == p
	mergeNext := i < len(c.free) && p+resource.Ptr(size) == c.free[i].addr

	switch {
	case mergePrev && mergeNext:
		c.free[i-1].size += size + c.free[i].size
		c.free = append(c.free[:i], c.free[i+1:]...)
	case mergePrev:
		c.free[i-1].size += size
	case mergeNext:
		c.free[i].addr = p
		c.free[i].size += size
	default:
		c.free = append(c.free, span{})
		copy(c.free[i+1:], c.free[i:])
		c.free[i] = span{addr: p, size: size}
	}
}

func (d *dynamicPool) Size(p resource.Ptr) (int64, error) {
	return d.recs.size(p)
}

func (d *dynamicPool) CurrentSize() int64 { return d.recs.current }

func (d *dynamicPool) HighWatermark() int64 { return d.recs.high }

// ActualSize is the sum of all chunk sizes ever reserved. Chunks are never
// released, so this is monotone non-decreasing even as CurrentSize
// fluctuates.
func (d *dynamicPool) ActualSize() int64 { return d.actual }

func (d *dynamicPool) Name() string { return d.recs.owner }

func (d *dynamicPool) Unwrap() AllocationStrategy { return d.backing }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*dynamicPool)(nil)
	_ Unwrapper          = (*dynamicPool)(nil)
)
