package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem/resource"
)

const elemSize = int64(400) // stands in for a 100-int struct

func TestFixedPool_FirstAllocReservesFullChunk(t *testing.T) {
	backing := newTestBacking(t, 0)

	f, err := FixedPool(elemSize)("fixed", backing)
	require.NoError(t, err)
	require.Equal(t, int64(0), f.ActualSize())

	p := mustAlloc(t, f, 100)

	// One chunk of 64 slots is reserved on first use.
	require.GreaterOrEqual(t, f.ActualSize(), elemSize*64)

	// Size reports the element size, not the requested 100 bytes.
	size, err := f.Size(p)
	require.NoError(t, err)
	require.Equal(t, elemSize, size)

	require.Equal(t, elemSize, f.CurrentSize())
	require.Equal(t, elemSize, f.HighWatermark())
}

func TestFixedPool_RequestLargerThanElementFails(t *testing.T) {
	backing := newTestBacking(t, 0)

	f, err := FixedPool(elemSize)("fixed", backing)
	require.NoError(t, err)

	_, err = f.Allocate(elemSize + 1)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = f.Allocate(0)
	require.ErrorIs(t, err, ErrBadSize)

	// The element size itself is the largest valid request.
	p, err := f.Allocate(elemSize)
	require.NoError(t, err)
	require.NoError(t, f.Deallocate(p))
}

func TestFixedPool_SlotReuseKeepsActualSizeFlat(t *testing.T) {
	backing := newTestBacking(t, 0)

	f, err := FixedPool(64)("fixed", backing)
	require.NoError(t, err)

	// Drain the whole first chunk so the free-slot queue runs empty.
	ptrs := make([]resource.Ptr, slotsPerChunk)
	for i := range ptrs {
		ptrs[i] = mustAlloc(t, f, 64)
	}
	after := f.ActualSize()

	require.NoError(t, f.Deallocate(ptrs[7]))
	p2 := mustAlloc(t, f, 64)

	require.Equal(t, after, f.ActualSize(), "freed slot must be recycled, not a new chunk")
	require.Equal(t, ptrs[7], p2, "the freed slot is the only free one")
}

func TestFixedPool_GrowsByWholeChunks(t *testing.T) {
	backing := newTestBacking(t, 0)

	f, err := FixedPool(64)("fixed", backing)
	require.NoError(t, err)

	// Drain the first chunk completely.
	for i := 0; i < slotsPerChunk; i++ {
		mustAlloc(t, f, 64)
	}
	require.Equal(t, int64(64*slotsPerChunk), f.ActualSize())

	// Slot 65 forces a second chunk.
	mustAlloc(t, f, 64)
	require.Equal(t, int64(64*slotsPerChunk*2), f.ActualSize())
	require.Equal(t, int64(64*(slotsPerChunk+1)), f.CurrentSize())
}

func TestFixedPool_BackingExhaustionSurfaces(t *testing.T) {
	// Room for less than one chunk of 64 slots.
	backing := newTestBacking(t, 64*slotsPerChunk-1)

	f, err := FixedPool(64)("fixed", backing)
	require.NoError(t, err)

	_, err = f.Allocate(64)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestFixedPool_InvalidElementSize(t *testing.T) {
	backing := newTestBacking(t, 0)

	_, err := FixedPool(0)("fixed", backing)
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestFixedPool_DeallocateUnknownAddress(t *testing.T) {
	backing := newTestBacking(t, 0)

	f, err := FixedPool(64)("fixed", backing)
	require.NoError(t, err)

	require.ErrorIs(t, f.Deallocate(12345), ErrBadAddress)
}
