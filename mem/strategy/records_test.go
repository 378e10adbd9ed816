package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem/resource"
)

func TestRecords_SumOfLiveSizesEqualsCurrent(t *testing.T) {
	r := newRecords("test")

	r.add(0x1000, 100)
	r.add(0x2000, 200)
	r.add(0x3000, 300)

	var sum int64
	for _, size := range r.live {
		sum += size
	}
	require.Equal(t, sum, r.current)
	require.Equal(t, int64(600), r.high)

	size, err := r.remove(0x2000)
	require.NoError(t, err)
	require.Equal(t, int64(200), size)
	require.Equal(t, int64(400), r.current)
	require.Equal(t, int64(600), r.high)
}

func TestRecords_MissReportsOwner(t *testing.T) {
	r := newRecords("scratch_pool")

	_, err := r.remove(0xabc)
	require.ErrorIs(t, err, ErrBadAddress)
	require.ErrorContains(t, err, "scratch_pool")

	_, err = r.size(0xabc)
	require.ErrorIs(t, err, ErrBadAddress)
}

func TestPassthrough_ActualTracksCurrent(t *testing.T) {
	pt := NewPassthrough("DEVICE", resource.NewSim(resource.Device, 0))

	p1 := mustAlloc(t, pt, 100)
	p2 := mustAlloc(t, pt, 50)
	require.Equal(t, int64(150), pt.CurrentSize())
	require.Equal(t, int64(150), pt.ActualSize())

	require.NoError(t, pt.Deallocate(p1))
	require.Equal(t, int64(50), pt.CurrentSize())
	require.Equal(t, int64(50), pt.ActualSize())
	require.Equal(t, int64(150), pt.HighWatermark())

	require.NoError(t, pt.Deallocate(p2))
	require.ErrorIs(t, pt.Deallocate(p2), ErrBadAddress)
}
