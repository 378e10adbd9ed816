package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSim_CapacityEnforced(t *testing.T) {
	s := NewSim(Device, 1024)

	p1, err := s.Allocate(512)
	require.NoError(t, err)
	_, err = s.Allocate(512)
	require.NoError(t, err)

	_, err = s.Allocate(1)
	require.ErrorIs(t, err, ErrExhausted)

	// Releasing a reservation makes the space available again.
	require.NoError(t, s.Deallocate(p1))
	_, err = s.Allocate(512)
	require.NoError(t, err)
	require.Equal(t, int64(1024), s.InUse())
}

func TestSim_UnlimitedCapacity(t *testing.T) {
	s := NewSim(Device, 0)

	_, err := s.Allocate(1 << 40)
	require.NoError(t, err)
}

func TestSim_BadRequests(t *testing.T) {
	s := NewSim(Device, 1024)

	_, err := s.Allocate(0)
	require.ErrorIs(t, err, ErrBadSize)

	require.ErrorIs(t, s.Deallocate(Ptr(0x1234)), ErrBadAddress)
}

func TestSim_AddressSpacesDisjointAcrossKinds(t *testing.T) {
	dev := NewSim(Device, 0)
	um := NewSim(UnifiedManaged, 0)

	p1, err := dev.Allocate(4096)
	require.NoError(t, err)
	p2, err := um.Allocate(4096)
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)

	// An address from another kind's space is never live here.
	require.ErrorIs(t, dev.Deallocate(p2), ErrBadAddress)
}

func TestSim_AdviseOnlyOnUnifiedMemory(t *testing.T) {
	dev := NewSim(Device, 0)
	p, err := dev.Allocate(128)
	require.NoError(t, err)
	require.ErrorIs(t, dev.Advise(p, 128, AdviceReadMostly, AccessorNone), ErrBadAdvice)

	um := NewSim(UnifiedManaged, 0)
	p, err = um.Allocate(128)
	require.NoError(t, err)
	require.NoError(t, um.Advise(p, 128, AdviceReadMostly, AccessorNone))

	require.ErrorIs(t, um.Advise(p, 128, Advice(99), AccessorNone), ErrBadAdvice)
	require.ErrorIs(t, um.Advise(Ptr(0xdead), 128, AdviceReadMostly, AccessorNone), ErrBadAddress)
}

func TestSim_AdviseOnInteriorRange(t *testing.T) {
	um := NewSim(UnifiedManaged, 0)
	p, err := um.Allocate(4096)
	require.NoError(t, err)

	// Advice over a sub-range of the reservation is valid.
	require.NoError(t, um.Advise(p+100, 256, AdvicePreferredLocation, AccessorCPU))

	events := um.AdviceEvents()
	require.Len(t, events, 1)
	require.Equal(t, p+100, events[0].Addr)
	require.Equal(t, AccessorCPU, events[0].Accessor)
}

func TestHost_RoundTrip(t *testing.T) {
	h := NewHost()
	require.Equal(t, "HOST", h.Name())
	require.Equal(t, Host, h.Kind())

	p, err := h.Allocate(1 << 16)
	require.NoError(t, err)
	require.NotZero(t, p)

	require.NoError(t, h.Deallocate(p))
	require.ErrorIs(t, h.Deallocate(p), ErrBadAddress)
}

func TestHost_BadSize(t *testing.T) {
	h := NewHost()

	_, err := h.Allocate(0)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = h.Allocate(-4096)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestKind_Names(t *testing.T) {
	require.Equal(t, "HOST", Host.String())
	require.Equal(t, "DEVICE", Device.String())
	require.Equal(t, "UM", UnifiedManaged.String())
	require.Equal(t, "PINNED", PinnedHost.String())
	require.Equal(t, "UNKNOWN", Kind(42).String())
}
