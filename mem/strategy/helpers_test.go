package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memkit/memkit/mem/resource"
)

// newTestBacking returns a passthrough over a simulated device resource.
// A capacity of 0 means unlimited.
func newTestBacking(t *testing.T, capacity int64) AllocationStrategy {
	t.Helper()
	return NewPassthrough("DEVICE", resource.NewSim(resource.Device, capacity))
}

// newUMBacking returns a passthrough over a simulated unified-memory
// resource together with the resource, so tests can inspect the advice
// stream.
func newUMBacking(t *testing.T, capacity int64) (AllocationStrategy, *resource.Sim) {
	t.Helper()
	um := resource.NewSim(resource.UnifiedManaged, capacity)
	return NewPassthrough("UM", um), um
}

// errAdviceBroken is what brokenAdviseResource fails with.
var errAdviceBroken = errors.New("advise channel broken")

// brokenAdviseResource is a unified-memory resource whose Advise always
// fails, for exercising the advisor's non-fatal warning path.
type brokenAdviseResource struct {
	*resource.Sim
}

func (b *brokenAdviseResource) Advise(resource.Ptr, int64, resource.Advice, resource.Accessor) error {
	return errAdviceBroken
}

// mustAlloc allocates or fails the test.
func mustAlloc(t *testing.T, s AllocationStrategy, size int64) resource.Ptr {
	t.Helper()
	p, err := s.Allocate(size)
	require.NoError(t, err)
	return p
}
