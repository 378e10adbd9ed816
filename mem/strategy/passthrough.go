package strategy

import "github.com/memkit/memkit/mem/resource"

// passthrough adapts a raw resource to the strategy contract. It adds the
// per-pointer size records and usage counters the resource itself does not
// keep, and nothing else: every reservation goes straight through.
type passthrough struct {
	res  resource.Resource
	recs records
}

// NewPassthrough wraps a raw resource as an AllocationStrategy. The
// registry uses this for the default allocator of each resource kind.
func NewPassthrough(name string, res resource.Resource) AllocationStrategy {
	return &passthrough{res: res, recs: newRecords(name)}
}

func (pt *passthrough) Allocate(size int64) (resource.Ptr, error) {
	p, err := pt.res.Allocate(size)
	if err != nil {
		return 0, err
	}
	pt.recs.add(p, size)
	return p, nil
}

func (pt *passthrough) Deallocate(p resource.Ptr) error {
	if _, err := pt.recs.remove(p); err != nil {
		return err
	}
	return pt.res.Deallocate(p)
}

func (pt *passthrough) Size(p resource.Ptr) (int64, error) {
	return pt.recs.size(p)
}

func (pt *passthrough) CurrentSize() int64 { return pt.recs.current }

func (pt *passthrough) HighWatermark() int64 { return pt.recs.high }

// ActualSize equals CurrentSize for a raw resource: nothing is pooled or
// retained beyond the live reservations.
func (pt *passthrough) ActualSize() int64 { return pt.recs.current }

func (pt *passthrough) Name() string { return pt.recs.owner }

// Resource exposes the adapted raw resource to chain walkers.
func (pt *passthrough) Resource() resource.Resource { return pt.res }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*passthrough)(nil)
	_ ResourceHolder     = (*passthrough)(nil)
)
