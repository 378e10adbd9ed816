package strategy

import (
	"fmt"

	"github.com/memkit/memkit/mem/resource"
)

// records is the per-strategy allocation table: one live entry per
// outstanding address plus the current/high-watermark counters every
// strategy maintains identically. The invariant is that the sum of live
// record sizes always equals current.
type records struct {
	owner   string
	live    map[resource.Ptr]int64
	current int64
	high    int64
}

func newRecords(owner string) records {
	return records{owner: owner, live: make(map[resource.Ptr]int64)}
}

// add records a successful allocation and advances the watermark.
func (r *records) add(p resource.Ptr, size int64) {
	r.live[p] = size
	r.current += size
	if r.current > r.high {
		r.high = r.current
	}
}

// remove drops the record for p and returns its size.
func (r *records) remove(p resource.Ptr) (int64, error) {
	size, ok := r.live[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no record for 0x%x", ErrBadAddress, r.owner, uint64(p))
	}
	delete(r.live, p)
	r.current -= size
	return size, nil
}

// size reports the recorded size for p without mutating the table.
func (r *records) size(p resource.Ptr) (int64, error) {
	size, ok := r.live[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no record for 0x%x", ErrBadAddress, r.owner, uint64(p))
	}
	return size, nil
}
