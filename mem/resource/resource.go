package resource

// Ptr is an opaque address handed out by a Resource. Strategies treat it as
// a number: they split, offset and compare addresses but never dereference
// them, so simulated address spaces and real mappings compose identically.
type Ptr uint64

// Kind identifies the memory space a Resource draws from.
type Kind uint8

const (
	Host Kind = iota + 1
	Device
	UnifiedManaged
	PinnedHost
)

// resourceNames are the canonical registry names for the default resources.
var resourceNames = map[Kind]string{
	Host:           "HOST",
	Device:         "DEVICE",
	UnifiedManaged: "UM",
	PinnedHost:     "PINNED",
}

// String returns the canonical name for the kind ("HOST", "DEVICE", "UM",
// "PINNED"), or "UNKNOWN" for an invalid value.
func (k Kind) String() string {
	if n, ok := resourceNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// Kinds returns every defined resource kind in declaration order.
func Kinds() []Kind {
	return []Kind{Host, Device, UnifiedManaged, PinnedHost}
}

// Resource is one raw memory primitive. Allocate reserves a contiguous
// range and returns its base address; Deallocate releases a range previously
// returned by Allocate on the same resource.
//
// Implementations:
//   - hostResource: real anonymous mappings (NewHost)
//   - simResource: capacity-enforced simulated space (NewSim)
type Resource interface {
	// Allocate reserves size bytes. It fails with ErrExhausted when the
	// resource cannot satisfy the reservation and ErrBadSize for a
	// non-positive size.
	Allocate(size int64) (Ptr, error)

	// Deallocate releases the range starting at p. It fails with
	// ErrBadAddress if p is not a live address of this resource.
	Deallocate(p Ptr) error

	// Name returns the canonical resource name.
	Name() string

	// Kind returns the memory space this resource draws from.
	Kind() Kind
}

// Advice is a non-binding residency hint for unified memory.
type Advice uint8

const (
	// AdviceReadMostly marks a range as mostly read, rarely written.
	AdviceReadMostly Advice = iota + 1

	// AdvicePreferredLocation sets the preferred physical residency of a
	// range to the accessor's memory.
	AdvicePreferredLocation

	// AdviceAccessedBy declares that the accessor will access the range,
	// keeping a mapping established there.
	AdviceAccessedBy
)

// Accessor identifies the device an advice applies to. Non-negative values
// are device ordinals.
type Accessor int

const (
	// AccessorNone means the advice takes no accessor.
	AccessorNone Accessor = -2

	// AccessorCPU targets the host processor.
	AccessorCPU Accessor = -1
)

// Adviser is implemented by resources that accept placement advice.
// Advice is a hint: a failed Advise never invalidates the allocation it
// refers to.
type Adviser interface {
	Advise(p Ptr, size int64, advice Advice, accessor Accessor) error
}
