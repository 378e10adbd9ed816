package strategy

import (
	"fmt"
	"log/slog"

	"github.com/memkit/memkit/mem/resource"
)

// adviceOp describes one registered advice operation.
type adviceOp struct {
	advice        resource.Advice
	needsAccessor bool
}

// adviceOps is the fixed set of recognized advice operation names. An
// unrecognized name fails at construction, never at first allocation.
var adviceOps = map[string]adviceOp{
	"READ_MOSTLY":        {advice: resource.AdviceReadMostly},
	"PREFERRED_LOCATION": {advice: resource.AdvicePreferredLocation, needsAccessor: true},
	"ACCESSED_BY":        {advice: resource.AdviceAccessedBy, needsAccessor: true},
}

// advisor issues placement advice to the unified-memory resource at the
// bottom of the wrapped chain after every successful allocation. Advice is
// a hint: a failed Advise is logged at warning level and counted, and the
// allocation still succeeds.
type advisor struct {
	wrapped  AllocationStrategy
	adviser  resource.Adviser
	advice   resource.Advice
	accessor resource.Accessor
	log      *slog.Logger
	failures int64
	name     string
}

// AdvisorOption configures an Advisor maker.
type AdvisorOption func(*advisorConfig)

type advisorConfig struct {
	accessor resource.Accessor
	log      *slog.Logger
}

// WithAccessor sets the device the advice targets. Required for
// PREFERRED_LOCATION and ACCESSED_BY; ignored by READ_MOSTLY.
func WithAccessor(a resource.Accessor) AdvisorOption {
	return func(cfg *advisorConfig) { cfg.accessor = a }
}

// WithLogger routes advice-failure warnings to the given logger instead of
// the process default.
func WithLogger(l *slog.Logger) AdvisorOption {
	return func(cfg *advisorConfig) { cfg.log = l }
}

// Advisor returns a Maker for a placement-advice decorator issuing the
// named advice operation. Construction fails with ErrBadAdvice when the
// operation name is not registered, when a required accessor is missing, or
// when the backing chain does not bottom out in a resource that accepts
// advice.
func Advisor(operation string, opts ...AdvisorOption) Maker {
	return func(name string, backing AllocationStrategy) (AllocationStrategy, error) {
		op, ok := adviceOps[operation]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a registered advice operation",
				ErrBadAdvice, operation)
		}

		cfg := advisorConfig{accessor: resource.AccessorNone, log: slog.Default()}
		for _, o := range opts {
			o(&cfg)
		}
		if op.needsAccessor && cfg.accessor == resource.AccessorNone {
			return nil, fmt.Errorf("%w: %s requires an accessor", ErrBadAdvice, operation)
		}

		adviser, ok := findAdviser(backing)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not backed by an advisable resource",
				ErrBadAdvice, backing.Name())
		}

		return &advisor{
			wrapped:  backing,
			adviser:  adviser,
			advice:   op.advice,
			accessor: cfg.accessor,
			log:      cfg.log,
			name:     name,
		}, nil
	}
}

func (a *advisor) Allocate(size int64) (resource.Ptr, error) {
	p, err := a.wrapped.Allocate(size)
	if err != nil {
		return 0, err
	}

	if aerr := a.adviser.Advise(p, size, a.advice, a.accessor); aerr != nil {
		a.failures++
		a.log.Warn("placement advice failed",
			"allocator", a.name,
			"addr", fmt.Sprintf("0x%x", uint64(p)),
			"size", size,
			"err", aerr)
	}

	return p, nil
}

func (a *advisor) Deallocate(p resource.Ptr) error {
	return a.wrapped.Deallocate(p)
}

func (a *advisor) Size(p resource.Ptr) (int64, error) {
	return a.wrapped.Size(p)
}

func (a *advisor) CurrentSize() int64 { return a.wrapped.CurrentSize() }

func (a *advisor) HighWatermark() int64 { return a.wrapped.HighWatermark() }

func (a *advisor) ActualSize() int64 { return a.wrapped.ActualSize() }

func (a *advisor) Name() string { return a.name }

func (a *advisor) Unwrap() AllocationStrategy { return a.wrapped }

// AdviceFailures reports how many advice applications have failed since
// construction. Failures never abort the enclosing allocation.
func (a *advisor) AdviceFailures() int64 { return a.failures }

// Compile-time interface checks
var (
	_ AllocationStrategy = (*advisor)(nil)
	_ Unwrapper          = (*advisor)(nil)
)
