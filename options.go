package hashmap

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// An Option adjusts table policy at construction time. Policy is fixed
// once New returns; there is no per-call or runtime reconfiguration.
type Option func(*Table) error

// WithCapacity sets the initial slot count. It must be a power of two and
// at least MinCapacity.
func WithCapacity(n int) Option {
	return func(t *Table) error {
		if n < MinCapacity || n&(n-1) != 0 {
			return errors.Wrapf(ErrInvalidArgument, "capacity %d is not a power of two >= %d", n, MinCapacity)
		}
		t.initCap = n
		return nil
	}
}

// WithHashFunc replaces the default polynomial hash. The function must be
// a deterministic pure function of the key bytes.
func WithHashFunc(fn HashFunc) Option {
	return func(t *Table) error {
		if fn == nil {
			return errors.Wrap(ErrInvalidArgument, "nil hash function")
		}
		t.hashFunc = fn
		return nil
	}
}

// WithProbeFunc replaces the default triangular probe. The function must
// visit every slot without repetition for power-of-two capacities; see
// the ProbeFunc contract.
func WithProbeFunc(fn ProbeFunc) Option {
	return func(t *Table) error {
		if fn == nil {
			return errors.Wrap(ErrInvalidArgument, "nil probe function")
		}
		t.probeFunc = fn
		return nil
	}
}

// WithThresholds sets the load factors that trigger growth and shrinkage.
// Both must lie in (0, 1) with shrink < grow.
func WithThresholds(grow, shrink float64) Option {
	return func(t *Table) error {
		if shrink <= 0 || grow >= 1 || shrink >= grow {
			return errors.Wrapf(ErrInvalidArgument, "thresholds grow=%v shrink=%v must satisfy 0 < shrink < grow < 1", grow, shrink)
		}
		t.growThreshold = grow
		t.shrinkThreshold = shrink
		return nil
	}
}

// WithPrime sets the multiplier constant handed to the hash function.
func WithPrime(p uint64) Option {
	return func(t *Table) error {
		if p < 2 {
			return errors.Wrapf(ErrInvalidArgument, "prime %d must be >= 2", p)
		}
		t.prime = p
		return nil
	}
}

// WithLogger sets the sink for advisory diagnostics (absorbed resize
// failures, internal invariant violations). Diagnostics never influence
// control flow. The default is the process-wide logrus logger.
func WithLogger(l log.FieldLogger) Option {
	return func(t *Table) error {
		if l == nil {
			return errors.Wrap(ErrInvalidArgument, "nil logger")
		}
		t.log = l
		return nil
	}
}

// WithAllocator replaces the slot-array allocator. The allocator must
// either return an array of exactly n slots or an error; the table treats
// any error as ErrAllocation-class and fails closed.
func WithAllocator(fn AllocFunc) Option {
	return func(t *Table) error {
		if fn == nil {
			return errors.Wrap(ErrInvalidArgument, "nil allocator")
		}
		t.alloc = fn
		return nil
	}
}
