package hashmap

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultCapacity is the slot count a table starts with.
	DefaultCapacity = 4

	// MinCapacity is the floor below which shrinking never goes.
	MinCapacity = 4

	// DefaultPrime is the multiplier of the default polynomial hash.
	DefaultPrime = 313

	// DefaultGrowThreshold is the load factor at which the table doubles.
	DefaultGrowThreshold = 0.8

	// DefaultShrinkThreshold is the load factor under which the table halves.
	DefaultShrinkThreshold = 0.2

	// maxCapacity bounds the default allocator.
	maxCapacity = 1 << 30
)

// An AllocFunc allocates a slot array of n slots. It is the table's
// memory-allocation collaborator: create and resize go through it, and an
// error from it fails closed as ErrAllocation.
type AllocFunc func(n int) ([]*Entry, error)

func defaultAlloc(n int) ([]*Entry, error) {
	if n <= 0 || n > maxCapacity {
		return nil, errors.Wrapf(ErrAllocation, "slot count %d out of range", n)
	}
	return make([]*Entry, n), nil
}

// allocationError folds arbitrary allocator failures into the
// ErrAllocation class so callers can test with errors.Is.
func allocationError(err error) error {
	if errors.Is(err, ErrAllocation) {
		return err
	}
	return errors.Wrapf(ErrAllocation, "%v", err)
}

// A Table is an open-addressing hash table. The zero value is not usable;
// construct with New. A Table must not be shared between goroutines
// without external locking.
//
// The slot array holds owned entry records; a nil slot is empty. The
// capacity is a power of two at all times, which the default probe
// function relies on for full-cycle coverage.
type Table struct {
	slots []*Entry
	count int

	hashFunc        HashFunc
	probeFunc       ProbeFunc
	prime           uint64
	growThreshold   float64
	shrinkThreshold float64

	log   log.FieldLogger
	alloc AllocFunc

	initCap int
}

// New creates an empty table. Without options it starts at capacity 4
// with the polynomial hash (prime 313), the triangular probe and the 0.8
// grow / 0.2 shrink thresholds. Returns ErrInvalidArgument for bad option
// values and ErrAllocation if the slot array cannot be allocated.
func New(opts ...Option) (*Table, error) {
	t := &Table{
		hashFunc:        PolynomialHash,
		probeFunc:       TriangularProbe,
		prime:           DefaultPrime,
		growThreshold:   DefaultGrowThreshold,
		shrinkThreshold: DefaultShrinkThreshold,
		log:             log.StandardLogger(),
		alloc:           defaultAlloc,
		initCap:         DefaultCapacity,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	slots, err := t.alloc(t.initCap)
	if err != nil {
		return nil, allocationError(err)
	}
	t.slots = slots
	return t, nil
}

// Close releases the slot array and neutralizes the table; every later
// operation fails with ErrInvalidArgument. Stored entries, their key
// bytes and their values are not disposed; that stays with whoever
// created them.
func (t *Table) Close() error {
	if t == nil || t.slots == nil {
		return ErrInvalidArgument
	}
	t.slots = nil
	t.count = 0
	t.hashFunc = nil
	t.probeFunc = nil
	t.prime = 0
	t.growThreshold = 0
	t.shrinkThreshold = 0
	return nil
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Cap returns the current slot count.
func (t *Table) Cap() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// Slot returns the entry stored at slot i, or nil if the slot is empty or
// i is out of range. It exists for custom probe functions; ordinary
// callers use Find.
func (t *Table) Slot(i int) *Entry {
	if t == nil || i < 0 || i >= len(t.slots) {
		return nil
	}
	return t.slots[i]
}

// Insert places the entry into the table, taking ownership of the entry
// record. The key bytes and value payload stay caller-owned.
//
// If the key is already present the table is left untouched and
// ErrDuplicateKey is returned; erase first to replace a value. Crossing
// the grow threshold doubles the table before placement; a failed grow is
// logged and absorbed, and the insert proceeds against the unresized
// table (failing with ErrAllocation only if that table is full).
func (t *Table) Insert(e *Entry) error {
	if t == nil || t.slots == nil || e == nil || e.key == nil {
		return ErrInvalidArgument
	}
	if float64(t.count) >= float64(len(t.slots))*t.growThreshold {
		if err := t.grow(); err != nil {
			t.log.Errorf("hashmap: grow failed, continuing at capacity %d: %v", len(t.slots), err)
		}
	}
	idx, ok := t.probeFunc(t, t.hashFunc(e.key, t.prime), e.key)
	if !ok {
		return errors.Wrap(ErrAllocation, "table full")
	}
	if t.slots[idx] != nil {
		return ErrDuplicateKey
	}
	t.slots[idx] = e
	t.count++
	return nil
}

// Find returns the value stored under the key. The second return value
// reports presence, so a stored nil value is distinguishable from an
// absent key. A nil table or key yields (nil, false).
func (t *Table) Find(key *Key) (any, bool) {
	if t == nil || t.slots == nil || key == nil {
		return nil, false
	}
	idx, ok := t.probeFunc(t, t.hashFunc(key, t.prime), key)
	if !ok {
		return nil, false
	}
	if e := t.slots[idx]; e != nil {
		return e.Value, true
	}
	return nil, false
}

// Erase removes the key's entry from the table. The entry record and its
// key bytes and value are not freed. Returns ErrNotFound if the key is
// absent.
//
// Clearing a slot can cut the probe sequences of colliding keys, so the
// table keeps no tombstones and instead rebuilds after every successful
// erase: halving when the load factor has fallen under the shrink
// threshold (never below MinCapacity), at the same capacity otherwise.
// A failed rebuild is logged and absorbed; the erase itself still
// succeeds.
func (t *Table) Erase(key *Key) error {
	if t == nil || t.slots == nil || key == nil {
		return ErrInvalidArgument
	}
	idx, ok := t.probeFunc(t, t.hashFunc(key, t.prime), key)
	if !ok || t.slots[idx] == nil {
		return ErrNotFound
	}
	t.slots[idx] = nil
	t.count--

	newCap := len(t.slots)
	if float64(t.count) < float64(newCap)*t.shrinkThreshold && newCap > MinCapacity {
		newCap /= 2
	}
	if err := t.rehash(newCap); err != nil {
		t.log.Errorf("hashmap: rehash after erase failed, continuing at capacity %d: %v", len(t.slots), err)
	}
	return nil
}

func (t *Table) grow() error {
	return t.rehash(len(t.slots) * 2)
}

// rehash rebuilds the slot array at newCap, re-inserting every occupied
// slot through the regular insert path against the new capacity. After a
// doubling the load factor is at most half the grow threshold, so these
// re-insertions cannot trigger another grow. If allocation fails the
// table keeps its old array and capacity.
func (t *Table) rehash(newCap int) error {
	newSlots, err := t.alloc(newCap)
	if err != nil {
		return allocationError(err)
	}
	old := t.slots
	t.slots = newSlots
	t.count = 0
	for _, e := range old {
		if e == nil {
			continue
		}
		if err := t.Insert(e); err != nil {
			t.log.Errorf("hashmap: entry lost during rehash to %d slots: %v", newCap, err)
		}
	}
	return nil
}
