package hashmap

import (
	log "github.com/sirupsen/logrus"
)

// A ProbeFunc resolves a raw hash value to a slot index. It returns the
// first slot on the key's probe sequence that is either empty or holds an
// equal key, and reports false if no such slot exists (the table is full
// and the key absent).
//
// A custom probe function must visit every slot of the table without
// repetition; TriangularProbe guarantees this only for power-of-two
// capacities, which the table maintains at all times.
type ProbeFunc func(t *Table, hash uint64, key *Key) (int, bool)

// TriangularProbe is the default probe function. It reduces the hash
// modulo the capacity and advances by successively larger increments
// (1, 2, 3, ...) wrapping around, which visits each slot exactly once
// when the capacity is a power of two.
func TriangularProbe(t *Table, hash uint64, key *Key) (int, bool) {
	if t == nil {
		log.Errorf("hashmap: triangular probe called with nil table")
		return 0, false
	}
	n := len(t.slots)
	if n == 0 {
		return 0, false
	}
	idx := int(hash % uint64(n))
	for step := 1; step <= n; step++ {
		e := t.slots[idx]
		if e == nil || Compare(e.key, key) == 0 {
			return idx, true
		}
		idx = (idx + step) % n
	}
	return 0, false
}
