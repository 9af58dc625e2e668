/*
Package hashmap provides an open-addressing hash table over byte-sequence
keys mapped to opaque values, with automatic capacity growth and shrinkage.

The table stores borrowed references: it never copies the key bytes or the
value payload, and it never frees them. Callers construct Key and Entry
descriptors, hand entries to the table on insert, and must keep the
referenced key bytes alive for as long as the key is stored.

Basic usage:

	t, err := hashmap.New()
	if err != nil {
		log.Fatal(err)
	}

	err = t.Insert(hashmap.NewEntry([]byte("host"), "10.0.0.1"))

	if v, ok := t.Find(hashmap.NewKey([]byte("host"))); ok {
		fmt.Println(v)
	}

	err = t.Erase(hashmap.NewKey([]byte("host")))

Collisions are resolved by probing with successively larger increments
(1, 2, 3, ...) from the hashed start slot. This probe sequence reaches
every slot exactly once only when the capacity is a power of two, so the
table keeps its capacity a power of two at all times; custom probe
functions installed via WithProbeFunc must work under the same contract.

The table grows (doubling) when the load factor reaches the grow threshold
and shrinks (halving, never below 4 slots) when it falls under the shrink
threshold. There are no tombstones: every erase rebuilds the table so the
remaining probe sequences stay intact. Insert never overwrites: inserting
a key that is already present is rejected with ErrDuplicateKey, and
callers replace a value by erasing first.

A Table must not be used from multiple goroutines without external
synchronization.
*/
package hashmap
