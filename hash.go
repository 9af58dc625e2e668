package hashmap

import "github.com/cespare/xxhash/v2"

// A HashFunc maps a key to a raw hash value. It must be a deterministic
// pure function of the key bytes. The prime is the table's multiplier
// constant; hash functions that do not need one ignore it.
type HashFunc func(key *Key, prime uint64) uint64

// PolynomialHash is the default hash function: a rolling polynomial over
// the key bytes, h = h*prime + b, seeded at 0 and iterated left to right.
func PolynomialHash(key *Key, prime uint64) uint64 {
	if key == nil {
		return 0
	}
	var h uint64
	for _, b := range key.data {
		h = h*prime + uint64(b)
	}
	return h
}

// XXHash hashes the key bytes with xxHash64. It ignores the prime.
func XXHash(key *Key, _ uint64) uint64 {
	if key == nil {
		return 0
	}
	return xxhash.Sum64(key.data)
}
