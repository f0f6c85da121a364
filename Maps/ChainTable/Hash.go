package ChainTable

import "github.com/cespare/xxhash"

// Hasher maps key to a bucket index in [0,capacity). capacity is never 0.
type Hasher func(key string, capacity uint) uint

// AdditiveHash sums the bytes of key on top of 1, modulo capacity. It is weak: anagrams always collide and keys of
// similar length cluster. It is the default Hasher.
func AdditiveHash(key string, capacity uint) uint {
	h := uint(1)
	for i := range len(key) {
		h += uint(key[i])
	}
	return h % capacity
}

// XXHash spreads keys with xxHash64.
func XXHash(key string, capacity uint) uint {
	return uint(xxhash.Sum64String(key) % uint64(capacity))
}
