package inlinestr

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit hash of v's content. It equals HashString of the
// same content, so inline values and ordinary strings can share map keys.
func (v Str[L]) Hash() uint64 {
	var buf [256]byte
	b := v.AppendTo(buf[:0])
	return mixLength(xxhash.Sum64(b), len(b))
}

// Hash returns the same hash as HashString(c.String()).
func (c Str1) Hash() uint64 {
	b := [1]byte{c.b}
	return mixLength(xxhash.Sum64(b[:]), 1)
}

// HashString hashes an ordinary string the way Str.Hash hashes its content.
func HashString(s string) uint64 {
	return mixLength(xxhash.Sum64String(s), len(s))
}

// mixLength folds the content length into h and runs a final avalanche.
func mixLength(h uint64, n int) uint64 {
	h ^= uint64(n) * 0x9E3779B97F4A7C15
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}
