package inlinestr

import (
	"fmt"
	"iter"
	"math/bits"
	"unicode/utf8"
)

// At returns the code unit at offset i.
func (v Str[L]) At(i int) (byte, error) {
	if n := v.Len(); i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d out of range [0,%d)", ErrBounds, i, n)
	}
	return v.byteAt(i), nil
}

// checkOffset panics unless 0 <= i <= n.
func checkOffset(i, n int) {
	if i < 0 || i > n {
		panic(fmt.Errorf("%w: offset %d out of range [0,%d]", ErrBounds, i, n))
	}
}

// IsASCII reports whether every content byte is below 0x80. It tests one
// lane at a time and stops at the first high bit.
func (v Str[L]) IsASCII() bool {
	n := v.Len()
	last := len(v.l) - 1
	for j := 0; 4*j < n; j++ {
		m := uint32(highBits)
		if j == last {
			m &^= lengthMask
		}
		if v.l[j]&m != 0 {
			return false
		}
	}
	return true
}

// seqLenAt returns the length of the sequence starting at i when it is
// well formed and complete, and 1 otherwise.
func (v *Str[L]) seqLenAt(i, n int) int {
	m := seqLen(v.byteAt(i))
	if m == 1 || i+m > n {
		return 1
	}
	for k := 1; k < m; k++ {
		if !isContinuation(v.byteAt(i + k)) {
			return 1
		}
	}
	return m
}

// BoundaryAtOrBefore returns the start of the sequence containing offset i.
// It looks at most three bytes back; a byte that no valid leader covers is
// its own boundary. Offset Len() is returned unchanged.
func (v Str[L]) BoundaryAtOrBefore(i int) int {
	n := v.Len()
	checkOffset(i, n)
	if i == n {
		return n
	}
	for k := 0; k < utf8.UTFMax && i-k >= 0; k++ {
		b := v.byteAt(i - k)
		if isContinuation(b) {
			continue
		}
		if k == 0 || v.seqLenAt(i-k, n) > k {
			return i - k
		}
		break
	}
	return i
}

// NextBoundary returns the first boundary after offset i. A malformed
// sequence advances by a single byte.
func (v Str[L]) NextBoundary(i int) int {
	n := v.Len()
	checkOffset(i, n)
	if i == n {
		return n
	}
	s := v.BoundaryAtOrBefore(i)
	if e := s + v.seqLenAt(s, n); e > i {
		return e
	}
	return i + 1
}

// DecodeAt decodes the scalar starting at offset i and returns it with the
// offset of the next one. Malformed bytes decode to utf8.RuneError and
// advance by one; well formed sequences are decoded without rejecting
// overlong forms or surrogates.
func (v Str[L]) DecodeAt(i int) (rune, int) {
	n := v.Len()
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: index %d out of range [0,%d)", ErrBounds, i, n))
	}
	m := v.seqLenAt(i, n)
	var p [4]byte
	for k := 0; k < m; k++ {
		p[k] = v.byteAt(i + k)
	}
	return decodeRune(p, m), i + m
}

// CountScalars counts the scalars that start within [i, j). Bytes that are
// not continuation bytes are counted a lane at a time; a continuation byte
// counts only when no leader covers it, matching what NextBoundary and
// Runes treat as a scalar.
func (v Str[L]) CountScalars(i, j int) int {
	n := v.Len()
	checkOffset(i, n)
	checkOffset(j, n)
	if j <= i {
		return 0
	}
	total := 0
	for q := i >> 2; 4*q < j; q++ {
		lo, hi := max(i, 4*q), min(j, 4*q+4)
		x := v.l[q]
		cont := x &^ (x << 1) & highBits & laneMask(lo-4*q, hi-4*q)
		total += hi - lo - bits.OnesCount32(cont)
		for cont != 0 {
			z := bits.LeadingZeros32(cont)
			if p := 4*q + z/8; v.BoundaryAtOrBefore(p) == p {
				total++
			}
			cont &^= 0x80000000 >> uint(z)
		}
	}
	return total
}

// RuneCount returns the number of scalars in v.
func (v Str[L]) RuneCount() int {
	return v.CountScalars(0, v.Len())
}

// Runes yields each scalar with its starting offset.
func (v Str[L]) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, n := 0, v.Len(); i < n; {
			r, next := v.DecodeAt(i)
			if !yield(i, r) {
				return
			}
			i = next
		}
	}
}

// advance moves forward count scalars from i, stopping at Len().
func (v *Str[L]) advance(i, count int) int {
	n := v.Len()
	for ; count > 0 && i < n; count-- {
		i = v.NextBoundary(i)
	}
	return i
}

// retreat moves back count scalars from j, stopping at floor.
func (v *Str[L]) retreat(j, count, floor int) int {
	for ; count > 0 && j > floor; count-- {
		j = v.BoundaryAtOrBefore(j - 1)
	}
	return max(j, floor)
}
