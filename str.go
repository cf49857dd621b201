package inlinestr

import (
	"cmp"
	"fmt"
)

// Str is a string of up to 4*len(L)-1 bytes packed into one fixed-width
// unsigned integer. Content occupies the most significant bytes, left
// aligned; the least significant byte holds the length; every byte between
// the content and the length byte is zero.
//
// Because of that layout, == on two values of the same Str type is string
// equality, and Compare is lexicographic byte order.
type Str[L Lanes] struct {
	l L
}

// Sibling types, named by their byte width.
type (
	Str4   = Str[[1]uint32]
	Str8   = Str[[2]uint32]
	Str16  = Str[[4]uint32]
	Str32  = Str[[8]uint32]
	Str64  = Str[[16]uint32]
	Str128 = Str[[32]uint32]
	Str256 = Str[[64]uint32]
)

// New packs s. It fails with ErrInputTooLong when s has more bytes than the
// capacity allows.
func New[L Lanes](s string) (Str[L], error) {
	var v Str[L]
	if len(s) > v.maxLen() {
		return v, tooLong(len(s), v.Capacity())
	}
	v.load(unsafeStringToBytes(s))
	return v, nil
}

// MustNew is like New but panics on error. It is meant for literals.
func MustNew[L Lanes](s string) Str[L] {
	v, err := New[L](s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSpan packs n bytes of buf starting at off.
func FromSpan[L Lanes](buf []byte, off, n int) (Str[L], error) {
	v, st := fromSpan[L](buf, off, n)
	switch st {
	case StatusShortBuffer:
		return v, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferTooSmall, n, off, len(buf))
	case StatusOverflow:
		return v, tooLong(n, v.Capacity())
	}
	return v, nil
}

func fromSpan[L Lanes](buf []byte, off, n int) (Str[L], Status) {
	var v Str[L]
	if off < 0 || n < 0 || off > len(buf) || len(buf)-off < n {
		return v, StatusShortBuffer
	}
	if n > v.maxLen() {
		return v, StatusOverflow
	}
	v.load(buf[off : off+n])
	return v, StatusOK
}

// FromPointer packs n bytes read from p.
func FromPointer[L Lanes](p *byte, n int) (Str[L], error) {
	var v Str[L]
	if p == nil {
		return v, ErrNullSource
	}
	if n < 0 {
		return v, fmt.Errorf("%w: negative length %d", ErrBufferTooSmall, n)
	}
	if n > v.maxLen() {
		return v, tooLong(n, v.Capacity())
	}
	v.load(pointerBytes(p, n))
	return v, nil
}

// FromCString packs the zero-terminated byte sequence at p. The scan stops
// with ErrInputTooLong as soon as it passes the capacity without finding
// the terminator.
func FromCString[L Lanes](p *byte) (Str[L], error) {
	var v Str[L]
	if p == nil {
		return v, ErrNullSource
	}
	n, ok := scanCString(p, v.maxLen())
	if !ok {
		return v, tooLong(n, v.Capacity())
	}
	v.load(pointerBytes(p, n))
	return v, nil
}

func tooLong(n int, c Capacity) error {
	return fmt.Errorf("%w: %d bytes exceeds %s", ErrInputTooLong, n, c)
}

// Len returns the number of content bytes.
func (v Str[L]) Len() int {
	return int(v.l[len(v.l)-1] & lengthMask)
}

// IsEmpty reports whether v holds no content.
func (v Str[L]) IsEmpty() bool { return v.Len() == 0 }

// Capacity returns the byte width of v's type.
func (v Str[L]) Capacity() Capacity {
	return Capacity(laneBytes * len(v.l))
}

// Cap returns the maximum content length of v's type.
func (v Str[L]) Cap() int { return v.maxLen() }

// SmallestCapacity returns the narrowest capacity that can hold v's content.
func (v Str[L]) SmallestCapacity() Capacity {
	c, _ := CapacityFor(v.Len())
	return c
}

// AppendTo appends v's content to dst.
func (v Str[L]) AppendTo(dst []byte) []byte {
	n := v.Len()
	for j := 0; 4*j < n; j++ {
		w := v.l[j]
		k := min(laneBytes, n-4*j)
		for b := 0; b < k; b++ {
			dst = append(dst, byte(w>>byteShift(b)))
		}
	}
	return dst
}

// String returns the content as an ordinary string.
func (v Str[L]) String() string {
	var buf [256]byte
	return string(v.AppendTo(buf[:0]))
}

// AppendByte adds one code unit. When the value is already full it returns
// v unchanged with overflowed set, and the caller escalates to a wider type.
func (v Str[L]) AppendByte(b byte) (out Str[L], overflowed bool) {
	n := v.Len()
	if n >= v.maxLen() {
		return v, true
	}
	v.setByte(n, b)
	v.setLen(n + 1)
	return v, false
}

// AppendRune adds the UTF-8 encoding of r, all or nothing.
func (v Str[L]) AppendRune(r rune) (out Str[L], overflowed bool) {
	var buf [4]byte
	k := encodeRune(buf[:], r)
	n := v.Len()
	if n+k > v.maxLen() {
		return v, true
	}
	for i := 0; i < k; i++ {
		v.setByte(n+i, buf[i])
	}
	v.setLen(n + k)
	return v, false
}

// Widen converts v to a type at least as wide. It is lossless; asking for
// a narrower type panics with ErrTypeMismatch.
func Widen[To, From Lanes](v Str[From]) Str[To] {
	var w Str[To]
	if len(w.l) < len(v.l) {
		panic(fmt.Errorf("%w: cannot widen %s to %s", ErrTypeMismatch, v.Capacity(), w.Capacity()))
	}
	return convert[To](v)
}

// Narrow converts v to another type, failing with ErrInputTooLong when the
// content does not fit.
func Narrow[To, From Lanes](v Str[From]) (Str[To], error) {
	var w Str[To]
	if v.Len() > w.maxLen() {
		return w, tooLong(v.Len(), w.Capacity())
	}
	return convert[To](v), nil
}

// convert copies the shared lanes and moves the length byte. The low byte
// of the last copied lane is either the source length byte or padding past
// the content, so clearing it is always safe.
func convert[To, From Lanes](v Str[From]) Str[To] {
	var w Str[To]
	k := min(len(w.l), len(v.l))
	for j := 0; j < k; j++ {
		w.l[j] = v.l[j]
	}
	w.l[k-1] &^= lengthMask
	w.setLen(v.Len())
	return w
}

// EqualAcross compares the content of two values of possibly different
// types. A Str1 takes part through EqualStr1 or its Widen.
func EqualAcross[A, B Lanes](a Str[A], b Str[B]) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	return leadingEqual(a, b, n)
}

// leadingEqual compares the first k content bytes of a and b lane by lane.
func leadingEqual[A, B Lanes](a Str[A], b Str[B], k int) bool {
	full := k >> 2
	for j := 0; j < full; j++ {
		if a.l[j] != b.l[j] {
			return false
		}
	}
	if r := k & 3; r != 0 {
		m := laneMask(0, r)
		return a.l[full]&m == b.l[full]&m
	}
	return true
}

// EqualString reports whether v holds exactly the bytes of s.
func (v Str[L]) EqualString(s string) bool {
	if len(s) != v.Len() {
		return false
	}
	var w Str[L]
	w.load(unsafeStringToBytes(s))
	return w == v
}

// Compare orders two values of one type by their raw integer value, which
// is the lexicographic order of their content.
func Compare[L Lanes](a, b Str[L]) int {
	for j := 0; j < len(a.l); j++ {
		if a.l[j] != b.l[j] {
			return cmp.Compare(a.l[j], b.l[j])
		}
	}
	return 0
}

// Less reports whether a sorts before b.
func Less[L Lanes](a, b Str[L]) bool {
	return Compare(a, b) < 0
}

// CompareString compares v's content with s byte-wise.
func (v Str[L]) CompareString(s string) int {
	n := v.Len()
	m := min(n, len(s))
	for i := 0; i < m; i++ {
		if c := v.byteAt(i); c != s[i] {
			return cmp.Compare(c, s[i])
		}
	}
	return cmp.Compare(n, len(s))
}
