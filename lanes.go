package inlinestr

import "encoding/binary"

// Lanes is the set of lane arrays that back a Str. Each lane holds four bytes
// of one big-endian unsigned integer: lane 0 is the most significant, and the
// low byte of the last lane is the length byte.
//
// Only a zero index may be written as a constant against a value of type L;
// every other index must be computed, since the shortest array has one lane.
type Lanes interface {
	[1]uint32 | [2]uint32 | [4]uint32 | [8]uint32 | [16]uint32 | [32]uint32 | [64]uint32
}

const (
	laneBytes = 4
	laneBits  = 32

	lengthMask = 0xFF       // length byte inside the last lane
	highBits   = 0x80808080 // top bit of every byte in a lane
)

// laneMask returns ones in bytes [a, b) of a lane, byte 0 being the most
// significant. Shifts of 32 yield zero in Go, so b == 4 selects to the end.
func laneMask(a, b int) uint32 {
	return (^uint32(0) >> (8 * uint(a))) &^ (^uint32(0) >> (8 * uint(b)))
}

// byteShift is the left shift that places byte i at its position in a lane.
func byteShift(i int) uint {
	return uint(24 - 8*(i&3))
}

func (v *Str[L]) lanes() int { return len(v.l) }

// maxLen is the largest content length the value can hold.
func (v *Str[L]) maxLen() int { return laneBytes*len(v.l) - 1 }

func (v *Str[L]) byteAt(i int) byte {
	return byte(v.l[i>>2] >> byteShift(i))
}

func (v *Str[L]) setByte(i int, b byte) {
	sh := byteShift(i)
	q := i >> 2
	v.l[q] = v.l[q]&^(0xFF<<sh) | uint32(b)<<sh
}

func (v *Str[L]) setLen(n int) {
	last := len(v.l) - 1
	v.l[last] = v.l[last]&^lengthMask | uint32(n)
}

// load packs b into a zero value four bytes at a time and writes the length.
// Callers have already checked that b fits.
func (v *Str[L]) load(b []byte) {
	q := len(b) >> 2
	for j := 0; j < q; j++ {
		v.l[j] = binary.BigEndian.Uint32(b[4*j:])
	}
	if rem := len(b) & 3; rem != 0 {
		var w uint32
		for k := 0; k < rem; k++ {
			w |= uint32(b[4*q+k]) << byteShift(k)
		}
		v.l[q] = w
	}
	v.setLen(len(b))
}

// shiftLeft moves every byte k positions toward the most significant end,
// filling the vacated low bytes with zero. The length byte moves too, so
// callers rewrite it afterwards.
func (v *Str[L]) shiftLeft(k int) {
	if k <= 0 {
		return
	}
	n := len(v.l)
	q, r := k>>2, uint(k&3)*8
	for j := 0; j < n; j++ {
		var hi, lo uint32
		if j+q < n {
			hi = v.l[j+q]
		}
		if j+q+1 < n {
			lo = v.l[j+q+1]
		}
		if r == 0 {
			v.l[j] = hi
		} else {
			v.l[j] = hi<<r | lo>>(laneBits-r)
		}
	}
}

// clearFrom zeroes every byte from offset n to the end, length byte included.
func (v *Str[L]) clearFrom(n int) {
	q := n >> 2
	if r := n & 3; r != 0 {
		v.l[q] &= laneMask(0, r)
		q++
	}
	for ; q < len(v.l); q++ {
		v.l[q] = 0
	}
}

// keep returns the bytes [start, end) realigned to offset zero with the
// padding and length rewritten.
func (v Str[L]) keep(start, end int) Str[L] {
	if start == 0 && end == v.Len() {
		return v
	}
	v.shiftLeft(start)
	v.clearFrom(end - start)
	v.setLen(end - start)
	return v
}

// chunk extracts width bits starting at bit pos, counted from the least
// significant bit of the whole integer. Bits past the top read as zero.
func (v *Str[L]) chunk(pos, width uint) uint32 {
	n := len(v.l)
	li := n - 1 - int(pos/laneBits)
	if li < 0 {
		return 0
	}
	off := pos % laneBits
	x := uint64(v.l[li]) >> off
	if off+width > laneBits && li > 0 {
		x |= uint64(v.l[li-1]) << (laneBits - off)
	}
	return uint32(x) & (1<<width - 1)
}
