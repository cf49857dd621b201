package inlinestr

import (
	"cmp"
	"fmt"
	"iter"
)

// Str1 is the capacity-1 sibling: exactly one content byte and no length
// byte. Transforms widen it to Str4 before touching any bits.
type Str1 struct {
	b byte
}

// NewStr1 packs a one-byte string. Any other length does not fit.
func NewStr1(s string) (Str1, error) {
	if len(s) != 1 {
		return Str1{}, fmt.Errorf("%w: %d bytes does not fit %s", ErrInputTooLong, len(s), Cap1)
	}
	return Str1{b: s[0]}, nil
}

// Str1Of wraps a single code unit.
func Str1Of(b byte) Str1 { return Str1{b: b} }

// NarrowStr1 converts a value holding exactly one byte to Str1.
func NarrowStr1[L Lanes](v Str[L]) (Str1, error) {
	if v.Len() != 1 {
		return Str1{}, fmt.Errorf("%w: %d bytes does not fit %s", ErrInputTooLong, v.Len(), Cap1)
	}
	return Str1{b: v.byteAt(0)}, nil
}

// Byte returns the content byte.
func (c Str1) Byte() byte { return c.b }

// Len is always 1.
func (c Str1) Len() int { return 1 }

// Capacity returns Cap1.
func (c Str1) Capacity() Capacity { return Cap1 }

func (c Str1) String() string { return string([]byte{c.b}) }

// At returns the code unit at i.
func (c Str1) At(i int) (byte, error) {
	if i != 0 {
		return 0, fmt.Errorf("%w: index %d out of range [0,1)", ErrBounds, i)
	}
	return c.b, nil
}

// IsASCII reports whether the byte is below 0x80.
func (c Str1) IsASCII() bool { return c.b < 0x80 }

// AppendByte always overflows: the caller continues in Widen().
func (c Str1) AppendByte(byte) (Str1, bool) { return c, true }

// Widen returns the Str4 holding the same byte.
func (c Str1) Widen() Str4 {
	var w Str4
	w.setByte(0, c.b)
	w.setLen(1)
	return w
}

// EqualString reports whether s is exactly the one byte of c.
func (c Str1) EqualString(s string) bool {
	return len(s) == 1 && s[0] == c.b
}

// EqualStr1 reports whether v holds exactly the byte of c.
func EqualStr1[L Lanes](c Str1, v Str[L]) bool {
	return v.Len() == 1 && v.byteAt(0) == c.b
}

// CompareStr1 orders capacity-1 values by their byte.
func CompareStr1(a, b Str1) int { return cmp.Compare(a.b, b.b) }

// Runes yields the single scalar, RuneError unless it is ASCII.
func (c Str1) Runes() iter.Seq2[int, rune] {
	return c.Widen().Runes()
}

func (c Str1) Chop(head, tail int) Str4       { return c.Widen().Chop(head, tail) }
func (c Str1) Chomp() Str4                    { return c.Widen().Chomp() }
func (c Str1) TakeFirst(n int) Str4           { return c.Widen().TakeFirst(n) }
func (c Str1) TakeLast(n int) Str4            { return c.Widen().TakeLast(n) }
func (c Str1) Reverse() Str4                  { return c.Widen() }
func (c Str1) StripPrefix(prefix string) Str4 { return c.Widen().StripPrefix(prefix) }
func (c Str1) StripSuffix(suffix string) Str4 { return c.Widen().StripSuffix(suffix) }
