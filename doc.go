// Package inlinestr provides fixed-width string values that pack a short
// UTF-8 string and its length into one unsigned integer.
//
// # Layout
//
// A value of capacity C is a C*8-bit big-endian integer. The content fills
// the most significant bytes, left aligned; the least significant byte
// holds the length; every byte in between is zero:
//
//	"hi" as Str8:   68 69 00 00 00 00 00 02
//	                 h  i  padding ...    len
//
// The zero padding makes two things cheap: equality is == on the value,
// and comparing the integers compares the strings lexicographically, a
// strict prefix sorting first. RadixSort uses the second property to sort
// on the raw bits without decoding anything.
//
// # Sibling types
//
//	Str1    1 byte, always exactly one content byte, no length byte
//	Str4    up to 3 bytes
//	Str8    up to 7 bytes
//	Str16   up to 15 bytes
//	Str32   up to 31 bytes
//	Str64   up to 63 bytes
//	Str128  up to 127 bytes
//	Str256  up to 255 bytes
//
// Str4 through Str256 are instantiations of one generic type, Str[L], where
// L is a lane array of uint32. Longer content belongs in an ordinary
// string; CapacityFor and Promote resolve which representation to use.
//
// # Basic usage
//
//	v, err := inlinestr.New[[2]uint32]("banana") // a Str8
//	if err != nil {
//	    // ErrInputTooLong: escalate to a wider type
//	}
//	v = v.Chop(1, 2)          // "ana"
//	w := inlinestr.Widen[[4]uint32](v)
//	_ = w.Hash() == inlinestr.HashString("ana") // true
//
//	col := []inlinestr.Str8{...}
//	inlinestr.Sort(col)
//
// # UTF-8
//
// Navigation and transforms respect UTF-8 scalar boundaries and never split
// a well formed sequence. Malformed bytes are tolerated and treated as one
// code unit each. There is no normalization, collation or grapheme logic.
//
// # Concurrency
//
// Values are plain data and every operation is a pure function. Each sort
// call takes its histogram buffers from a pool and shares nothing else, so
// independent slices can be sorted from different goroutines.
package inlinestr
