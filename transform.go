package inlinestr

import (
	"fmt"
	"math/bits"
)

// Matcher finds a pattern in a string. *regexp.Regexp satisfies it.
type Matcher interface {
	FindStringIndex(s string) []int
	FindAllStringIndex(s string, n int) [][]int
}

func checkCount(name string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative %s %d", ErrBounds, name, n))
	}
}

// Chop drops head scalars from the front and tail scalars from the back.
func (v Str[L]) Chop(head, tail int) Str[L] {
	checkCount("head", head)
	checkCount("tail", tail)
	start := v.advance(0, head)
	end := v.retreat(v.Len(), tail, start)
	return v.keep(start, end)
}

// Chomp drops one trailing "\n" or "\r\n".
func (v Str[L]) Chomp() Str[L] {
	n := v.Len()
	switch {
	case n >= 2 && v.byteAt(n-2) == '\r' && v.byteAt(n-1) == '\n':
		return v.keep(0, n-2)
	case n >= 1 && v.byteAt(n-1) == '\n':
		return v.keep(0, n-1)
	}
	return v
}

// TakeFirst keeps the first n scalars.
func (v Str[L]) TakeFirst(n int) Str[L] {
	checkCount("count", n)
	return v.keep(0, v.advance(0, n))
}

// TakeLast keeps the last n scalars.
func (v Str[L]) TakeLast(n int) Str[L] {
	checkCount("count", n)
	end := v.Len()
	return v.keep(v.retreat(end, n, 0), end)
}

// Reverse reverses the scalars of v. Multi-byte sequences keep their
// internal byte order.
func (v Str[L]) Reverse() Str[L] {
	n := v.Len()
	if n < 2 {
		return v
	}
	if v.IsASCII() {
		return v.reverseASCII(n)
	}
	var out Str[L]
	for i := 0; i < n; {
		next := v.NextBoundary(i)
		dst := n - next
		for k := i; k < next; k++ {
			out.setByte(dst+k-i, v.byteAt(k))
		}
		i = next
	}
	out.setLen(n)
	return out
}

// reverseASCII reverses all bytes of the integer, which lands the content
// reversed against the low end, then shifts it back up.
func (v Str[L]) reverseASCII(n int) Str[L] {
	v.setLen(0)
	var out Str[L]
	k := len(v.l)
	for j := 0; j < k; j++ {
		out.l[j] = bits.ReverseBytes32(v.l[k-1-j])
	}
	out.shiftLeft(laneBytes*k - n)
	out.setLen(n)
	return out
}

// HasPrefix reports whether v starts with prefix.
func (v Str[L]) HasPrefix(prefix string) bool {
	if len(prefix) > v.Len() {
		return false
	}
	var w Str[L]
	w.load(unsafeStringToBytes(prefix))
	return leadingEqual(v, w, len(prefix))
}

// HasSuffix reports whether v ends with suffix.
func (v Str[L]) HasSuffix(suffix string) bool {
	n := v.Len()
	if len(suffix) > n {
		return false
	}
	var w Str[L]
	w.load(unsafeStringToBytes(suffix))
	v.shiftLeft(n - len(suffix))
	return leadingEqual(v, w, len(suffix))
}

// StripPrefix removes prefix when v starts with it.
func (v Str[L]) StripPrefix(prefix string) Str[L] {
	if !v.HasPrefix(prefix) {
		return v
	}
	return v.keep(len(prefix), v.Len())
}

// StripSuffix removes suffix when v ends with it.
func (v Str[L]) StripSuffix(suffix string) Str[L] {
	if !v.HasSuffix(suffix) {
		return v
	}
	return v.keep(0, v.Len()-len(suffix))
}

// StripPrefixMatch removes the match of m when it starts at offset 0.
func (v Str[L]) StripPrefixMatch(m Matcher) Str[L] {
	var buf [256]byte
	loc := m.FindStringIndex(unsafeBytesToString(v.AppendTo(buf[:0])))
	if loc == nil || loc[0] != 0 {
		return v
	}
	return v.keep(loc[1], v.Len())
}

// StripSuffixMatch removes the last match of m when it ends at Len().
// Matches are found left to right without overlap, so a suffix hidden
// inside an earlier match is only seen when the pattern is anchored with $.
func (v Str[L]) StripSuffixMatch(m Matcher) Str[L] {
	var buf [256]byte
	n := v.Len()
	all := m.FindAllStringIndex(unsafeBytesToString(v.AppendTo(buf[:0])), -1)
	if len(all) == 0 {
		return v
	}
	loc := all[len(all)-1]
	if loc[1] != n {
		return v
	}
	return v.keep(0, loc[0])
}
