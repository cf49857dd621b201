package inlinestr

import "unicode/utf8"

// seqLen classifies a leader byte by the length of the sequence it starts.
// Continuation bytes and bytes that never lead a sequence count as 1.
func seqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	}
	return 1
}

func isContinuation(b byte) bool { return b&0xC0 == 0x80 }

// encodeRune writes r into buf and returns the number of bytes written.
// Surrogates and values past utf8.MaxRune encode as utf8.RuneError.
func encodeRune(buf []byte, r rune) int {
	if r < 0x80 && r >= 0 {
		buf[0] = byte(r)
		return 1
	}

	if r < 0x800 && r >= 0 {
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	}

	if r > utf8.MaxRune || r < 0 || (r >= 0xD800 && r <= 0xDFFF) {
		r = utf8.RuneError
	}

	if r < 0x10000 {
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	}

	buf[0] = byte(0xF0 | r>>18)
	buf[1] = byte(0x80 | (r>>12)&0x3F)
	buf[2] = byte(0x80 | (r>>6)&0x3F)
	buf[3] = byte(0x80 | r&0x3F)
	return 4
}

// decodeRune assembles a scalar from an already validated sequence of n
// bytes. Overlong forms and surrogates are decoded as-is.
func decodeRune(p [4]byte, n int) rune {
	switch n {
	case 2:
		return rune(p[0]&0x1F)<<6 | rune(p[1]&0x3F)
	case 3:
		return rune(p[0]&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F)
	case 4:
		return rune(p[0]&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F)
	}
	if p[0] < 0x80 {
		return rune(p[0])
	}
	return utf8.RuneError
}
