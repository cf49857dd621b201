package inlinestr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRune(t *testing.T) {
	tests := []struct {
		name        string
		r           rune
		expected    []byte
		expectedLen int
	}{
		{
			name:        "ASCII lowercase",
			r:           'a',
			expected:    []byte{'a'},
			expectedLen: 1,
		},
		{
			name:        "ASCII uppercase keeps case",
			r:           'A',
			expected:    []byte{'A'},
			expectedLen: 1,
		},
		{
			name:        "2-byte rune",
			r:           'ñ',
			expected:    []byte{0xC3, 0xB1},
			expectedLen: 2,
		},
		{
			name:        "3-byte rune",
			r:           '漢',
			expected:    []byte{0xE6, 0xBC, 0xA2},
			expectedLen: 3,
		},
		{
			name:        "4-byte rune",
			r:           '😀',
			expected:    []byte{0xF0, 0x9F, 0x98, 0x80},
			expectedLen: 4,
		},
		{
			name:        "Surrogate",
			r:           0xD800,
			expected:    []byte{0xEF, 0xBF, 0xBD},
			expectedLen: 3,
		},
		{
			name:        "Past max rune",
			r:           0x110000,
			expected:    []byte{0xEF, 0xBF, 0xBD},
			expectedLen: 3,
		},
		{
			name:        "Negative",
			r:           -1,
			expected:    []byte{0xEF, 0xBF, 0xBD},
			expectedLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			n := encodeRune(buf, tt.r)
			assert.Equal(t, tt.expectedLen, n)
			assert.Equal(t, tt.expected, buf[:n])
		})
	}
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name     string
		p        [4]byte
		n        int
		expected rune
	}{
		{
			name:     "ASCII character",
			p:        [4]byte{'a'},
			n:        1,
			expected: 'a',
		},
		{
			name:     "2-byte rune",
			p:        [4]byte{0xC3, 0xB1},
			n:        2,
			expected: 'ñ',
		},
		{
			name:     "3-byte rune",
			p:        [4]byte{0xE6, 0xBC, 0xA2},
			n:        3,
			expected: '漢',
		},
		{
			name:     "4-byte rune",
			p:        [4]byte{0xF0, 0x9F, 0x98, 0x80},
			n:        4,
			expected: '😀',
		},
		{
			name:     "Lone continuation byte",
			p:        [4]byte{0xA9},
			n:        1,
			expected: 0xFFFD,
		},
		{
			name:     "Truncated leader",
			p:        [4]byte{0xC3},
			n:        1,
			expected: 0xFFFD,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeRune(tt.p, tt.n))
		})
	}
}

func TestSeqLen(t *testing.T) {
	tests := []struct {
		name     string
		b        byte
		expected int
	}{
		{name: "ASCII", b: 'x', expected: 1},
		{name: "NUL", b: 0, expected: 1},
		{name: "Continuation", b: 0x80, expected: 1},
		{name: "Overlong two-byte leader", b: 0xC1, expected: 1},
		{name: "Two-byte leader", b: 0xC2, expected: 2},
		{name: "Three-byte leader", b: 0xE0, expected: 3},
		{name: "Four-byte leader", b: 0xF4, expected: 4},
		{name: "Out of range leader", b: 0xF5, expected: 1},
		{name: "Never valid", b: 0xFF, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, seqLen(tt.b))
		})
	}

	assert.True(t, isContinuation(0xBF))
	assert.False(t, isContinuation(0xC0))
	assert.False(t, isContinuation('a'))
}
