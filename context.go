package inlinestr

import "sync"

// passContext holds the per-pass histogram and scatter offsets of a radix
// sort. A sort call owns one for its whole duration and never shares it, so
// independent arrays sort concurrently without coordination.
type passContext struct {
	hist [1 << chunkBits]int // chunk value -> occurrences in the range
	next [1 << chunkBits]int // chunk value -> one past its last destination slot
	used int                 // number of buckets in play for this pass
}

// passPool reuses pass contexts across sort calls.
var passPool = sync.Pool{
	New: func() interface{} {
		return &passContext{}
	},
}

// reset clears the buckets for a pass over chunks of the given width.
func (pc *passContext) reset(width uint) {
	pc.used = 1 << width
	clear(pc.hist[:pc.used])
}

// uniform reports whether all n elements fell into one bucket, in which case
// the pass would not move anything.
func (pc *passContext) uniform(n int) bool {
	for _, c := range pc.hist[:pc.used] {
		if c != 0 {
			return c == n
		}
	}
	return true
}

// prefix turns the histogram into scatter positions. The exclusive prefix
// sum, seeded with base, is the first slot of each bucket; adding the count
// gives the end slot that a backward scan fills downwards, which keeps
// equal chunks in their previous order.
func (pc *passContext) prefix(base int) {
	sum := base
	for b, c := range pc.hist[:pc.used] {
		sum += c
		pc.next[b] = sum
	}
}
