package inlinestr

import (
	"fmt"
	"math"
	"strconv"
)

// Capacity is the total byte footprint of a sibling type. Its value equals
// the byte width; Unbounded stands for the ordinary heap string.
type Capacity int

const (
	Cap1   Capacity = 1
	Cap4   Capacity = 4
	Cap8   Capacity = 8
	Cap16  Capacity = 16
	Cap32  Capacity = 32
	Cap64  Capacity = 64
	Cap128 Capacity = 128
	Cap256 Capacity = 256

	// Unbounded orders after every inline capacity.
	Unbounded Capacity = math.MaxInt32
)

// Capacities lists the inline capacities in ascending order.
var Capacities = [...]Capacity{Cap1, Cap4, Cap8, Cap16, Cap32, Cap64, Cap128, Cap256}

// CapacityFor returns the smallest capacity that fits a string of n bytes.
// It reports false, with Unbounded, once n exceeds 255.
//
// An empty string resolves to Cap4, the same bucket as lengths 2 and 3,
// because Cap1 always holds exactly one byte.
func CapacityFor(n int) (Capacity, bool) {
	switch {
	case n < 0:
		panic(fmt.Errorf("%w: negative length %d", ErrBounds, n))
	case n == 1:
		return Cap1, true
	case n <= 3:
		return Cap4, true
	case n <= 7:
		return Cap8, true
	case n <= 15:
		return Cap16, true
	case n <= 31:
		return Cap32, true
	case n <= 63:
		return Cap64, true
	case n <= 127:
		return Cap128, true
	case n <= 255:
		return Cap256, true
	}
	return Unbounded, false
}

// SmallestCapacity returns the narrowest representation able to hold s.
// A collection builder widens its element type to the maximum of this over
// all elements.
func SmallestCapacity(s string) Capacity {
	c, _ := CapacityFor(len(s))
	return c
}

// Promote returns the smallest capacity able to hold the larger operand's
// maximal content, or Unbounded.
func Promote(a, b Capacity) Capacity {
	n := max(a.MaxContent(), b.MaxContent())
	c, _ := CapacityFor(n)
	return c
}

// Valid reports whether c is an inline capacity or Unbounded.
func (c Capacity) Valid() bool {
	return c == Unbounded || c.index() >= 0
}

func (c Capacity) index() int {
	for i, k := range Capacities {
		if k == c {
			return i
		}
	}
	return -1
}

// MaxContent returns the number of content bytes c can hold.
func (c Capacity) MaxContent() int {
	switch c {
	case Cap1:
		return 1
	case Unbounded:
		return math.MaxInt
	}
	return max(int(c)-1, 0)
}

// Wider returns the widen target: the next larger capacity, or Unbounded.
func (c Capacity) Wider() Capacity {
	i := c.index()
	if i < 0 || i == len(Capacities)-1 {
		return Unbounded
	}
	return Capacities[i+1]
}

// Narrower returns the narrow target. Cap1 has none.
func (c Capacity) Narrower() (Capacity, bool) {
	if c == Unbounded {
		return Cap256, true
	}
	i := c.index()
	if i <= 0 {
		return 0, false
	}
	return Capacities[i-1], true
}

func (c Capacity) String() string {
	if c == Unbounded {
		return "unbounded"
	}
	return "cap" + strconv.Itoa(int(c))
}
