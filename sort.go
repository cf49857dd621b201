package inlinestr

import (
	"fmt"
	"slices"
)

const (
	chunkBits     = 11 // digit width for capacities above 1
	charChunkBits = 8  // digit width for Str1
)

// Order selects ascending or descending output.
type Order uint8

const (
	Ascending Order = iota
	Descending
)

// flip is XORed into every chunk so that descending order sorts the
// complemented digits ascending.
func (o Order) flip(width uint) uint32 {
	if o == Descending {
		return 1<<width - 1
	}
	return 0
}

func (o Order) apply(c int) int {
	if o == Descending {
		return -c
	}
	return c
}

// Threshold returns the input size below which a capacity is sorted with a
// stable comparison sort instead of radix passes. Histogram setup is a fixed
// cost per pass while wider values need more passes, so wider capacities
// switch over later.
func Threshold(c Capacity) int {
	switch c {
	case Cap1:
		return 32
	case Cap4:
		return 64
	case Cap8:
		return 96
	case Cap16:
		return 128
	case Cap32:
		return 192
	case Cap64:
		return 256
	case Cap128:
		return 384
	}
	return 512
}

// Sort sorts data ascending, allocating its own scratch buffer.
func Sort[L Lanes](data []Str[L]) {
	sortKeys(data, make([]Str[L], len(data)), func(v Str[L]) Str[L] { return v }, Ascending)
}

// RadixSort sorts data ascending by raw value. scratch must hold at least
// len(data) elements and must not overlap data.
func RadixSort[L Lanes](data, scratch []Str[L]) error {
	return SortFunc(data, scratch, func(v Str[L]) Str[L] { return v }, Ascending)
}

// SortFunc stably sorts data by the key derived from each element. The
// order is applied to every digit before it is histogrammed.
func SortFunc[T any, L Lanes](data, scratch []T, key func(T) Str[L], order Order) error {
	n := len(data)
	if len(scratch) < n {
		return fmt.Errorf("%w: scratch holds %d of %d elements", ErrBufferTooSmall, len(scratch), n)
	}
	scratch = scratch[:n]
	if overlaps(data, scratch) {
		return ErrScratchAliased
	}
	sortKeys(data, scratch, key, order)
	return nil
}

// sortKeys is SortFunc after the scratch checks; len(scratch) == len(data).
func sortKeys[T any, L Lanes](data, scratch []T, key func(T) Str[L], order Order) {
	n := len(data)
	var zero Str[L]
	if n < Threshold(zero.Capacity()) {
		slices.SortStableFunc(data, func(a, b T) int {
			return order.apply(Compare(key(a), key(b)))
		})
		return
	}

	width := uint(laneBits * zero.lanes())
	passes := (width + chunkBits - 1) / chunkBits
	flip := order.flip(chunkBits)

	pc := passPool.Get().(*passContext)
	defer passPool.Put(pc)
	src, dst := data, scratch
	executed := 0
	for p := uint(0); p < passes; p++ {
		shift := p * chunkBits
		pc.reset(chunkBits)
		for i := range src {
			k := key(src[i])
			pc.hist[k.chunk(shift, chunkBits)^flip]++
		}
		if pc.uniform(n) {
			continue
		}
		pc.prefix(0)
		for i := n - 1; i >= 0; i-- {
			k := key(src[i])
			c := k.chunk(shift, chunkBits) ^ flip
			pc.next[c]--
			dst[pc.next[c]] = src[i]
		}
		src, dst = dst, src
		executed++
	}
	if executed%2 == 1 {
		copy(data, src)
	}
}

// SortStr1 sorts capacity-1 values ascending with a single 8-bit pass.
func SortStr1(data, scratch []Str1) error {
	return SortStr1Func(data, scratch, func(c Str1) Str1 { return c }, Ascending)
}

// SortStr1Func is SortFunc for capacity-1 keys.
func SortStr1Func[T any](data, scratch []T, key func(T) Str1, order Order) error {
	n := len(data)
	if len(scratch) < n {
		return fmt.Errorf("%w: scratch holds %d of %d elements", ErrBufferTooSmall, len(scratch), n)
	}
	scratch = scratch[:n]
	if overlaps(data, scratch) {
		return ErrScratchAliased
	}
	if n < Threshold(Cap1) {
		slices.SortStableFunc(data, func(a, b T) int {
			return order.apply(CompareStr1(key(a), key(b)))
		})
		return nil
	}

	flip := byte(order.flip(charChunkBits))
	pc := passPool.Get().(*passContext)
	defer passPool.Put(pc)
	pc.reset(charChunkBits)
	for i := range data {
		pc.hist[key(data[i]).b^flip]++
	}
	if pc.uniform(n) {
		return nil
	}
	pc.prefix(0)
	for i := n - 1; i >= 0; i-- {
		c := key(data[i]).b ^ flip
		pc.next[c]--
		scratch[pc.next[c]] = data[i]
	}
	copy(data, scratch)
	return nil
}

// SortAny sorts a slice of any fixed-width sibling type ascending. scratch
// may be nil, in which case one is allocated; otherwise it must be a slice
// of the same type. Any other element type fails with ErrTypeMismatch.
func SortAny(data, scratch any) error {
	switch d := data.(type) {
	case []Str1:
		s, err := scratchFor(d, scratch)
		if err != nil {
			return err
		}
		return SortStr1(d, s)
	case []Str4:
		return sortAny(d, scratch)
	case []Str8:
		return sortAny(d, scratch)
	case []Str16:
		return sortAny(d, scratch)
	case []Str32:
		return sortAny(d, scratch)
	case []Str64:
		return sortAny(d, scratch)
	case []Str128:
		return sortAny(d, scratch)
	case []Str256:
		return sortAny(d, scratch)
	}
	return fmt.Errorf("%w: %T is not a slice of fixed-width strings", ErrTypeMismatch, data)
}

func sortAny[L Lanes](data []Str[L], scratch any) error {
	s, err := scratchFor(data, scratch)
	if err != nil {
		return err
	}
	return RadixSort(data, s)
}

func scratchFor[T any](data []T, scratch any) ([]T, error) {
	if scratch == nil {
		return make([]T, len(data)), nil
	}
	s, ok := scratch.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: scratch %T for data %T", ErrTypeMismatch, scratch, data)
	}
	return s, nil
}
