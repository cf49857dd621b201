package inlinestr

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortScenario(t *testing.T) {
	words := []string{"cherry", "apple", "fig", "date"}
	data := make([]Str16, len(words))
	for i, w := range words {
		data[i] = MustNew[[4]uint32](w)
	}

	require.NoError(t, RadixSort(data, make([]Str16, len(data))))

	var got []string
	for _, v := range data {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"apple", "cherry", "date", "fig"}, got)
}

func sortSizes(c Capacity) []int {
	th := Threshold(c)
	return []int{0, 1, 2, th - 1, th, th + 1, 10 * th}
}

// sortAgainstReference sorts random input of every interesting size and
// compares with a stable comparison sort of the same input.
func sortAgainstReference[L Lanes](t *testing.T, r *rand.Rand) {
	var zero Str[L]
	for _, n := range sortSizes(zero.Capacity()) {
		for _, gen := range []func(*rand.Rand, int) string{randomBytes, randomUTF8} {
			data := make([]Str[L], n)
			for i := range data {
				data[i] = MustNew[L](gen(r, zero.Cap()))
			}
			want := slices.Clone(data)
			slices.SortStableFunc(want, Compare[L])

			require.NoError(t, RadixSort(data, make([]Str[L], n)))
			require.Equal(t, want, data, "n=%d", n)
		}
	}
}

func TestRadixSortAllCapacities(t *testing.T) {
	r := newRand()
	t.Run("cap4", func(t *testing.T) { sortAgainstReference[[1]uint32](t, r) })
	t.Run("cap8", func(t *testing.T) { sortAgainstReference[[2]uint32](t, r) })
	t.Run("cap16", func(t *testing.T) { sortAgainstReference[[4]uint32](t, r) })
	t.Run("cap32", func(t *testing.T) { sortAgainstReference[[8]uint32](t, r) })
	t.Run("cap64", func(t *testing.T) { sortAgainstReference[[16]uint32](t, r) })
	t.Run("cap128", func(t *testing.T) { sortAgainstReference[[32]uint32](t, r) })
	t.Run("cap256", func(t *testing.T) { sortAgainstReference[[64]uint32](t, r) })
}

func TestSortUniform(t *testing.T) {
	// every pass is skipped when all values are equal
	data := make([]Str8, 1000)
	for i := range data {
		data[i] = MustNew[[2]uint32]("same")
	}
	Sort(data)
	for _, v := range data {
		require.Equal(t, "same", v.String())
	}

	// values differing only in the length byte need exactly one pass, which
	// exercises the copy back from scratch
	data = make([]Str8, 500)
	for i := range data {
		data[i] = MustNew[[2]uint32](strings.Repeat("\x00", (i*7)%8))
	}
	Sort(data)
	assert.True(t, slices.IsSortedFunc(data, Compare[[2]uint32]))
}

type record struct {
	name Str16
	seq  int
}

func TestSortFuncStable(t *testing.T) {
	r := newRand()
	for _, n := range []int{50, 2000} {
		for _, order := range []Order{Ascending, Descending} {
			t.Run(fmt.Sprintf("n=%d/order=%d", n, order), func(t *testing.T) {
				data := make([]record, n)
				for i := range data {
					// few distinct keys so ties are everywhere
					data[i] = record{name: MustNew[[4]uint32](fmt.Sprintf("k%d", r.IntN(13))), seq: i}
				}
				want := slices.Clone(data)
				slices.SortStableFunc(want, func(a, b record) int {
					return order.apply(Compare(a.name, b.name))
				})

				err := SortFunc(data, make([]record, n), func(rec record) Str16 { return rec.name }, order)
				require.NoError(t, err)
				assert.Equal(t, want, data)
			})
		}
	}
}

func TestSortDescending(t *testing.T) {
	r := newRand()
	data := make([]Str32, 3000)
	for i := range data {
		data[i] = MustNew[[8]uint32](randomBytes(r, 31))
	}
	require.NoError(t, SortFunc(data, make([]Str32, len(data)), func(v Str32) Str32 { return v }, Descending))
	assert.True(t, slices.IsSortedFunc(data, func(a, b Str32) int { return Compare(b, a) }))
}

func TestSortErrors(t *testing.T) {
	data := make([]Str8, 10)

	err := RadixSort(data, make([]Str8, 9))
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	err = RadixSort(data, data)
	assert.ErrorIs(t, err, ErrScratchAliased)

	backing := make([]Str8, 15)
	err = RadixSort(backing[:10], backing[5:])
	assert.ErrorIs(t, err, ErrScratchAliased)

	// a larger scratch is fine
	assert.NoError(t, RadixSort(data, make([]Str8, 20)))
	assert.NoError(t, RadixSort([]Str8{}, nil))
}

func TestSortStr1(t *testing.T) {
	r := newRand()
	for _, n := range []int{0, 5, Threshold(Cap1), 1000} {
		data := make([]Str1, n)
		for i := range data {
			data[i] = Str1Of(byte(r.IntN(256)))
		}
		want := slices.Clone(data)
		slices.SortStableFunc(want, CompareStr1)

		require.NoError(t, SortStr1(data, make([]Str1, n)))
		assert.Equal(t, want, data, "n=%d", n)
	}

	type tagged struct {
		c Str1
		i int
	}
	data := make([]tagged, 400)
	for i := range data {
		data[i] = tagged{Str1Of("abc"[i%3]), i}
	}
	require.NoError(t, SortStr1Func(data, make([]tagged, len(data)), func(x tagged) Str1 { return x.c }, Descending))
	// descending by byte, original position breaking ties
	assert.True(t, slices.IsSortedFunc(data, func(a, b tagged) int {
		if c := cmp.Compare(b.c.Byte(), a.c.Byte()); c != 0 {
			return c
		}
		return cmp.Compare(a.i, b.i)
	}))
}

func TestSortAny(t *testing.T) {
	data := []Str8{MustNew[[2]uint32]("b"), MustNew[[2]uint32]("a")}
	require.NoError(t, SortAny(data, nil))
	assert.Equal(t, "a", data[0].String())

	chars := []Str1{Str1Of('z'), Str1Of('y')}
	require.NoError(t, SortAny(chars, make([]Str1, 2)))
	assert.Equal(t, Str1Of('y'), chars[0])

	assert.ErrorIs(t, SortAny([]string{"a"}, nil), ErrTypeMismatch)
	assert.ErrorIs(t, SortAny(data, make([]Str16, 2)), ErrTypeMismatch)
	assert.ErrorIs(t, SortAny(data, make([]Str8, 1)), ErrBufferTooSmall)
}

func TestThreshold(t *testing.T) {
	prev := 0
	for _, c := range Capacities {
		assert.Greater(t, Threshold(c), prev, c.String())
		prev = Threshold(c)
	}
}

func BenchmarkRadixSort(b *testing.B) {
	r := newRand()
	data := make([]Str16, 100_000)
	for i := range data {
		data[i] = MustNew[[4]uint32](randomBytes(r, 15))
	}
	work := make([]Str16, len(data))
	scratch := make([]Str16, len(data))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, data)
		_ = RadixSort(work, scratch)
	}
}
