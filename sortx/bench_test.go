package sortx_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/krelore/strukt/sortx"
)

// benchInput builds a reproducible random slice of size n.
func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(1))
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Int()
	}

	return s
}

// BenchmarkSorts compares the O(n log n) family on the same input.
func BenchmarkSorts(b *testing.B) {
	const N = 10000
	base := benchInput(N)

	algos := map[string]func([]int, func(a, b int) bool, ...sortx.Option) (*sortx.Stats, error){
		"Merge": sortx.Merge[int],
		"Quick": sortx.Quick[int],
		"Heap":  sortx.Heap[int],
		"Shell": sortx.Shell[int],
	}
	for name, fn := range algos {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]int, N)
			for i := 0; i < b.N; i++ {
				copy(buf, base)
				_, _ = fn(buf, func(a, b int) bool { return a < b })
			}
		})
	}
}

// BenchmarkQuick_Cutoff measures the insertion-sort fallback effect.
func BenchmarkQuick_Cutoff(b *testing.B) {
	const N = 10000
	base := benchInput(N)

	for _, cutoff := range []int{0, 8, 16, 32} {
		b.Run(fmt.Sprintf("cutoff=%d", cutoff), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]int, N)
			for i := 0; i < b.N; i++ {
				copy(buf, base)
				_, _ = sortx.Quick(buf, func(a, b int) bool { return a < b }, sortx.WithCutoff(cutoff))
			}
		})
	}
}

// BenchmarkRadix pits the non-comparison sorts against Quick.
func BenchmarkRadix(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	base := make([]int, N)
	for i := range base {
		base[i] = rng.Intn(1 << 20)
	}

	b.Run("Radix", func(b *testing.B) {
		b.ReportAllocs()
		buf := make([]int, N)
		for i := 0; i < b.N; i++ {
			copy(buf, base)
			_, _ = sortx.Radix(buf)
		}
	})
	b.Run("Counting", func(b *testing.B) {
		b.ReportAllocs()
		buf := make([]int, N)
		for i := 0; i < b.N; i++ {
			copy(buf, base)
			_, _ = sortx.Counting(buf)
		}
	})
}
