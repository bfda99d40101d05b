package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmerge/heap"
	"github.com/katalvlaran/lvlmerge/order"
)

// BenchmarkInsert measures N random inserts into an empty heap.
func BenchmarkInsert(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	elems := make([]int, N)
	for i := range elems {
		elems[i] = rng.Intn(N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.New(order.Natural[int]())
		for _, e := range elems {
			h.Insert(e)
		}
	}
}

// BenchmarkNewFrom measures the O(n) queue-pairing bulk build.
func BenchmarkNewFrom(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(2))
	elems := make([]int, N)
	for i := range elems {
		elems[i] = rng.Intn(N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = heap.NewFrom(order.Natural[int](), elems...)
	}
}

// BenchmarkDrain measures a full heap-sort drain of N elements.
func BenchmarkDrain(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(3))
	elems := make([]int, N)
	for i := range elems {
		elems[i] = rng.Intn(N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := heap.NewFrom(order.Natural[int](), elems...)
		b.StartTimer()
		for !h.IsEmpty() {
			_ = h.DeleteMinimum()
		}
	}
}
