package segtree

import (
	"math/rand"
	"testing"
)

func BenchmarkRangeOps(b *testing.B) {
	tree, err := New(Config{Start: 0, End: 1 << 40, Kind: Sum})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := r.Int63n(1 << 40)
		hi := lo + r.Int63n(1<<40-lo+1)
		switch i % 3 {
		case 0:
			_ = tree.RangeAssign(lo, hi, int64(i))
		case 1:
			_ = tree.RangeAdd(lo, hi, 1)
		default:
			_, _ = tree.Query(lo, hi)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	tree, err := New(Config{Start: 0, End: 1 << 20, Kind: Max})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := int64(0); i < 1<<20; i += 97 {
		_ = tree.RangeAdd(i, min(i+50, 1<<20), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Get(int64(i) & (1<<20 - 1))
	}
}
