package segtree

import (
	"errors"
	"testing"
)

var allKinds = []Kind{Sum, Min, Max}

func TestAggregatorFillMergeConsistency(t *testing.T) {
	values := []int64{-17, -1, 0, 1, 3, 1 << 20}
	for _, kind := range allKinds {
		agg, err := AggregatorFor(kind)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", kind, err)
		}
		for _, v := range values {
			for total := int64(2); total <= 9; total++ {
				for lenL := int64(1); lenL < total; lenL++ {
					lenR := total - lenL
					got := agg.Merge(agg.Fill(lenL, v), agg.Fill(lenR, v))
					want := agg.Fill(total, v)
					if got != want {
						t.Fatalf("%s: merge(fill(%d,%d), fill(%d,%d)) = %d, want %d",
							kind, lenL, v, lenR, v, got, want)
					}
				}
			}
		}
	}
}

func TestAggregatorApplyDeltaMatchesFill(t *testing.T) {
	for _, kind := range allKinds {
		agg, _ := AggregatorFor(kind)
		for length := int64(1); length <= 7; length++ {
			got := agg.ApplyDelta(agg.Fill(length, 4), length, 3)
			if want := agg.Fill(length, 7); got != want {
				t.Errorf("%s: applyDelta(fill(%d,4), 3) = %d, want %d", kind, length, got, want)
			}
		}
	}
}

func TestAggregatorRules(t *testing.T) {
	sum, mn, mx := SumAggregator{}, MinAggregator{}, MaxAggregator{}
	if sum.Fill(4, 3) != 12 || mn.Fill(4, 3) != 3 || mx.Fill(4, 3) != 3 {
		t.Errorf("unexpected fill values")
	}
	if sum.ApplyDelta(10, 5, 2) != 20 || mn.ApplyDelta(10, 5, 2) != 12 || mx.ApplyDelta(10, 5, 2) != 12 {
		t.Errorf("unexpected applyDelta values")
	}
	if sum.Merge(3, -8) != -5 || mn.Merge(3, -8) != -8 || mx.Merge(3, -8) != 3 {
		t.Errorf("unexpected merge values")
	}
}

func TestAggregatorForRejectsUnknownKind(t *testing.T) {
	_, err := AggregatorFor(Kind(0))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = AggregatorFor(Kind(42))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range allKinds {
		k, err := ParseKind(kind.String())
		if err != nil || k != kind {
			t.Errorf("ParseKind(%q) = %v, %v", kind.String(), k, err)
		}
	}
	if k, err := ParseKind(" MAX "); err != nil || k != Max {
		t.Errorf("expected case-insensitive parse to yield max, got %v, %v", k, err)
	}
	if _, err := ParseKind("avg"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown kind, got %v", err)
	}
}
