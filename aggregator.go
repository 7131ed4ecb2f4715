package segtree

import (
	"fmt"
	"strings"
)

// Kind selects the aggregation rule of a tree.
type Kind uint8

const (
	// Sum aggregates a range to the sum of its values.
	Sum Kind = iota + 1
	// Min aggregates a range to its smallest value.
	Min
	// Max aggregates a range to its largest value.
	Max
)

func (k Kind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps "sum", "min" or "max" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum":
		return Sum, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	}
	return 0, fmt.Errorf("%w: unknown aggregation kind %q", ErrInvalidConfig, s)
}

// Aggregator defines how values of a range are combined into an aggregate.
//
// All methods must be pure and consistent. For every value v and lengths a, b:
//
//	Merge(Fill(a, v), Fill(b, v)) == Fill(a+b, v)
type Aggregator interface {
	// Fill returns the aggregate of length identical values.
	Fill(length, value int64) int64
	// ApplyDelta returns the aggregate of a range of the given length after
	// adding delta to every value in it. The delta has to be the same for
	// every index; min and max rely on this to shift the extremum.
	ApplyDelta(agg, length, delta int64) int64
	// Merge combines the aggregates of two adjacent ranges.
	Merge(left, right int64) int64
	// Kind identifies the aggregation rule.
	Kind() Kind
}

// AggregatorFor returns the aggregator for kind k.
func AggregatorFor(k Kind) (Aggregator, error) {
	switch k {
	case Sum:
		return SumAggregator{}, nil
	case Min:
		return MinAggregator{}, nil
	case Max:
		return MaxAggregator{}, nil
	}
	return nil, fmt.Errorf("%w: unknown aggregation kind %s", ErrInvalidConfig, k)
}

// SumAggregator sums up values.
type SumAggregator struct{}

func (SumAggregator) Fill(length, value int64) int64 { return length * value }

func (SumAggregator) ApplyDelta(agg, length, delta int64) int64 {
	return agg + length*delta
}

func (SumAggregator) Merge(left, right int64) int64 { return left + right }
func (SumAggregator) Kind() Kind                    { return Sum }

// MinAggregator tracks the smallest value of a range.
type MinAggregator struct{}

func (MinAggregator) Fill(_, value int64) int64 { return value }

func (MinAggregator) ApplyDelta(agg, _, delta int64) int64 { return agg + delta }

func (MinAggregator) Merge(left, right int64) int64 { return min(left, right) }
func (MinAggregator) Kind() Kind                    { return Min }

// MaxAggregator tracks the largest value of a range.
type MaxAggregator struct{}

func (MaxAggregator) Fill(_, value int64) int64 { return value }

func (MaxAggregator) ApplyDelta(agg, _, delta int64) int64 { return agg + delta }

func (MaxAggregator) Merge(left, right int64) int64 { return max(left, right) }
func (MaxAggregator) Kind() Kind                    { return Max }
