package segtree

import (
	"fmt"
	"math"
)

// Config configures a dynamic segment tree.
type Config struct {
	// Start and End delimit the closed index domain [Start, End].
	Start, End int64
	// Default is the value of every index before it is mutated.
	Default int64
	// Kind selects the aggregation rule.
	Kind Kind
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Start > cfg.End {
		return fmt.Errorf("%w: domain start %d > end %d", ErrInvalidConfig, cfg.Start, cfg.End)
	}
	// length End-Start+1 has to fit into an int64
	if cfg.Start < 0 && cfg.End >= math.MaxInt64+cfg.Start {
		return fmt.Errorf("%w: domain [%d, %d] too wide", ErrInvalidConfig, cfg.Start, cfg.End)
	}
	if cfg.Start >= 0 && cfg.End-cfg.Start == math.MaxInt64 {
		return fmt.Errorf("%w: domain [%d, %d] too wide", ErrInvalidConfig, cfg.Start, cfg.End)
	}
	if _, err := AggregatorFor(cfg.Kind); err != nil {
		return err
	}
	return nil
}
