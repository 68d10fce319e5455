package experiment

import (
	"context"
	"fmt"

	"github.com/exascience/pargo/parallel"

	"github.com/san-kum/heatsim/internal/config"
)

// Sweep runs one experiment per config in parallel. Results come back in
// input order; on failure the error of the lowest failing index is returned.
func Sweep(ctx context.Context, r *Registry, cfgs []*config.Config) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	if len(cfgs) == 0 {
		return results, nil
	}

	errs := make([]error, len(cfgs))
	parallel.Range(0, len(cfgs), 0, func(low, high int) {
		for i := low; i < high; i++ {
			exp := New(cfgs[i])
			if err := exp.Setup(r); err != nil {
				errs[i] = err
				continue
			}
			results[i], errs[i] = exp.Run(ctx)
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sweep %d: %w", i, err)
		}
	}
	return results, nil
}

// Vary clones base once per value and lets set apply the value.
func Vary(base *config.Config, values []float64, set func(*config.Config, float64)) []*config.Config {
	cfgs := make([]*config.Config, len(values))
	for i, v := range values {
		c := base.Clone()
		set(c, v)
		cfgs[i] = c
	}
	return cfgs
}
