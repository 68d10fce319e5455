package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/heat"
	"github.com/san-kum/heatsim/internal/initcond"
	"github.com/san-kum/heatsim/internal/metrics"
)

type Result struct {
	Solution *heat.Solution
	Metrics  map[string]float64
	Elapsed  time.Duration
}

type Experiment struct {
	cfg      *config.Config
	profile  initcond.Profile
	method   heat.Method
	metrics  []metrics.Metric
	observer heat.Observer
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Observe registers an extra per-column callback, run after the metrics.
func (e *Experiment) Observe(obs heat.Observer) { e.observer = obs }

// Setup validates the config and resolves the profile, method and metrics.
func (e *Experiment) Setup(r *Registry) error {
	if err := e.cfg.Params().Validate(); err != nil {
		return err
	}
	method, err := r.GetMethod(e.cfg.Method)
	if err != nil {
		return err
	}
	profile, err := r.GetProfile(e.cfg.Initial.Kind, e.cfg.Length, e.cfg.Initial.Params)
	if err != nil {
		return err
	}
	e.method = method
	e.profile = profile
	e.metrics = r.DefaultMetrics(e.cfg.Params())
	return nil
}

func (e *Experiment) Profile() initcond.Profile { return e.profile }

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.profile == nil {
		return nil, fmt.Errorf("experiment not set up")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, m := range e.metrics {
		m.Reset()
	}
	track := metrics.Observer(e.metrics...)
	obs := track
	if e.observer != nil {
		extra := e.observer
		obs = func(step int, t float64, column []float64) {
			track(step, t, column)
			extra(step, t, column)
		}
	}

	solver := heat.NewSolver(heat.WithMethod(e.method), heat.WithObserver(obs))

	start := time.Now()
	sol, err := solver.Solve(e.cfg.Params(), e.profile.Eval)
	if err != nil {
		return nil, err
	}

	return &Result{
		Solution: sol,
		Metrics:  metrics.Collect(e.metrics),
		Elapsed:  time.Since(start),
	}, nil
}
