package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/heatsim/internal/heat"
	"github.com/san-kum/heatsim/internal/initcond"
	"github.com/san-kum/heatsim/internal/metrics"
)

type Registry struct {
	profiles map[string]func(length float64) (initcond.Profile, error)
	methods  map[string]heat.Method
	metrics  map[string]func(p heat.Params) metrics.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]func(float64) (initcond.Profile, error)),
		methods:  make(map[string]heat.Method),
		metrics:  make(map[string]func(heat.Params) metrics.Metric),
	}

	for _, name := range initcond.Names() {
		name := name
		r.profiles[name] = func(length float64) (initcond.Profile, error) {
			return initcond.New(name, length)
		}
	}

	for _, m := range heat.Methods() {
		r.methods[string(m)] = m
	}

	r.metrics["thermal_energy"] = func(p heat.Params) metrics.Metric { return metrics.NewThermalEnergy(p.Spacing()) }
	r.metrics["energy_decay"] = func(heat.Params) metrics.Metric { return metrics.NewEnergyDecay() }
	r.metrics["max_energy_increase"] = func(heat.Params) metrics.Metric { return metrics.NewMaxEnergyIncrease() }
	r.metrics["peak_temperature"] = func(heat.Params) metrics.Metric { return metrics.NewPeakTemperature() }

	return r
}

// GetProfile builds the named profile and applies params on top of its
// defaults.
func (r *Registry) GetProfile(name string, length float64, params map[string]float64) (initcond.Profile, error) {
	fn, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown initial condition: %s", name)
	}
	p, err := fn(length)
	if err != nil {
		return nil, err
	}
	if err := initcond.Apply(p, params); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Registry) GetMethod(name string) (heat.Method, error) {
	m, ok := r.methods[name]
	if !ok {
		return "", fmt.Errorf("unknown method: %s", name)
	}
	return m, nil
}

// DefaultMetrics returns a fresh instance of every registered metric.
func (r *Registry) DefaultMetrics(p heat.Params) []metrics.Metric {
	names := r.ListMetrics()
	out := make([]metrics.Metric, 0, len(names))
	for _, name := range names {
		out = append(out, r.metrics[name](p))
	}
	return out
}

func (r *Registry) ListProfiles() []string { return sortedKeys(r.profiles) }
func (r *Registry) ListMethods() []string  { return sortedKeys(r.methods) }
func (r *Registry) ListMetrics() []string  { return sortedKeys(r.metrics) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
