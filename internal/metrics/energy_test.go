package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/heat"
)

func TestThermalEnergy(t *testing.T) {
	m := NewThermalEnergy(0.5)

	m.Observe([]float64{9, 1, 2, 3, 9}, 0)
	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("expected energy 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDecay(t *testing.T) {
	m := NewEnergyDecay()
	if m.Value() != 0 {
		t.Error("expected zero before any sample")
	}

	m.Observe([]float64{0, 4, 0}, 0)
	m.Observe([]float64{0, 3, 0}, 0.1)
	m.Observe([]float64{0, 1, 0}, 0.2)

	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected ratio 0.25, got %f", m.Value())
	}
}

func TestMaxEnergyIncrease(t *testing.T) {
	m := NewMaxEnergyIncrease()
	m.Observe([]float64{0, 4, 4, 0}, 0)
	if m.Value() != 0 {
		t.Errorf("expected 0 with a single sample, got %f", m.Value())
	}

	m.Observe([]float64{0, 3, 4, 0}, 0.1)
	m.Observe([]float64{0, 2, 2, 0}, 0.2)
	if math.Abs(m.Value()+1) > 1e-12 {
		t.Errorf("expected -1, got %f", m.Value())
	}
}

func TestPeakTemperature(t *testing.T) {
	m := NewPeakTemperature()
	m.Observe([]float64{0, 7, 2}, 0)
	m.Observe([]float64{-1, 3, 2}, 0.1)
	if m.Value() != 3 {
		t.Errorf("expected peak 3, got %f", m.Value())
	}
}

func TestObserverWithSolver(t *testing.T) {
	p := heat.Params{Length: 1, Duration: 0.5, Diffusivity: 0.1, Cells: 40, Steps: 100}
	bump := func(grid []float64) []float64 {
		u := make([]float64, len(grid))
		for i, x := range grid {
			u[i] = 10 * math.Exp(-(x-0.5)*(x-0.5)/0.01)
		}
		return u
	}

	ms := []Metric{NewThermalEnergy(p.Spacing()), NewEnergyDecay(), NewMaxEnergyIncrease(), NewPeakTemperature()}
	sol, err := heat.NewSolver(heat.WithObserver(Observer(ms...))).Solve(p, bump)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	got := Collect(ms)
	if got["energy_decay"] <= 0 || got["energy_decay"] >= 1 {
		t.Errorf("expected decay ratio in (0, 1), got %f", got["energy_decay"])
	}
	if got["max_energy_increase"] > 1e-9 {
		t.Errorf("interior energy grew by %g", got["max_energy_increase"])
	}

	replayed := []Metric{NewThermalEnergy(p.Spacing()), NewEnergyDecay(), NewMaxEnergyIncrease(), NewPeakTemperature()}
	Replay(sol, replayed...)
	for name, v := range Collect(replayed) {
		if math.Abs(v-got[name]) > 1e-12 {
			t.Errorf("%s: observer %g, replay %g", name, got[name], v)
		}
	}
}
