package metrics

import "math"

// ThermalEnergy is h times the interior sum of the latest column.
type ThermalEnergy struct {
	name    string
	spacing float64
	energy  float64
}

func NewThermalEnergy(spacing float64) *ThermalEnergy {
	return &ThermalEnergy{name: "thermal_energy", spacing: spacing}
}

func (e *ThermalEnergy) Name() string { return e.name }

func (e *ThermalEnergy) Observe(column []float64, t float64) {
	e.energy = e.spacing * sum(interior(column))
}

func (e *ThermalEnergy) Value() float64 { return e.energy }

func (e *ThermalEnergy) Reset() { e.energy = 0 }

// EnergyDecay is sum(last column) / sum(first column), boundaries included.
type EnergyDecay struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewEnergyDecay() *EnergyDecay {
	return &EnergyDecay{name: "energy_decay"}
}

func (e *EnergyDecay) Name() string { return e.name }

func (e *EnergyDecay) Observe(column []float64, t float64) {
	s := sum(column)
	if e.samples == 0 {
		e.initial = s
	}
	e.current = s
	e.samples++
}

func (e *EnergyDecay) Value() float64 {
	if e.samples == 0 || e.initial == 0 {
		return 0
	}
	return e.current / e.initial
}

func (e *EnergyDecay) Reset() {
	e.initial, e.current, e.samples = 0, 0, 0
}

// MaxEnergyIncrease tracks the largest growth of the interior sum between
// consecutive columns after the first. Heat only leaves through the
// boundaries, so this stays at or below zero up to rounding.
type MaxEnergyIncrease struct {
	name     string
	prev     float64
	maxDelta float64
	samples  int
}

func NewMaxEnergyIncrease() *MaxEnergyIncrease {
	return &MaxEnergyIncrease{name: "max_energy_increase", maxDelta: math.Inf(-1)}
}

func (e *MaxEnergyIncrease) Name() string { return e.name }

func (e *MaxEnergyIncrease) Observe(column []float64, t float64) {
	s := sum(interior(column))
	if e.samples > 0 {
		e.maxDelta = math.Max(e.maxDelta, s-e.prev)
	}
	e.prev = s
	e.samples++
}

func (e *MaxEnergyIncrease) Value() float64 {
	if e.samples < 2 {
		return 0
	}
	return e.maxDelta
}

func (e *MaxEnergyIncrease) Reset() {
	e.prev, e.samples, e.maxDelta = 0, 0, math.Inf(-1)
}
