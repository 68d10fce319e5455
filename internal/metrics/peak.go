package metrics

import "math"

type PeakTemperature struct {
	name string
	peak float64
	seen bool
}

func NewPeakTemperature() *PeakTemperature {
	return &PeakTemperature{name: "peak_temperature"}
}

func (p *PeakTemperature) Name() string { return p.name }

// Observe keeps the maximum of the latest column only.
func (p *PeakTemperature) Observe(column []float64, t float64) {
	p.peak = math.Inf(-1)
	for _, v := range column {
		p.peak = math.Max(p.peak, v)
	}
	p.seen = len(column) > 0
}

func (p *PeakTemperature) Value() float64 {
	if !p.seen {
		return 0
	}
	return p.peak
}

func (p *PeakTemperature) Reset() {
	p.peak, p.seen = 0, false
}
