package metrics

import "github.com/san-kum/heatsim/internal/heat"

// Metric accumulates a scalar over the columns of a temperature field.
type Metric interface {
	Name() string
	Observe(column []float64, t float64)
	Value() float64
	Reset()
}

// Observer fans every solver column out to ms.
func Observer(ms ...Metric) heat.Observer {
	return func(_ int, t float64, column []float64) {
		for _, m := range ms {
			m.Observe(column, t)
		}
	}
}

func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Replay feeds every column of a finished solution through ms.
func Replay(sol *heat.Solution, ms ...Metric) {
	_, cols := sol.Field.Dims()
	for j := 0; j < cols; j++ {
		col := sol.Column(j)
		for _, m := range ms {
			m.Observe(col, sol.Time(j))
		}
	}
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

func interior(column []float64) []float64 {
	if len(column) < 3 {
		return nil
	}
	return column[1 : len(column)-1]
}
