package initcond

import "math"

// Spike is zero everywhere except one grid index. A negative Index selects
// the midpoint.
type Spike struct {
	Index int
	Value float64
}

func NewSpike() *Spike { return &Spike{Index: -1, Value: 10} }

func (s *Spike) Name() string { return "spike" }

func (s *Spike) Eval(grid []float64) []float64 {
	u := make([]float64, len(grid))
	if len(u) == 0 {
		return u
	}
	i := s.Index
	if i < 0 {
		i = (len(u) - 1) / 2
	}
	if i < len(u) {
		u[i] = s.Value
	}
	return u
}

func (s *Spike) GetParams() map[string]float64 {
	return map[string]float64{"index": float64(s.Index), "value": s.Value}
}

func (s *Spike) SetParam(n string, v float64) error {
	switch n {
	case "index":
		s.Index = int(v)
	case "value":
		s.Value = v
	default:
		return unknownParam(s.Name(), n)
	}
	return nil
}

// Sine is Amplitude*sin(Mode*pi*x/Length). It vanishes at both ends and is
// an eigenvector of the discrete scheme.
type Sine struct {
	Mode      int
	Amplitude float64
	Length    float64
}

func NewSine(length float64) *Sine { return &Sine{Mode: 1, Amplitude: 1, Length: length} }

func (s *Sine) Name() string { return "sine" }

func (s *Sine) Eval(grid []float64) []float64 {
	u := make([]float64, len(grid))
	k := float64(s.Mode) * math.Pi / s.Length
	for i, x := range grid {
		u[i] = s.Amplitude * math.Sin(k*x)
	}
	if n := len(u); n > 0 {
		u[0], u[n-1] = 0, 0
	}
	return u
}

func (s *Sine) GetParams() map[string]float64 {
	return map[string]float64{"mode": float64(s.Mode), "amplitude": s.Amplitude, "length": s.Length}
}

func (s *Sine) SetParam(n string, v float64) error {
	switch n {
	case "mode":
		s.Mode = int(v)
	case "amplitude":
		s.Amplitude = v
	case "length":
		s.Length = v
	default:
		return unknownParam(s.Name(), n)
	}
	return nil
}

// Box is Value on [Lo, Hi] and zero elsewhere.
type Box struct {
	Lo, Hi, Value float64
}

func NewBox(length float64) *Box { return &Box{Lo: 0.4 * length, Hi: 0.6 * length, Value: 1} }

func (b *Box) Name() string { return "box" }

func (b *Box) Eval(grid []float64) []float64 {
	u := make([]float64, len(grid))
	for i, x := range grid {
		if x >= b.Lo && x <= b.Hi {
			u[i] = b.Value
		}
	}
	return u
}

func (b *Box) GetParams() map[string]float64 {
	return map[string]float64{"lo": b.Lo, "hi": b.Hi, "value": b.Value}
}

func (b *Box) SetParam(n string, v float64) error {
	switch n {
	case "lo":
		b.Lo = v
	case "hi":
		b.Hi = v
	case "value":
		b.Value = v
	default:
		return unknownParam(b.Name(), n)
	}
	return nil
}

// Uniform is a constant temperature, including at the boundaries.
type Uniform struct {
	Value float64
}

func NewUniform() *Uniform { return &Uniform{Value: 1} }

func (u *Uniform) Name() string { return "uniform" }

func (u *Uniform) Eval(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i := range out {
		out[i] = u.Value
	}
	return out
}

func (u *Uniform) GetParams() map[string]float64 {
	return map[string]float64{"value": u.Value}
}

func (u *Uniform) SetParam(n string, v float64) error {
	if n != "value" {
		return unknownParam(u.Name(), n)
	}
	u.Value = v
	return nil
}
