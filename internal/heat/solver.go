package heat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Method selects how the implicit system is solved each step.
type Method string

const (
	// MethodLU factors the dense A once with gonum and reuses the LU.
	MethodLU Method = "lu"
	// MethodThomas uses the banded form and the tridiagonal algorithm.
	MethodThomas Method = "thomas"
)

// Methods lists the supported methods.
func Methods() []Method { return []Method{MethodLU, MethodThomas} }

// ParseMethod maps a method name to a Method.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method: %s", s)
}

// Option configures a Solver.
type Option func(*Solver)

// WithMethod selects the linear solver used for the implicit half-step.
func WithMethod(m Method) Option {
	return func(s *Solver) { s.method = m }
}

// WithObserver registers a callback that sees every column of the field.
func WithObserver(obs Observer) Option {
	return func(s *Solver) { s.observer = obs }
}

// Solver advances a heat problem with a fixed method. It holds no state
// between calls to Solve.
type Solver struct {
	method   Method
	observer Observer
}

// NewSolver returns a Solver using MethodLU unless an option says otherwise.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{method: MethodLU}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the Crank–Nicolson scheme with the default solver and returns the
// grid and the (N+1) x (M+1) field.
func Solve(p Params, f InitialCondition) ([]float64, *mat.Dense, error) {
	sol, err := NewSolver().Solve(p, f)
	if err != nil {
		return nil, nil, err
	}
	return sol.Grid, sol.Field, nil
}

// Solve validates p, seeds column 0 with f(grid) and advances M steps.
//
// Column 0 keeps exactly what f returns, boundary rows included. Every later
// column has 0 in rows 0 and N, so an f that is non-zero at the edges shows a
// jump between columns 0 and 1.
func (s *Solver) Solve(p Params, f InitialCondition) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", ErrMalformedInitialCondition)
	}

	grid := Grid(p)
	u0 := f(grid)
	if len(u0) != len(grid) {
		return nil, fmt.Errorf("%w: %d values for %d grid points", ErrMalformedInitialCondition, len(u0), len(grid))
	}

	n := p.Cells - 1
	st, err := s.stepper(n, p.Ratio())
	if err != nil {
		return nil, err
	}

	field := mat.NewDense(p.Cells+1, p.Steps+1, nil)
	field.SetCol(0, u0)

	column := make([]float64, p.Cells+1)
	if s.observer != nil {
		copy(column, u0)
		s.observer(0, 0, column)
	}

	cur := make([]float64, n)
	next := make([]float64, n)
	rhs := make([]float64, n)
	copy(cur, u0[1:p.Cells])

	k := p.TimeStep()
	for j := 0; j < p.Steps; j++ {
		st.explicit(rhs, cur)
		if err := st.implicit(next, rhs); err != nil {
			return nil, fmt.Errorf("step %d: %w", j, err)
		}
		for i, v := range next {
			field.Set(i+1, j+1, v)
		}
		cur, next = next, cur

		if s.observer != nil {
			column[0], column[p.Cells] = 0, 0
			copy(column[1:p.Cells], cur)
			s.observer(j+1, float64(j+1)*k, column)
		}
	}

	return &Solution{Params: p, Grid: grid, Field: field}, nil
}

// stepper applies B and inverts A over the interior unknowns.
type stepper interface {
	explicit(dst, u []float64)
	implicit(dst, rhs []float64) error
}

func (s *Solver) stepper(n int, r float64) (stepper, error) {
	switch s.method {
	case MethodLU, "":
		return newDenseStepper(n, r)
	case MethodThomas:
		return newBandedStepper(n, r)
	default:
		return nil, fmt.Errorf("unknown method: %s", s.method)
	}
}

type denseStepper struct {
	n  int
	b  *mat.Dense
	lu mat.LU
}

func newDenseStepper(n int, r float64) (*denseStepper, error) {
	a, b := Assemble(n, r)
	d := &denseStepper{n: n, b: b}
	d.lu.Factorize(a)
	if c := d.lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) || c > mat.ConditionTolerance {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingularSystem, c)
	}
	return d, nil
}

func (d *denseStepper) explicit(dst, u []float64) {
	mat.NewVecDense(d.n, dst).MulVec(d.b, mat.NewVecDense(d.n, u))
}

func (d *denseStepper) implicit(dst, rhs []float64) error {
	err := d.lu.SolveVecTo(mat.NewVecDense(d.n, dst), false, mat.NewVecDense(d.n, rhs))
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	return err
}

type bandedStepper struct {
	a, b *Tridiagonal[float64]
}

func newBandedStepper(n int, r float64) (*bandedStepper, error) {
	a, b := Bands(n, r)
	if err := a.Factorize(); err != nil {
		return nil, err
	}
	return &bandedStepper{a: a, b: b}, nil
}

func (s *bandedStepper) explicit(dst, u []float64) { s.b.MulVec(dst, u) }

func (s *bandedStepper) implicit(dst, rhs []float64) error { return s.a.Solve(dst, rhs) }
