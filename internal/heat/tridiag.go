package heat

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tridiagonal stores a square matrix by its three bands. Lower[0] and
// Upper[n-1] are unused.
type Tridiagonal[T constraints.Float] struct {
	Lower, Diag, Upper []T

	// Thomas forward-sweep coefficients, filled by Factorize.
	upper []T
	inv   []T
}

func NewTridiagonal[T constraints.Float](n int) *Tridiagonal[T] {
	return &Tridiagonal[T]{
		Lower: make([]T, n),
		Diag:  make([]T, n),
		Upper: make([]T, n),
	}
}

func (t *Tridiagonal[T]) Len() int { return len(t.Diag) }

// MulVec sets dst = t * x.
func (t *Tridiagonal[T]) MulVec(dst, x []T) {
	n := t.Len()
	for i := 0; i < n; i++ {
		v := t.Diag[i] * x[i]
		if i > 0 {
			v += t.Lower[i] * x[i-1]
		}
		if i < n-1 {
			v += t.Upper[i] * x[i+1]
		}
		dst[i] = v
	}
}

// Factorize runs the Thomas forward elimination once so that Solve can be
// called repeatedly. It fails with ErrSingularSystem on a zero pivot.
func (t *Tridiagonal[T]) Factorize() error {
	n := t.Len()
	upper := make([]T, n)
	inv := make([]T, n)
	for i := 0; i < n; i++ {
		pivot := t.Diag[i]
		if i > 0 {
			pivot -= t.Lower[i] * upper[i-1]
		}
		if pivot == 0 {
			return fmt.Errorf("%w: zero pivot at row %d", ErrSingularSystem, i)
		}
		inv[i] = 1 / pivot
		if i < n-1 {
			upper[i] = t.Upper[i] * inv[i]
		}
	}
	t.upper, t.inv = upper, inv
	return nil
}

// Solve sets dst to the solution of t * dst = rhs. dst and rhs may alias.
func (t *Tridiagonal[T]) Solve(dst, rhs []T) error {
	if t.inv == nil {
		if err := t.Factorize(); err != nil {
			return err
		}
	}
	n := t.Len()
	if len(dst) != n || len(rhs) != n {
		return fmt.Errorf("heat: tridiagonal solve of size %d with dst %d, rhs %d", n, len(dst), len(rhs))
	}
	prev := T(0)
	for i := 0; i < n; i++ {
		v := rhs[i]
		if i > 0 {
			v -= t.Lower[i] * prev
		}
		prev = v * t.inv[i]
		dst[i] = prev
	}
	for i := n - 2; i >= 0; i-- {
		dst[i] -= t.upper[i] * dst[i+1]
	}
	return nil
}
