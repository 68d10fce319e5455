package heat

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Assemble builds the implicit (A) and explicit (B) Crank–Nicolson matrices
// over n interior points. A has 1+r on the diagonal and -r/2 beside it, B has
// 1-r and +r/2. Every row uses the same stencil.
func Assemble(n int, r float64) (a, b *mat.Dense) {
	a = mat.NewDense(n, n, nil)
	b = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1+r)
		b.Set(i, i, 1-r)
		if i > 0 {
			a.Set(i, i-1, -r/2)
			b.Set(i, i-1, r/2)
		}
		if i < n-1 {
			a.Set(i, i+1, -r/2)
			b.Set(i, i+1, r/2)
		}
	}
	return a, b
}

// Bands is the banded form of Assemble.
func Bands(n int, r float64) (a, b *Tridiagonal[float64]) {
	a = NewTridiagonal[float64](n)
	b = NewTridiagonal[float64](n)
	for i := 0; i < n; i++ {
		a.Diag[i], b.Diag[i] = 1+r, 1-r
		if i > 0 {
			a.Lower[i], b.Lower[i] = -r/2, r/2
		}
		if i < n-1 {
			a.Upper[i], b.Upper[i] = -r/2, r/2
		}
	}
	return a, b
}

// DiagonallyDominant reports whether every row of the square matrix m has
// |m_ii| strictly greater than the sum of the other magnitudes in the row.
func DiagonallyDominant(m mat.Matrix) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	for i := 0; i < rows; i++ {
		off := 0.0
		for j := 0; j < cols; j++ {
			if j != i {
				off += math.Abs(m.At(i, j))
			}
		}
		if !(math.Abs(m.At(i, i)) > off) {
			return false
		}
	}
	return true
}
