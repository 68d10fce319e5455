package heat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTridiagonalMatchesDense(t *testing.T) {
	const n = 7
	band, _ := Bands(n, 1.3)
	dense, _ := Assemble(n, 1.3)

	rhs := []float64{1, -2, 3, 0.5, 0, 4, -1}
	got := make([]float64, n)
	require.NoError(t, band.Solve(got, rhs))

	var want mat.VecDense
	require.NoError(t, want.SolveVec(dense, mat.NewVecDense(n, rhs)))
	for i := range got {
		require.InDelta(t, want.AtVec(i), got[i], 1e-12)
	}

	back := make([]float64, n)
	band.MulVec(back, got)
	require.InDeltaSlice(t, rhs, back, 1e-12)
}

func TestTridiagonalSingular(t *testing.T) {
	tri := NewTridiagonal[float64](3)
	tri.Diag[0], tri.Diag[1], tri.Diag[2] = 1, 0, 1
	require.ErrorIs(t, tri.Factorize(), ErrSingularSystem)
	require.ErrorIs(t, tri.Solve(make([]float64, 3), make([]float64, 3)), ErrSingularSystem)
}

func TestTridiagonalFloat32(t *testing.T) {
	tri := NewTridiagonal[float32](2)
	tri.Diag[0], tri.Diag[1] = 2, 2
	tri.Upper[0], tri.Lower[1] = 1, 1

	x := make([]float32, 2)
	require.NoError(t, tri.Solve(x, []float32{3, 3}))
	require.InDelta(t, 1.0, x[0], 1e-6)
	require.InDelta(t, 1.0, x[1], 1e-6)
}
