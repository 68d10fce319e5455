// Package heat solves the 1-D transient heat equation on a fixed grid.
//
// The solver advances u_t = alpha * u_xx on [0, L] with homogeneous
// Dirichlet boundaries using the Crank–Nicolson scheme:
//
//   - [Params]: domain length, simulated time, diffusivity and grid sizes
//   - [InitialCondition]: maps the spatial grid to starting temperatures
//   - [Solver]: assembles the implicit/explicit matrices and steps the field
//   - [Solution]: grid plus the full (N+1) x (M+1) temperature history
//
// # Example
//
//	p := heat.Params{Length: 1, Duration: 0.5, Diffusivity: 0.1, Cells: 100, Steps: 1000}
//	grid, field, err := heat.Solve(p, initcond.NewGaussian(p.Length).Eval)
//
// # Thread Safety
//
// A Solver holds no per-solve state, so concurrent calls to Solve are safe.
// Time steps within one solve always run in order on the calling goroutine.
package heat
