// Package analysis checks heat solutions against their spectral structure.
//
// Sine modes sin(m*pi*x/L) are eigenvectors of both the continuous operator
// and the discrete Crank–Nicolson matrices, so a sine initial condition has a
// closed-form discrete solution ([DiscreteMode]) and a closed-form PDE
// solution ([ContinuousMode]). Comparing the solver with the first isolates
// linear-algebra errors; comparing with the second measures discretization
// error.
package analysis
