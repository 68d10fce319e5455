// Package initcond provides initial temperature profiles for the heat solver.
//
// Each profile implements [Profile]; its Eval method has the shape of
// heat.InitialCondition and can be passed directly as a method value:
//
//	g := initcond.NewGaussian(1.0)
//	sol, err := heat.NewSolver().Solve(p, g.Eval)
//
// Profiles also expose their parameters by name through GetParams and
// SetParam, so configuration files and the CLI can tune them without
// knowing the concrete type.
package initcond
