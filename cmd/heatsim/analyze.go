package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/analysis"
	"github.com/san-kum/heatsim/internal/heat"
	"github.com/san-kum/heatsim/internal/initcond"
	"github.com/san-kum/heatsim/internal/viz"
)

func spectrumRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	if modes < 1 {
		return fmt.Errorf("--modes must be positive, got %d", modes)
	}

	first := sol.Column(0)
	fmt.Printf("run: %s\n\n", meta.ID)
	fmt.Println(asciigraph.Plot(analysis.PowerSpectrum(first),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("power spectrum at t=0"),
	))
	fmt.Println()

	r := meta.Params().Ratio()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tDOMINANT\t|b1|\t|b2|\t|b3|")
	for _, j := range viz.EvenSteps(meta.Steps, 6) {
		b := analysis.SineCoefficients(sol.Column(j), modes)
		row := []float64{0, 0, 0}
		for k := range row {
			if k < len(b) {
				row[k] = math.Abs(b[k])
			}
		}
		fmt.Fprintf(w, "%.4g\t%d\t%.4g\t%.4g\t%.4g\n", sol.Time(j), analysis.DominantMode(b), row[0], row[1], row[2])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nper-step amplification:")
	for m := 1; m <= min(modes, 5); m++ {
		fmt.Println("  " + viz.Stat(fmt.Sprintf("mode %d", m), fmt.Sprintf("%.6f", analysis.AmplificationFactor(r, m, meta.Cells))))
	}
	return nil
}

func verifyModes(cmd *cobra.Command, args []string) error {
	p := heat.Params{
		Length:      length,
		Duration:    duration,
		Diffusivity: diffusivity,
		Cells:       cells,
		Steps:       steps,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	profile, err := initcond.New("sine", p.Length)
	if err != nil {
		return err
	}
	if err := profile.SetParam("mode", float64(mode)); err != nil {
		return err
	}

	fmt.Printf("mode %d on %d cells x %d steps (r=%.4g)\n\n", mode, p.Cells, p.Steps, p.Ratio())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tVS DISCRETE\tVS CONTINUOUS\tSTATUS")

	discrete := analysis.DiscreteMode(p, mode, 1)
	continuous := analysis.ContinuousMode(p, mode, 1)
	failed := false
	for _, m := range heat.Methods() {
		sol, err := heat.NewSolver(heat.WithMethod(m)).Solve(p, profile.Eval)
		if err != nil {
			return err
		}
		de := analysis.MaxAbsError(sol.Field, discrete)
		ce := analysis.MaxAbsError(sol.Field, continuous)

		status := viz.StatusOK.Render("ok")
		if de > 1e-9 {
			status = viz.StatusFail.Render("mismatch")
			failed = true
		}
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%s\n", m, de, ce, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed {
		return fmt.Errorf("solver does not reproduce the discrete mode %d", mode)
	}
	return nil
}
