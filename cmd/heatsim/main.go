package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/heat"
	"github.com/san-kum/heatsim/internal/storage"
	"github.com/san-kum/heatsim/internal/viz"
)

var (
	dataDir string
	verbose bool

	length      float64
	duration    float64
	diffusivity float64
	cells       int
	steps       int
	method      string
	initial     string
	// initial condition parameters, forwarded by name
	center    float64
	strength  float64
	width     float64
	mode      int
	amplitude float64
	value     float64

	configFile string
	saveConfig string
	preset     string

	// viewing
	snapshots int
	mapWidth  int
	mapHeight int
	theme     string
	pngOut    string
	svgOut    string
	svgLines  int
	frameRate int

	alphas []float64
	modes  int
)

// main registers the heatsim commands and runs the root command, exiting
// with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "heatsim",
		Short:        "1-D heat equation lab (Crank–Nicolson)",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-step diagnostics")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "solve and store a run",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	addProblemFlags(runCmd)
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this yaml file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot temperature profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&snapshots, "snapshots", 4, "number of time columns to overlay")

	heatmapCmd := &cobra.Command{
		Use:   "heatmap [run_id]",
		Short: "space-time heat map in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  heatmapRun,
	}
	heatmapCmd.Flags().IntVar(&mapWidth, "width", 80, "columns")
	heatmapCmd.Flags().IntVar(&mapHeight, "height", 24, "rows")
	heatmapCmd.Flags().StringVar(&theme, "theme", "hot", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	pngCmd := &cobra.Command{
		Use:   "png [run_id]",
		Short: "render the field to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  pngRun,
	}
	pngCmd.Flags().StringVarP(&pngOut, "output", "o", "1d-heat-distribution.png", "output file")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "interactive replay of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	replayCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	replayCmd.Flags().StringVar(&theme, "theme", "hot", "color theme")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "write temperature profiles as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "profiles.svg", "output file")
	svgCmd.Flags().IntVar(&svgLines, "snapshots", 6, "number of time columns")
	svgCmd.Flags().StringVar(&theme, "theme", "hot", "color theme")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run field to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINITIAL\tL\tT\tALPHA\tN\tM\tMETHOD")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%d\t%s\n",
					name, c.Initial.Kind, c.Length, c.Duration, c.Diffusivity, c.Cells, c.Steps, c.Method)
			}
			return w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark solve methods across grid sizes",
		RunE:  benchMethods,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "solve the same problem for several diffusivities in parallel",
		RunE:  sweepDiffusivity,
	}
	addProblemFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&alphas, "alphas", []float64{0.01, 0.05, 0.1, 0.5, 1}, "diffusivities")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "sine-mode content of a run over time",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&modes, "modes", 8, "number of sine modes")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check the solver against exact sine-mode solutions",
		RunE:  verifyModes,
	}
	verifyCmd.Flags().Float64Var(&length, "length", 1.0, "domain length L")
	verifyCmd.Flags().Float64Var(&duration, "time", 0.5, "simulated time T")
	verifyCmd.Flags().Float64Var(&diffusivity, "alpha", 0.1, "diffusivity")
	verifyCmd.Flags().IntVar(&cells, "cells", 100, "grid cells N")
	verifyCmd.Flags().IntVar(&steps, "steps", 1000, "time steps M")
	verifyCmd.Flags().IntVar(&mode, "mode", 1, "sine mode")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, heatmapCmd, pngCmd, svgCmd, replayCmd, exportJSONCmd, exportCSVCmd,
		presetsCmd, benchCmd, sweepCmd, spectrumCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().Float64Var(&length, "length", def.Length, "domain length L")
	cmd.Flags().Float64Var(&duration, "time", def.Duration, "simulated time T")
	cmd.Flags().Float64Var(&diffusivity, "alpha", def.Diffusivity, "diffusivity")
	cmd.Flags().IntVar(&cells, "cells", def.Cells, "grid cells N")
	cmd.Flags().IntVar(&steps, "steps", def.Steps, "time steps M")
	cmd.Flags().StringVar(&method, "method", def.Method, "linear solver (lu, thomas)")
	cmd.Flags().StringVar(&initial, "initial", def.Initial.Kind, "initial condition (gaussian, spike, sine, box, uniform)")
	cmd.Flags().Float64Var(&center, "center", 0, "gaussian center")
	cmd.Flags().Float64Var(&strength, "strength", 0, "gaussian strength")
	cmd.Flags().Float64Var(&width, "width", 0, "gaussian width")
	cmd.Flags().IntVar(&mode, "mode", 1, "sine mode")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0, "sine amplitude")
	cmd.Flags().Float64Var(&value, "value", 0, "spike/box/uniform value")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("alpha") {
		cfg.Diffusivity = diffusivity
	}
	if flags.Changed("cells") {
		cfg.Cells = cells
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("initial") && initial != cfg.Initial.Kind {
		cfg.Initial = config.InitialConfig{Kind: initial}
	}

	params := map[string]float64{}
	for name, v := range map[string]float64{
		"center":    center,
		"strength":  strength,
		"width":     width,
		"mode":      float64(mode),
		"amplitude": amplitude,
		"value":     value,
	} {
		if flags.Changed(name) {
			params[name] = v
		}
	}
	if len(params) > 0 {
		if cfg.Initial.Params == nil {
			cfg.Initial.Params = map[string]float64{}
		}
		for k, v := range params {
			cfg.Initial.Params[k] = v
		}
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return err
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}
	if verbose {
		every := max(cfg.Steps/10, 1)
		exp.Observe(func(step int, t float64, column []float64) {
			if step%every == 0 || step == cfg.Steps {
				peak := column[0]
				for _, v := range column {
					peak = max(peak, v)
				}
				log.Printf("step %d/%d t=%.5f peak=%.6f", step, cfg.Steps, t, peak)
			}
		})
	}

	p := cfg.Params()
	fmt.Printf("solving %s on %d cells x %d steps (r=%.4g, %s)...\n", cfg.Initial.Kind, p.Cells, p.Steps, p.Ratio(), cfg.Method)

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result.Solution, result.Metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	if inc := result.Metrics["max_energy_increase"]; inc > 1e-9 {
		fmt.Println(viz.StatusWarn.Render(fmt.Sprintf("interior energy grew by %.3g between steps", inc)))
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println("  " + viz.Stat(name, fmt.Sprintf("%.6g", m[name])))
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINITIAL\tTIME\tL\tT\tALPHA\tN\tM\tMETHOD")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\t%d\t%s\n",
			run.ID,
			run.Initial,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			run.Duration,
			run.Diffusivity,
			run.Cells,
			run.Steps,
			run.Method,
		)
	}

	return w.Flush()
}

func loadSolution(runID string) (*storage.RunMetadata, *heat.Solution, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	snap, err := st.LoadField(runID)
	if err != nil {
		return nil, nil, err
	}
	sol, err := snap.Solution(meta)
	if err != nil {
		return nil, nil, err
	}
	return meta, sol, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("initial: %s\n\n", meta.Initial)

	cols := viz.EvenSteps(meta.Steps, snapshots)
	times := make([]string, len(cols))
	for k, j := range cols {
		times[k] = fmt.Sprintf("%.3g", sol.Time(j))
	}
	fmt.Println(viz.Profiles(sol, cols, "u(x) at t = "+strings.Join(times, ", "), 80, 15))
	return nil
}

func heatmapRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("temperature distribution: %s\n\n", meta.ID)
	fmt.Print(viz.Heatmap(sol, viz.GetTheme(theme), mapWidth, mapHeight))
	return nil
}

func pngRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	if err := viz.SavePNG(pngOut, sol, "Temperature Distribution ("+meta.Initial+")"); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", pngOut)
	return nil
}

func svgRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	f, err := os.Create(svgOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := viz.ProfilesSVG(f, sol, viz.EvenSteps(meta.Steps, svgLines), viz.GetTheme(theme), 800, 400); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func replayRun(cmd *cobra.Command, args []string) error {
	meta, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	viz.SetTheme(theme)
	return viz.RunReplay(sol, fmt.Sprintf("%s · alpha=%g · %s", meta.ID, meta.Diffusivity, meta.Method), frameRate)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	snap, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, snap)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, sol, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, sol)
}

func benchMethods(cmd *cobra.Command, args []string) error {
	sizes := []int{16, 64, 256, 1024}
	const stepCount = 500

	fmt.Printf("benchmarking %d steps\n\n", stepCount)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CELLS\tMETHOD\tTIME\tSTEPS/SEC")

	base := config.DefaultConfig()
	for _, n := range sizes {
		for _, m := range heat.Methods() {
			cfg := base.Clone()
			cfg.Cells = n
			cfg.Steps = stepCount
			cfg.Method = string(m)

			exp := experiment.New(cfg)
			if err := exp.Setup(experiment.NewRegistry()); err != nil {
				return err
			}

			start := time.Now()
			if _, err := exp.Run(context.Background()); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%s\t%v\t%.0f\n", n, m, elapsed, float64(stepCount)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func sweepDiffusivity(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cfgs := experiment.Vary(base, alphas, func(c *config.Config, v float64) { c.Diffusivity = v })

	start := time.Now()
	results, err := experiment.Sweep(context.Background(), experiment.NewRegistry(), cfgs)
	if err != nil {
		return err
	}
	fmt.Printf("%d solves in %v\n\n", len(results), time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHA\tR\tDECAY\tPEAK\tENERGY")
	for i, res := range results {
		fmt.Fprintf(w, "%g\t%.4g\t%.6f\t%.6f\t%.6f\n",
			alphas[i],
			res.Solution.Params.Ratio(),
			res.Metrics["energy_decay"],
			res.Metrics["peak_temperature"],
			res.Metrics["thermal_energy"],
		)
	}
	return w.Flush()
}
