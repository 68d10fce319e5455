package experiment_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/heat"
)

var _ = Describe("Registry", func() {
	var r *experiment.Registry

	BeforeEach(func() {
		r = experiment.NewRegistry()
	})

	It("knows every initial condition and method", func() {
		Expect(r.ListProfiles()).To(ContainElements("gaussian", "spike", "sine", "box", "uniform"))
		Expect(r.ListMethods()).To(Equal([]string{"lu", "thomas"}))
	})

	It("applies profile parameters over defaults", func() {
		p, err := r.GetProfile("gaussian", 2.0, map[string]float64{"strength": 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(p.GetParams()).To(HaveKeyWithValue("strength", 3.0))
		Expect(p.GetParams()).To(HaveKeyWithValue("center", 0.4))
	})

	It("rejects unknown names", func() {
		_, err := r.GetProfile("candle", 1, nil)
		Expect(err).To(HaveOccurred())
		_, err = r.GetMethod("gauss-seidel")
		Expect(err).To(HaveOccurred())
	})

	It("builds fresh metrics each time", func() {
		p := heat.Params{Length: 1, Cells: 10}
		a := r.DefaultMetrics(p)
		b := r.DefaultMetrics(p)
		Expect(a).To(HaveLen(4))
		Expect(a[0]).NotTo(BeIdenticalTo(b[0]))
	})
})

var _ = Describe("Experiment", func() {
	var (
		r   *experiment.Registry
		ctx context.Context
	)

	BeforeEach(func() {
		r = experiment.NewRegistry()
		ctx = context.Background()
	})

	It("runs the spike preset", func() {
		exp := experiment.New(config.GetPreset("spike"))
		Expect(exp.Setup(r)).To(Succeed())

		res, err := exp.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		rows, cols := res.Solution.Field.Dims()
		Expect(rows).To(Equal(5))
		Expect(cols).To(Equal(3))
		Expect(res.Solution.Field.At(2, 2)).To(BeNumerically("<", 10))
		Expect(res.Metrics).To(HaveKey("energy_decay"))
		Expect(res.Metrics["energy_decay"]).To(BeNumerically("<", 1))
	})

	It("calls the extra observer for every column", func() {
		cfg := config.GetPreset("sine")
		exp := experiment.New(cfg)
		Expect(exp.Setup(r)).To(Succeed())

		seen := 0
		exp.Observe(func(int, float64, []float64) { seen++ })
		_, err := exp.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal(cfg.Steps + 1))
	})

	It("fails setup on invalid parameters", func() {
		cfg := config.DefaultConfig()
		cfg.Diffusivity = -1
		err := experiment.New(cfg).Setup(r)
		Expect(errors.Is(err, heat.ErrInvalidParameter)).To(BeTrue())
	})

	It("refuses to run without setup", func() {
		_, err := experiment.New(config.DefaultConfig()).Run(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("honours a canceled context before solving", func() {
		exp := experiment.New(config.GetPreset("minimal"))
		Expect(exp.Setup(r)).To(Succeed())
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := exp.Run(canceled)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Sweep", func() {
	It("returns results in input order", func() {
		base := config.GetPreset("sine")
		alphas := []float64{0.01, 0.05, 0.1, 0.5, 1.0}
		cfgs := experiment.Vary(base, alphas, func(c *config.Config, v float64) { c.Diffusivity = v })

		results, err := experiment.Sweep(context.Background(), experiment.NewRegistry(), cfgs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(alphas)))

		for i, res := range results {
			Expect(res.Solution.Params.Diffusivity).To(Equal(alphas[i]))
		}
		for i := 1; i < len(results); i++ {
			Expect(results[i].Metrics["energy_decay"]).To(BeNumerically("<", results[i-1].Metrics["energy_decay"]))
		}
	})

	It("reports the failing config", func() {
		cfgs := []*config.Config{config.GetPreset("minimal"), config.GetPreset("minimal")}
		cfgs[1].Steps = 0

		_, err := experiment.Sweep(context.Background(), experiment.NewRegistry(), cfgs)
		Expect(err).To(MatchError(ContainSubstring("sweep 1")))
		Expect(errors.Is(err, heat.ErrInvalidParameter)).To(BeTrue())
	})

	It("reports the lowest failing index when several fail", func() {
		cfgs := experiment.Vary(config.GetPreset("minimal"), []float64{0.1, -1, 0.2, -2}, func(c *config.Config, v float64) {
			c.Diffusivity = v
		})

		results, err := experiment.Sweep(context.Background(), experiment.NewRegistry(), cfgs)
		Expect(results).To(BeNil())
		Expect(err).To(MatchError(HavePrefix("sweep 1:")))
		Expect(errors.Is(err, heat.ErrInvalidParameter)).To(BeTrue())
	})

	It("handles an empty sweep", func() {
		results, err := experiment.Sweep(context.Background(), experiment.NewRegistry(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})
})

var _ = Describe("Config files", func() {
	It("set up a non-default profile from yaml", func() {
		path := filepath.Join(GinkgoT().TempDir(), "sine.yaml")
		doc := "cells: 16\nsteps: 8\ninitial:\n  kind: sine\n  mode: 2\n  amplitude: 3\n"
		Expect(os.WriteFile(path, []byte(doc), 0644)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Initial.Params).To(Equal(map[string]float64{"mode": 2, "amplitude": 3}))

		exp := experiment.New(cfg)
		Expect(exp.Setup(experiment.NewRegistry())).To(Succeed())
		Expect(exp.Profile().GetParams()).To(HaveKeyWithValue("mode", 2.0))

		res, err := exp.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solution.Field.At(4, 0)).To(BeNumerically("~", 3, 1e-12))
	})
})
