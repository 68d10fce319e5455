package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/heat"
)

const (
	DefaultLength      = 1.0
	DefaultDuration    = 0.5
	DefaultDiffusivity = 0.1
	DefaultCells       = 100
	DefaultSteps       = 1000
	DefaultStrength    = 10.0
	DefaultWidth       = 0.01
)

type Config struct {
	Length      float64       `yaml:"length"`
	Duration    float64       `yaml:"duration"`
	Diffusivity float64       `yaml:"diffusivity"`
	Cells       int           `yaml:"cells"`
	Steps       int           `yaml:"steps"`
	Method      string        `yaml:"method"`
	Initial     InitialConfig `yaml:"initial"`
}

// InitialConfig selects an initcond profile by Kind. Params holds the
// profile's own parameters (center, strength, mode, ...); anything missing
// keeps the profile default. In yaml the parameters sit next to kind:
//
//	initial:
//	  kind: sine
//	  mode: 2
type InitialConfig struct {
	Kind   string
	Params map[string]float64
}

// UnmarshalYAML reads kind plus flat parameter keys. A document that names
// a kind replaces Params entirely; one without kind merges into them.
func (ic *InitialConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}

	params := make(map[string]float64, len(raw))
	kind := ""
	for key, node := range raw {
		switch key {
		case "kind":
			if err := node.Decode(&kind); err != nil {
				return fmt.Errorf("initial.kind: %w", err)
			}
		case "params":
			// nested form written by older versions
			var nested map[string]float64
			if err := node.Decode(&nested); err != nil {
				return fmt.Errorf("initial.params: %w", err)
			}
			for k, v := range nested {
				params[k] = v
			}
		default:
			var v float64
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("initial.%s: %w", key, err)
			}
			params[key] = v
		}
	}

	if kind != "" {
		ic.Kind = kind
		ic.Params = params
		return nil
	}
	if ic.Params == nil {
		ic.Params = make(map[string]float64, len(params))
	}
	for k, v := range params {
		ic.Params[k] = v
	}
	return nil
}

// MarshalYAML writes the same flat layout UnmarshalYAML reads.
func (ic InitialConfig) MarshalYAML() (interface{}, error) {
	out := make(map[string]interface{}, len(ic.Params)+1)
	for k, v := range ic.Params {
		out[k] = v
	}
	out["kind"] = ic.Kind
	return out, nil
}

// DefaultConfig is a rod of length 1 heated by a candle at 0.2.
func DefaultConfig() *Config {
	return &Config{
		Length:      DefaultLength,
		Duration:    DefaultDuration,
		Diffusivity: DefaultDiffusivity,
		Cells:       DefaultCells,
		Steps:       DefaultSteps,
		Method:      string(heat.MethodLU),
		Initial: InitialConfig{
			Kind: "gaussian",
			Params: map[string]float64{
				"center":   0.2 * DefaultLength,
				"strength": DefaultStrength,
				"width":    DefaultWidth,
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() heat.Params {
	return heat.Params{
		Length:      c.Length,
		Duration:    c.Duration,
		Diffusivity: c.Diffusivity,
		Cells:       c.Cells,
		Steps:       c.Steps,
	}
}

// Validate checks the solver parameters and the method name.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := heat.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Initial.Params != nil {
		out.Initial.Params = make(map[string]float64, len(c.Initial.Params))
		for k, v := range c.Initial.Params {
			out.Initial.Params[k] = v
		}
	}
	return &out
}
