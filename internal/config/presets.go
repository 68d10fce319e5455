package config

import "sort"

var Presets = map[string]*Config{
	"candle": DefaultConfig(),
	"spike": {
		Length: 1.0, Duration: 0.5, Diffusivity: 0.1, Cells: 4, Steps: 2, Method: "lu",
		Initial: InitialConfig{Kind: "spike", Params: map[string]float64{"index": 2, "value": 10}},
	},
	"sine": {
		Length: 1.0, Duration: 1.0, Diffusivity: 0.1, Cells: 64, Steps: 200, Method: "lu",
		Initial: InitialConfig{Kind: "sine", Params: map[string]float64{"mode": 1, "amplitude": 1, "length": 1.0}},
	},
	"minimal": {
		Length: 1.0, Duration: 0.5, Diffusivity: 0.1, Cells: 2, Steps: 10, Method: "lu",
		Initial: InitialConfig{Kind: "spike", Params: map[string]float64{"index": 1, "value": 1}},
	},
	"fine": {
		Length: 1.0, Duration: 0.5, Diffusivity: 0.1, Cells: 400, Steps: 2000, Method: "thomas",
		Initial: InitialConfig{Kind: "gaussian", Params: map[string]float64{"center": 0.2, "strength": 10, "width": 0.01}},
	},
	"uniform": {
		Length: 1.0, Duration: 0.2, Diffusivity: 0.5, Cells: 50, Steps: 100, Method: "lu",
		Initial: InitialConfig{Kind: "uniform", Params: map[string]float64{"value": 1}},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
