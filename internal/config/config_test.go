package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/heatsim/internal/initcond"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Initial.Kind != "gaussian" {
		t.Errorf("expected gaussian initial condition, got %s", cfg.Initial.Kind)
	}
	if cfg.Cells != 100 || cfg.Steps != 1000 {
		t.Errorf("unexpected grid %dx%d", cfg.Cells, cfg.Steps)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "jacobi"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown method")
	}

	cfg = DefaultConfig()
	cfg.Cells = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for one cell")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.yaml")

	cfg := DefaultConfig()
	cfg.Diffusivity = 0.25
	cfg.Initial.Params["center"] = 0.7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Diffusivity != 0.25 {
		t.Errorf("expected diffusivity 0.25, got %f", loaded.Diffusivity)
	}
	if loaded.Initial.Params["center"] != 0.7 {
		t.Errorf("expected center 0.7, got %f", loaded.Initial.Params["center"])
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.yaml")
	if err := os.WriteFile(path, []byte("cells: 20\nmethod: thomas\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Cells != 20 || cfg.Method != "thomas" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Steps != DefaultSteps || cfg.Length != DefaultLength {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heat.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOtherProfileDropsDefaultParams(t *testing.T) {
	cfg, err := Load(writeConfig(t, "initial:\n  kind: sine\n  mode: 2\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Initial.Kind != "sine" {
		t.Errorf("expected sine, got %s", cfg.Initial.Kind)
	}
	if len(cfg.Initial.Params) != 1 || cfg.Initial.Params["mode"] != 2 {
		t.Errorf("expected only mode=2, got %v", cfg.Initial.Params)
	}

	p, err := initcond.New(cfg.Initial.Kind, cfg.Length)
	if err != nil {
		t.Fatal(err)
	}
	if err := initcond.Apply(p, cfg.Initial.Params); err != nil {
		t.Errorf("params do not fit the profile: %v", err)
	}
}

func TestLoadInitialWithoutKindMerges(t *testing.T) {
	cfg, err := Load(writeConfig(t, "initial:\n  center: 0.6\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Initial.Kind != "gaussian" {
		t.Errorf("expected default kind, got %s", cfg.Initial.Kind)
	}
	if cfg.Initial.Params["center"] != 0.6 || cfg.Initial.Params["strength"] != DefaultStrength {
		t.Errorf("expected merged params, got %v", cfg.Initial.Params)
	}
}

func TestLoadNestedParams(t *testing.T) {
	cfg, err := Load(writeConfig(t, "initial:\n  kind: box\n  params:\n    value: 4\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Initial.Kind != "box" || cfg.Initial.Params["value"] != 4 {
		t.Errorf("unexpected initial %+v", cfg.Initial)
	}
}

func TestLoadRejectsNonNumericParam(t *testing.T) {
	if _, err := Load(writeConfig(t, "initial:\n  kind: sine\n  mode: two\n")); err == nil {
		t.Error("expected error for non-numeric parameter")
	}
}

func TestSaveWritesFlatInitial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.yaml")
	cfg := GetPreset("sine")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "params:") {
		t.Errorf("expected flat initial block:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Initial.Kind != "sine" || len(loaded.Initial.Params) != len(cfg.Initial.Params) {
		t.Errorf("round trip changed initial: %+v", loaded.Initial)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("spike")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Cells != 4 || cfg.Steps != 2 {
		t.Errorf("unexpected spike grid %dx%d", cfg.Cells, cfg.Steps)
	}

	cfg.Initial.Params["value"] = 99
	if Presets["spike"].Initial.Params["value"] != 10 {
		t.Error("preset mutated through returned copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
