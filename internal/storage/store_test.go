package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/heat"
)

func solve(t *testing.T, cfg *config.Config) *heat.Solution {
	t.Helper()
	p := cfg.Params()
	sol, err := heat.NewSolver().Solve(p, func(grid []float64) []float64 {
		u := make([]float64, len(grid))
		u[len(u)/2] = 10
		return u
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return sol
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.GetPreset("spike")
	sol := solve(t, cfg)

	runID, err := st.Save(cfg, sol, map[string]float64{"energy_decay": 0.75})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Initial != "spike" {
		t.Errorf("expected initial 'spike', got '%s'", meta.Initial)
	}
	if meta.Params() != sol.Params {
		t.Errorf("params mismatch: %+v vs %+v", meta.Params(), sol.Params)
	}
	if meta.Metrics["energy_decay"] != 0.75 {
		t.Errorf("expected energy_decay 0.75, got %f", meta.Metrics["energy_decay"])
	}

	snap, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	if len(snap.Times) != cfg.Steps+1 {
		t.Errorf("expected %d times, got %d", cfg.Steps+1, len(snap.Times))
	}

	back, err := snap.Solution(meta)
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if !mat.Equal(back.Field, sol.Field) {
		t.Error("field did not round-trip exactly")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg := config.GetPreset("minimal")
	sol := solve(t, cfg)
	for i := 0; i < 2; i++ {
		if _, err := st.Save(cfg, sol, nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	runs, err := New(t.TempDir() + "/absent").List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestReadCSVRejectsGarbage(t *testing.T) {
	_, err := ReadCSV(bytes.NewBufferString("time,x0\n0,abc\n"))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestExportJSON(t *testing.T) {
	cfg := config.GetPreset("spike")
	sol := solve(t, cfg)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sol); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}
	snap, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read csv failed: %v", err)
	}

	meta := &RunMetadata{ID: "spike_1", Initial: "spike", Steps: sol.Params.Steps, Grid: sol.Grid}
	var out bytes.Buffer
	if err := ExportJSON(&out, meta, snap); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(out.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Steps != 2 || len(data.Field) != 3 || len(data.Field[0]) != 5 {
		t.Errorf("unexpected export shape: steps=%d field=%d", data.Steps, len(data.Field))
	}
}

func TestSaveFailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cfg := config.GetPreset("spike")
	sol := solve(t, cfg)
	if _, err := st.Save(cfg, sol, map[string]float64{"energy_decay": math.NaN()}); err == nil {
		t.Fatal("expected error encoding NaN metric")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no run directories, found %d", len(entries))
	}
}
