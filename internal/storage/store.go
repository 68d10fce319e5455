package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/heat"
)

const (
	metadataFile = "metadata.json"
	fieldFile    = "field.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Length        float64            `json:"length"`
	Duration      float64            `json:"duration"`
	Diffusivity   float64            `json:"diffusivity"`
	Cells         int                `json:"cells"`
	Steps         int                `json:"steps"`
	Method        string             `json:"method"`
	Initial       string             `json:"initial"`
	InitialParams map[string]float64 `json:"initial_params,omitempty"`
	Grid          []float64          `json:"grid"`
	Metrics       map[string]float64 `json:"metrics"`
}

func (m *RunMetadata) Params() heat.Params {
	return heat.Params{
		Length:      m.Length,
		Duration:    m.Duration,
		Diffusivity: m.Diffusivity,
		Cells:       m.Cells,
		Steps:       m.Steps,
	}
}

// Snapshot is a field read back from disk: Columns[j] is the profile at
// Times[j].
type Snapshot struct {
	Times   []float64
	Columns [][]float64
}

// Solution rebuilds the solver layout (rows are grid points, columns are
// time steps).
func (s *Snapshot) Solution(meta *RunMetadata) (*heat.Solution, error) {
	if len(s.Columns) == 0 {
		return nil, fmt.Errorf("run %s has no field data", meta.ID)
	}
	rows, cols := len(s.Columns[0]), len(s.Columns)
	field := mat.NewDense(rows, cols, nil)
	for j, col := range s.Columns {
		if len(col) != rows {
			return nil, fmt.Errorf("run %s: column %d has %d values, want %d", meta.ID, j, len(col), rows)
		}
		field.SetCol(j, col)
	}
	return &heat.Solution{Params: meta.Params(), Grid: meta.Grid, Field: field}, nil
}

// Save writes metadata.json and field.csv under a new run directory. A
// failed write removes the directory again.
func (s *Store) Save(cfg *config.Config, sol *heat.Solution, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Initial.Kind, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Length:        sol.Params.Length,
		Duration:      sol.Params.Duration,
		Diffusivity:   sol.Params.Diffusivity,
		Cells:         sol.Params.Cells,
		Steps:         sol.Params.Steps,
		Method:        cfg.Method,
		Initial:       cfg.Initial.Kind,
		InitialParams: cfg.Initial.Params,
		Grid:          sol.Grid,
		Metrics:       metrics,
	}

	if err := writeRun(runDir, &meta, sol); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("save %s: %w", runID, err)
	}
	return runID, nil
}

func writeRun(runDir string, meta *RunMetadata, sol *heat.Solution) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, fieldFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, sol); err != nil {
		return err
	}
	return csvFile.Close()
}

// WriteCSV writes one row per time step: time followed by every grid value.
func WriteCSV(out io.Writer, sol *heat.Solution) error {
	w := csv.NewWriter(out)

	rows, cols := sol.Field.Dims()
	header := []string{"time"}
	for i := 0; i < rows; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, rows+1)
	for j := 0; j < cols; j++ {
		record[0] = strconv.FormatFloat(sol.Time(j), 'g', -1, 64)
		for i := 0; i < rows; i++ {
			record[i+1] = strconv.FormatFloat(sol.Field.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadField(runID string) (*Snapshot, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, fieldFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses the format written by WriteCSV.
func ReadCSV(in io.Reader) (*Snapshot, error) {
	r := csv.NewReader(in)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	if len(records) < 2 {
		return snap, nil
	}

	for n, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("field row %d: %w", n+1, err)
		}
		col := make([]float64, len(record)-1)
		for i, field := range record[1:] {
			col[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("field row %d, x%d: %w", n+1, i, err)
			}
		}
		snap.Times = append(snap.Times, t)
		snap.Columns = append(snap.Columns, col)
	}

	return snap, nil
}
