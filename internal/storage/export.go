package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID          string             `json:"id"`
	Initial     string             `json:"initial"`
	Method      string             `json:"method"`
	Length      float64            `json:"length"`
	Duration    float64            `json:"duration"`
	Diffusivity float64            `json:"diffusivity"`
	Steps       int                `json:"steps"`
	Grid        []float64          `json:"grid"`
	Times       []float64          `json:"times"`
	Field       [][]float64        `json:"field"`
	Metrics     map[string]float64 `json:"metrics"`
}

// ExportJSON writes the run with Field[j] holding the profile at Times[j].
func ExportJSON(w io.Writer, meta *RunMetadata, snap *Snapshot) error {
	data := ExportData{
		ID:          meta.ID,
		Initial:     meta.Initial,
		Method:      meta.Method,
		Length:      meta.Length,
		Duration:    meta.Duration,
		Diffusivity: meta.Diffusivity,
		Steps:       meta.Steps,
		Grid:        meta.Grid,
		Times:       snap.Times,
		Field:       snap.Columns,
		Metrics:     meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
