package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run        RunMetadata `json:"run"`
	Energy     []float64   `json:"energy"`
	Collisions []int       `json:"collisions"`
	WallHits   []int       `json:"wall_hits"`
}

// ExportJSON writes a run and its series as one JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []Sample) error {
	data := ExportData{
		Run:        *meta,
		Energy:     make([]float64, len(samples)),
		Collisions: make([]int, len(samples)),
		WallHits:   make([]int, len(samples)),
	}
	for i, s := range samples {
		data.Energy[i] = s.Energy
		data.Collisions[i] = s.Collisions
		data.WallHits[i] = s.WallHits
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
