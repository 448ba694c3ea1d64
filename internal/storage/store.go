package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/particlesim/internal/sim"
	"github.com/san-kum/particlesim/internal/world"
)

var ErrNoSeries = errors.New("storage: run has no series")

// Store keeps one directory per headless run: metadata.json with the settings
// and final metrics, series.csv with per-frame energy and event counts.
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
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Bodies      int                `json:"bodies"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Frames      int                `json:"frames"`
	Collisions  int                `json:"collisions"`
	WallHits    int                `json:"wall_hits"`
	PointerHits int                `json:"pointer_hits"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Sample is one row of series.csv.
type Sample struct {
	Energy float64
	world.FrameStats
}

var seriesHeader = []string{"frame", "energy", "collisions", "wall_hits", "pointer_hits"}

// Save writes meta and the result's series under a new run id. Fields of meta
// that the result knows are overwritten from it.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	name := meta.Preset
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Frames = result.Frames
	meta.Collisions = result.Collisions
	meta.WallHits = result.WallHits
	meta.PointerHits = result.PointerHits
	meta.Metrics = result.Metrics

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeSeries(csvFile, result); err != nil {
		return "", err
	}
	return runID, csvFile.Close()
}

func writeSeries(out io.Writer, result *sim.Result) error {
	w := csv.NewWriter(out)
	if err := w.Write(seriesHeader); err != nil {
		return err
	}

	for i, energy := range result.Energy {
		st := world.FrameStats{Frame: i + 1}
		if i < len(result.Stats) {
			st = result.Stats[i]
		}
		row := []string{
			strconv.Itoa(st.Frame),
			strconv.FormatFloat(energy, 'f', 6, 64),
			strconv.Itoa(st.Collisions),
			strconv.Itoa(st.WallHits),
			strconv.Itoa(st.PointerHits),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first.
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads series.csv back. Malformed rows are skipped.
func (s *Store) LoadSeries(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return nil, ErrNoSeries
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(seriesHeader) {
			continue
		}
		frame, err1 := strconv.Atoi(record[0])
		energy, err2 := strconv.ParseFloat(record[1], 64)
		collisions, err3 := strconv.Atoi(record[2])
		walls, err4 := strconv.Atoi(record[3])
		pointer, err5 := strconv.Atoi(record[4])
		if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
			continue
		}
		samples = append(samples, Sample{
			Energy: energy,
			FrameStats: world.FrameStats{
				Frame:       frame,
				Collisions:  collisions,
				WallHits:    walls,
				PointerHits: pointer,
			},
		})
	}
	return samples, nil
}

// Energies extracts the energy column.
func Energies(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Energy
	}
	return out
}
