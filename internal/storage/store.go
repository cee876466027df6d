package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/JulianaRamayo/simkern/internal/experiment"
	"github.com/JulianaRamayo/simkern/internal/particle"
	"github.com/JulianaRamayo/simkern/internal/timing"
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
	ID        string             `json:"id"`
	Kernel    string             `json:"kernel"`
	Strategy  string             `json:"strategy"`
	Timestamp time.Time          `json:"timestamp"`
	Points    int                `json:"points"`
	Width     int                `json:"width,omitempty"`
	MaxIter   int                `json:"max_iter,omitempty"`
	Checksum  int                `json:"checksum,omitempty"`
	Duration  float64            `json:"duration,omitempty"`
	Timings   map[string]float64 `json:"timings"`
}

func timingsMap(samples []timing.Sample) map[string]float64 {
	m := make(map[string]float64, len(samples))
	for _, s := range samples {
		m[s.Name] = s.Elapsed.Seconds()
	}
	return m
}

// SaveJulia persists one fractal run: metadata plus the full count grid,
// one CSV row per grid row so the file mirrors the row-major layout.
func (s *Store) SaveJulia(strategy string, width, maxIter int, result *experiment.JuliaResult) (string, error) {
	runID := fmt.Sprintf("julia_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kernel:    "julia",
		Strategy:  strategy,
		Timestamp: time.Now(),
		Points:    len(result.Counts),
		Width:     width,
		MaxIter:   maxIter,
		Checksum:  result.Checksum,
		Timings:   timingsMap(result.Samples),
	}

	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "counts.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	xCount := result.Grid.XCount
	row := make([]string, xCount)
	for y := 0; y < result.Grid.YCount; y++ {
		for x := 0; x < xCount; x++ {
			row[x] = strconv.Itoa(result.Counts[y*xCount+x])
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveParticles persists one particle run: metadata plus final positions.
func (s *Store) SaveParticles(strategy string, duration float64, result *experiment.ParticleResult) (string, error) {
	runID := fmt.Sprintf("particles_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kernel:    "particles",
		Strategy:  strategy,
		Timestamp: time.Now(),
		Points:    len(result.Particles),
		Duration:  duration,
		Timings:   timingsMap(result.Samples),
	}

	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "positions.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "ang_vel"}); err != nil {
		return "", err
	}
	for _, p := range result.Particles {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.AngVel, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCounts reads a julia run's count grid back in row-major order.
func (s *Store) LoadCounts(runID string) ([][]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "counts.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]int, 0, len(records))
	for _, record := range records {
		row := make([]int, 0, len(record))
		for _, field := range record {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("corrupt count in %s: %s", runID, field)
			}
			row = append(row, n)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadPositions reads a particle run's final particle records.
func (s *Store) LoadPositions(runID string) ([]particle.Particle, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "positions.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []particle.Particle{}, nil
	}

	ps := make([]particle.Particle, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		w, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		ps = append(ps, particle.Particle{X: x, Y: y, AngVel: w})
	}

	return ps, nil
}

// ExportJSONStdout writes a run's metadata and data as indented JSON.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	out := struct {
		RunMetadata
		Counts    [][]int             `json:"counts,omitempty"`
		Particles []particle.Particle `json:"particles,omitempty"`
	}{RunMetadata: *meta}

	switch meta.Kernel {
	case "julia":
		counts, err := s.LoadCounts(runID)
		if err != nil {
			return err
		}
		out.Counts = counts
	case "particles":
		ps, err := s.LoadPositions(runID)
		if err != nil {
			return err
		}
		out.Particles = ps
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
