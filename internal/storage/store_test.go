package storage

import (
	"testing"
	"time"

	"github.com/JulianaRamayo/simkern/internal/config"
	"github.com/JulianaRamayo/simkern/internal/experiment"
	"github.com/JulianaRamayo/simkern/internal/julia"
	"github.com/JulianaRamayo/simkern/internal/particle"
	"github.com/JulianaRamayo/simkern/internal/timing"
)

func smallJuliaResult(t *testing.T) *experiment.JuliaResult {
	t.Helper()

	cfg := config.DefaultConfig().Julia
	cfg.Width = 20
	cfg.MaxIter = 15

	result, err := experiment.RunJulia(cfg, julia.NewScalar())
	if err != nil {
		t.Fatalf("julia run failed: %v", err)
	}
	return result
}

func TestSaveLoadJulia(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := smallJuliaResult(t)

	runID, err := st.SaveJulia("scalar", 20, 15, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kernel != "julia" || meta.Strategy != "scalar" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Checksum != result.Checksum {
		t.Errorf("expected checksum %d, got %d", result.Checksum, meta.Checksum)
	}

	counts, err := st.LoadCounts(runID)
	if err != nil {
		t.Fatalf("load counts failed: %v", err)
	}
	if len(counts) != result.Grid.YCount {
		t.Fatalf("expected %d rows, got %d", result.Grid.YCount, len(counts))
	}
	if len(counts[0]) != result.Grid.XCount {
		t.Fatalf("expected %d cols, got %d", result.Grid.XCount, len(counts[0]))
	}
	if counts[0][0] != result.Counts[0] {
		t.Errorf("count roundtrip mismatch: %d vs %d", counts[0][0], result.Counts[0])
	}
}

func TestSaveLoadParticles(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &experiment.ParticleResult{
		Particles: []particle.Particle{
			{X: 0.5, Y: -0.25, AngVel: 1.5},
			{X: -0.1, Y: 0.9, AngVel: -2},
		},
		Samples: []timing.Sample{{Name: "evolve_scalar", Elapsed: time.Millisecond}},
	}

	runID, err := st.SaveParticles("scalar", 0.1, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kernel != "particles" || meta.Points != 2 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if _, ok := meta.Timings["evolve_scalar"]; !ok {
		t.Error("expected evolve timing in metadata")
	}

	ps, err := st.LoadPositions(runID)
	if err != nil {
		t.Fatalf("load positions failed: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 particles, got %d", len(ps))
	}
	if ps[0].X != 0.5 || ps[1].AngVel != -2 {
		t.Errorf("position roundtrip mismatch: %+v", ps)
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("julia_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
