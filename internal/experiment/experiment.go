package experiment

import (
	"github.com/JulianaRamayo/simkern/internal/config"
	"github.com/JulianaRamayo/simkern/internal/julia"
	"github.com/JulianaRamayo/simkern/internal/particle"
	"github.com/JulianaRamayo/simkern/internal/timing"
)

// ReferenceChecksum is the pinned iteration-count sum for the reference
// julia configuration. Any change here means the kernel semantics changed.
const ReferenceChecksum = 33219980

// JuliaResult bundles one fractal run: the grid it ran over, the counts it
// produced, and the timing samples for both phases.
type JuliaResult struct {
	Grid     julia.Grid
	Counts   []int
	Checksum int
	Samples  []timing.Sample
}

// RunJulia builds the grid from cfg and runs one escape-time pass with the
// given kernel, timing both phases independently.
func RunJulia(cfg config.JuliaConfig, k julia.Kernel) (*JuliaResult, error) {
	c := complex(cfg.CReal, cfg.CImag)

	grid, gridSample := timing.Measure("build_grid", func() julia.Grid {
		return julia.BuildGrid(cfg.XLow, cfg.XHigh, cfg.YLow, cfg.YHigh, cfg.Width, c)
	})

	counts, kernelSample, err := timing.MeasureErr("kernel_"+k.Name(), func() ([]int, error) {
		return k.Run(cfg.MaxIter, grid.Zs, grid.Cs)
	})
	if err != nil {
		return nil, err
	}

	sum := 0
	for _, n := range counts {
		sum += n
	}

	return &JuliaResult{
		Grid:     grid,
		Counts:   counts,
		Checksum: sum,
		Samples:  []timing.Sample{gridSample, kernelSample},
	}, nil
}

// IsReference reports whether cfg is exactly the checksum-oracle
// configuration.
func IsReference(cfg config.JuliaConfig) bool {
	return cfg.XLow == -config.DefaultBound && cfg.XHigh == config.DefaultBound &&
		cfg.YLow == -config.DefaultBound && cfg.YHigh == config.DefaultBound &&
		cfg.CReal == config.DefaultCReal && cfg.CImag == config.DefaultCImag &&
		cfg.Width == config.DefaultWidth && cfg.MaxIter == config.DefaultMaxIter
}

// ParticleResult bundles one particle run: final particle states and the
// timing sample for the evolution.
type ParticleResult struct {
	Particles []particle.Particle
	Samples   []timing.Sample
}

// Particles converts configured initial conditions into the kernel's
// particle records.
func Particles(cfg config.ParticleConfig) []particle.Particle {
	ps := make([]particle.Particle, len(cfg.Particles))
	for i, p := range cfg.Particles {
		ps[i] = particle.Particle{X: p.X, Y: p.Y, AngVel: p.AngVel}
	}
	return ps
}

// RunParticles evolves the configured particle set in place with the given
// evolver and reports the elapsed time.
func RunParticles(cfg config.ParticleConfig, e particle.Evolver) *ParticleResult {
	ps := Particles(cfg)

	_, sample := timing.Measure("evolve_"+e.Name(), func() struct{} {
		e.Evolve(ps, cfg.Duration)
		return struct{}{}
	})

	return &ParticleResult{
		Particles: ps,
		Samples:   []timing.Sample{sample},
	}
}
