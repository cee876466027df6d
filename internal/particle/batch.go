package particle

import "math"

// BatchEvolver holds positions and angular velocities in parallel float64
// arrays, computes every particle's displacement per step in bulk, and
// copies positions back to the caller's records only once, after the final
// step.
//
// Scratch arrays are reused between calls; a BatchEvolver is not safe for
// concurrent use.
type BatchEvolver struct {
	x, y, w []float64
}

func NewBatch() *BatchEvolver { return &BatchEvolver{} }

func (e *BatchEvolver) Name() string { return "batch" }

func (e *BatchEvolver) ensureScratch(n int) {
	if len(e.x) != n {
		e.x = make([]float64, n)
		e.y = make([]float64, n)
		e.w = make([]float64, n)
	}
}

func (e *BatchEvolver) Evolve(ps []Particle, duration float64) {
	nsteps := int(duration / Timestep)
	if nsteps <= 0 {
		return
	}

	n := len(ps)
	e.ensureScratch(n)
	for i := range ps {
		e.x[i] = ps[i].X
		e.y[i] = ps[i].Y
		e.w[i] = ps[i].AngVel
	}

	for s := 0; s < nsteps; s++ {
		for i := 0; i < n; i++ {
			norm := math.Sqrt(e.x[i]*e.x[i] + e.y[i]*e.y[i])
			dx := Timestep * e.w[i] * (-e.y[i] / norm)
			dy := Timestep * e.w[i] * (e.x[i] / norm)
			e.x[i] += dx
			e.y[i] += dy
		}
	}

	// Single write-back after all steps.
	for i := range ps {
		ps[i].X = e.x[i]
		ps[i].Y = e.y[i]
	}
}
