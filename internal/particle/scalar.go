package particle

import "math"

// ScalarEvolver integrates one particle at a time per step, the direct
// element-by-element form of the motion rule.
type ScalarEvolver struct{}

func NewScalar() *ScalarEvolver { return &ScalarEvolver{} }

func (e *ScalarEvolver) Name() string { return "scalar" }

func (e *ScalarEvolver) Evolve(ps []Particle, duration float64) {
	nsteps := int(duration / Timestep)

	for s := 0; s < nsteps; s++ {
		for i := range ps {
			p := &ps[i]

			// Unit tangent perpendicular to the radius vector.
			norm := math.Sqrt(p.X*p.X + p.Y*p.Y)
			vx := -p.Y / norm
			vy := p.X / norm

			p.X += Timestep * p.AngVel * vx
			p.Y += Timestep * p.AngVel * vy
		}
	}
}
