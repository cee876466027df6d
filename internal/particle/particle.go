package particle

// Timestep is the fixed internal integration step. A call to Evolve runs
// int(duration/Timestep) steps; durations at or below zero run none.
const Timestep = 0.00001

// Particle is a point rotating about the origin. The sign of AngVel sets
// the rotation direction; its magnitude stays constant across steps.
// Positions must be nonzero — a particle at the origin has no defined
// tangential direction.
type Particle struct {
	X, Y   float64
	AngVel float64
}

// Evolver advances a particle set in place for the given duration. The
// slice is borrowed for the call: no reallocation, no reordering, all
// writes committed before return. Evolvers are single-threaded and must
// not be shared across goroutines mid-call.
type Evolver interface {
	Name() string
	Evolve(ps []Particle, duration float64)
}
