// Package particle integrates the rotational motion of point particles
// about the origin.
//
// Each particle carries a position and a constant angular velocity; the
// kernel advances positions in fixed 1e-5 timesteps for a requested
// duration, mutating the caller's slice in place. [ScalarEvolver] walks
// particles one at a time; [BatchEvolver] keeps positions in parallel
// float64 arrays and writes back once after all steps. Both strategies
// agree on final positions within 1e-5 absolute tolerance.
package particle
