package julia

import "errors"

// ErrLengthMismatch indicates the coordinate and parameter sequences differ
// in length.
var ErrLengthMismatch = errors.New("julia: zs and cs length mismatch")

// Kernel runs one escape-time pass over a grid. For each index i the update
// rule z = z*z + c is applied until |z| >= 2 or maxIter updates have been
// performed; the returned slice holds the update count per point, in grid
// order.
//
// Implementations are deterministic and single-threaded. All strategies
// must produce identical counts for identical inputs.
type Kernel interface {
	Name() string
	Run(maxIter int, zs, cs []complex128) ([]int, error)
}

// step applies the update rule z = z*z + c on split components. Both
// strategies go through this one function so their floating-point operation
// sequences are identical and their counts agree exactly.
func step(zr, zi, cr, ci float64) (float64, float64) {
	return zr*zr - zi*zi + cr, 2*zr*zi + ci
}

// escaped reports whether a point has left the |z| < 2 disk. The test is
// |z|^2 < 4 negated, so a NaN or Inf magnitude counts as escaped.
func escaped(zr, zi float64) bool {
	return !(zr*zr+zi*zi < 4.0)
}

// ScalarKernel processes grid points one at a time, running each point's
// iteration loop to completion before moving to the next index.
type ScalarKernel struct{}

func NewScalar() *ScalarKernel { return &ScalarKernel{} }

func (k *ScalarKernel) Name() string { return "scalar" }

func (k *ScalarKernel) Run(maxIter int, zs, cs []complex128) ([]int, error) {
	if len(zs) != len(cs) {
		return nil, ErrLengthMismatch
	}

	counts := make([]int, len(zs))
	for i := range zs {
		zr, zi := real(zs[i]), imag(zs[i])
		cr, ci := real(cs[i]), imag(cs[i])

		n := 0
		for !escaped(zr, zi) && n < maxIter {
			zr, zi = step(zr, zi, cr, ci)
			n++
		}
		counts[i] = n
	}

	return counts, nil
}
