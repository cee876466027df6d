package julia

// BatchKernel holds the whole grid as split real/imag float64 arrays and
// advances every still-active point one update per sweep. Escaped points are
// compacted out of the active index list so they receive no further updates,
// which keeps per-point counts equal to the scalar strategy's.
//
// Scratch arrays are reused across calls; a BatchKernel is not safe for
// concurrent use.
type BatchKernel struct {
	zr, zi []float64
	cr, ci []float64
	active []int
}

func NewBatch() *BatchKernel { return &BatchKernel{} }

func (k *BatchKernel) Name() string { return "batch" }

func (k *BatchKernel) ensureScratch(n int) {
	if len(k.zr) != n {
		k.zr = make([]float64, n)
		k.zi = make([]float64, n)
		k.cr = make([]float64, n)
		k.ci = make([]float64, n)
		k.active = make([]int, n)
	}
}

func (k *BatchKernel) Run(maxIter int, zs, cs []complex128) ([]int, error) {
	if len(zs) != len(cs) {
		return nil, ErrLengthMismatch
	}

	n := len(zs)
	k.ensureScratch(n)

	for i := range zs {
		k.zr[i] = real(zs[i])
		k.zi[i] = imag(zs[i])
		k.cr[i] = real(cs[i])
		k.ci[i] = imag(cs[i])
	}

	counts := make([]int, n)
	active := k.active[:n]
	for i := range active {
		active[i] = i
	}

	// All points in the active set have received exactly `sweep` updates,
	// so one counter serves the whole set.
	for sweep := 0; sweep < maxIter && len(active) > 0; sweep++ {
		w := 0
		for _, i := range active {
			if escaped(k.zr[i], k.zi[i]) {
				counts[i] = sweep
				continue
			}
			k.zr[i], k.zi[i] = step(k.zr[i], k.zi[i], k.cr[i], k.ci[i])
			active[w] = i
			w++
		}
		active = active[:w]
	}

	// Survivors hit the iteration cap.
	for _, i := range active {
		counts[i] = maxIter
	}

	return counts, nil
}
