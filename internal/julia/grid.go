package julia

// Grid holds the index-aligned coordinate and parameter sequences fed to a
// Kernel. Zs[i] always pairs with Cs[i].
type Grid struct {
	Zs []complex128
	Cs []complex128

	XCount int
	YCount int
}

// Len returns the number of grid points.
func (g Grid) Len() int { return len(g.Zs) }

// BuildGrid constructs the coordinate grid for the region
// [xLow, xHigh) x (yLow, yHigh] sampled at the given width, pairing every
// point with the fixed parameter c.
//
// The x sequence accumulates upward from xLow and the y sequence downward
// from yHigh, both by fixed steps derived from width. Upper bounds are
// exclusive: floating accumulation stops strictly before reaching them.
// Traversal is row-major (y outer, x inner); downstream renderers depend on
// that layout, so the order is part of the contract.
//
// Bounds and width are caller-guaranteed valid (width > 0, high > low on
// both axes); no validation is performed.
func BuildGrid(xLow, xHigh, yLow, yHigh float64, width int, c complex128) Grid {
	xStep := (xHigh - xLow) / float64(width)
	yStep := (yLow - yHigh) / float64(width)

	xs := make([]float64, 0, width)
	for x := xLow; x < xHigh; x += xStep {
		xs = append(xs, x)
	}

	ys := make([]float64, 0, width)
	for y := yHigh; y > yLow; y += yStep {
		ys = append(ys, y)
	}

	g := Grid{
		Zs:     make([]complex128, 0, len(xs)*len(ys)),
		Cs:     make([]complex128, 0, len(xs)*len(ys)),
		XCount: len(xs),
		YCount: len(ys),
	}

	for _, y := range ys {
		for _, x := range xs {
			g.Zs = append(g.Zs, complex(x, y))
			g.Cs = append(g.Cs, c)
		}
	}

	return g
}
