package julia

import (
	"math"
	"testing"
)

// Reference configuration from the regression oracle: a 1000-wide grid over
// ±1.8 with c = -0.62772-0.42193i and 300 iterations sums to exactly
// 33219980.
const (
	refBound   = 1.8
	refWidth   = 1000
	refMaxIter = 300
	refSum     = 33219980
)

var refC = complex(-0.62772, -0.42193)

func refGrid(width int) Grid {
	return BuildGrid(-refBound, refBound, -refBound, refBound, width, refC)
}

func TestScalarChecksum(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-width reference grid in short mode")
	}

	g := refGrid(refWidth)
	counts, err := NewScalar().Run(refMaxIter, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != refSum {
		t.Errorf("expected checksum %d, got %d", refSum, sum)
	}
}

func TestBatchChecksum(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-width reference grid in short mode")
	}

	g := refGrid(refWidth)
	counts, err := NewBatch().Run(refMaxIter, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != refSum {
		t.Errorf("expected checksum %d, got %d", refSum, sum)
	}
}

func TestStrategiesAgree(t *testing.T) {
	g := refGrid(150)

	scalar, err := NewScalar().Run(60, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("scalar failed: %v", err)
	}
	batch, err := NewBatch().Run(60, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	if len(scalar) != len(batch) {
		t.Fatalf("length mismatch: %d vs %d", len(scalar), len(batch))
	}
	for i := range scalar {
		if scalar[i] != batch[i] {
			t.Fatalf("counts diverge at %d: scalar=%d batch=%d", i, scalar[i], batch[i])
		}
	}
}

func TestCountsBounded(t *testing.T) {
	g := refGrid(80)
	maxIter := 40

	for _, k := range []Kernel{NewScalar(), NewBatch()} {
		counts, err := k.Run(maxIter, g.Zs, g.Cs)
		if err != nil {
			t.Fatalf("%s failed: %v", k.Name(), err)
		}
		for i, n := range counts {
			if n < 0 || n > maxIter {
				t.Fatalf("%s: count[%d] = %d out of [0, %d]", k.Name(), i, n, maxIter)
			}
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	zs := []complex128{0, 0}
	cs := []complex128{0}

	for _, k := range []Kernel{NewScalar(), NewBatch()} {
		if _, err := k.Run(10, zs, cs); err != ErrLengthMismatch {
			t.Errorf("%s: expected ErrLengthMismatch, got %v", k.Name(), err)
		}
	}
}

func TestEscapedPointStaysFinalized(t *testing.T) {
	// A point already outside the disk never iterates; a point with a huge
	// parameter blows up immediately and still resolves to a finite count.
	zs := []complex128{complex(3, 0), complex(1.9, 0)}
	cs := []complex128{complex(0, 0), complex(1e8, 0)}

	for _, k := range []Kernel{NewScalar(), NewBatch()} {
		counts, err := k.Run(500, zs, cs)
		if err != nil {
			t.Fatalf("%s failed: %v", k.Name(), err)
		}
		if counts[0] != 0 {
			t.Errorf("%s: point outside disk should count 0, got %d", k.Name(), counts[0])
		}
		if counts[1] <= 0 || counts[1] >= 500 {
			t.Errorf("%s: divergent point should escape early, got %d", k.Name(), counts[1])
		}
	}
}

func TestNonFiniteTreatedAsEscaped(t *testing.T) {
	if !escaped(math.Inf(1), 0) {
		t.Error("Inf magnitude should test as escaped")
	}
	if !escaped(math.NaN(), math.NaN()) {
		t.Error("NaN magnitude should test as escaped")
	}
	if escaped(1.0, 1.0) {
		t.Error("point inside the disk flagged escaped")
	}
}

func TestZeroMaxIter(t *testing.T) {
	g := refGrid(10)

	for _, k := range []Kernel{NewScalar(), NewBatch()} {
		counts, err := k.Run(0, g.Zs, g.Cs)
		if err != nil {
			t.Fatalf("%s failed: %v", k.Name(), err)
		}
		for i, n := range counts {
			if n != 0 {
				t.Fatalf("%s: count[%d] = %d with zero iteration cap", k.Name(), i, n)
			}
		}
	}
}

func TestBatchScratchReuse(t *testing.T) {
	// Back-to-back runs on the same kernel must not leak state.
	g := refGrid(60)
	k := NewBatch()

	first, err := k.Run(30, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := k.Run(30, g.Zs, g.Cs)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat run diverged at %d: %d vs %d", i, first[i], second[i])
		}
	}
}
