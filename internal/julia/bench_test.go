package julia

import "testing"

func benchmarkKernel(b *testing.B, k Kernel, width int) {
	g := refGrid(width)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := k.Run(refMaxIter, g.Zs, g.Cs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalar100(b *testing.B)  { benchmarkKernel(b, NewScalar(), 100) }
func BenchmarkScalar500(b *testing.B)  { benchmarkKernel(b, NewScalar(), 500) }
func BenchmarkScalar1000(b *testing.B) { benchmarkKernel(b, NewScalar(), 1000) }

func BenchmarkBatch100(b *testing.B)  { benchmarkKernel(b, NewBatch(), 100) }
func BenchmarkBatch500(b *testing.B)  { benchmarkKernel(b, NewBatch(), 500) }
func BenchmarkBatch1000(b *testing.B) { benchmarkKernel(b, NewBatch(), 1000) }

func BenchmarkBuildGrid1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildGrid(-refBound, refBound, -refBound, refBound, 1000, refC)
	}
}
