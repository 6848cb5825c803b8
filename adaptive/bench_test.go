package adaptive_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integra/adaptive"
)

// benchmarkSimpson measures one adaptive pass over [0, 1].
func benchmarkSimpson(b *testing.B, f func(float64) float64, minH, tolerance float64) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := adaptive.Simpson(f, 0, 1, minH, tolerance); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimpson_Smooth(b *testing.B) {
	benchmarkSimpson(b, math.Exp, 1e-6, 1e-9)
}

// The spike forces deep subdivision around x = 0.5.
func BenchmarkSimpson_Spike(b *testing.B) {
	spike := func(x float64) float64 {
		d := x - 0.5
		return 1 / (d*d + 1e-3)
	}
	benchmarkSimpson(b, spike, 1e-9, 1e-9)
}
