package orthopoly_test

import (
	"testing"

	"github.com/katalvlaran/integra/orthopoly"
)

// benchmarkZeros measures the eigenvalue-backed zero solve for one
// polynomial family at a given degree.
func benchmarkZeros(b *testing.B, p orthopoly.Polynomial) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Zeros(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLaguerre_Zeros_Degree64(b *testing.B)  { benchmarkZeros(b, orthopoly.NewLaguerre(64)) }
func BenchmarkHermite_Zeros_Degree64(b *testing.B)   { benchmarkZeros(b, orthopoly.NewHermite(64)) }
func BenchmarkLegendre_Zeros_Degree64(b *testing.B)  { benchmarkZeros(b, orthopoly.NewLegendre(64)) }
func BenchmarkChebyshev_Zeros_Degree64(b *testing.B) { benchmarkZeros(b, orthopoly.NewChebyshevFirst(64)) }

// BenchmarkLaguerre_ApproximateZeros isolates the Bessel-based estimate,
// the cheap alternative to a full eigenvalue solve.
func BenchmarkLaguerre_ApproximateZeros(b *testing.B) {
	l := orthopoly.NewLaguerre(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.ApproximateZeros()
	}
}

// BenchmarkLegendre_Eval measures a single recurrence evaluation.
func BenchmarkLegendre_Eval(b *testing.B) {
	p := orthopoly.NewLegendre(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Eval(0.3)
	}
}
