package series_test

import (
	"testing"

	"github.com/katalvlaran/lineflow/series"
)

// BenchmarkLine_ForwardSet measures the step-mode hot path: one Forward
// and one cursor write per bar.
func BenchmarkLine_ForwardSet(b *testing.B) {
	l := series.NewLine()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Forward(1)
		_ = l.Set(0, float64(i))
	}
}

// BenchmarkLine_Get measures cursor-relative history reads.
func BenchmarkLine_Get(b *testing.B) {
	l := series.NewLine()
	l.Forward(64)
	for i := 0; i < 64; i++ {
		_ = l.SetAt(i, float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(-(i & 63))
	}
}

// BenchmarkLine_BatchFill measures the batch path: Extend once, then
// absolute-index writes.
func BenchmarkLine_BatchFill(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := series.NewLine()
		l.Extend(1024)
		for j := 0; j < 1024; j++ {
			_ = l.SetAt(j, float64(j))
		}
	}
}
