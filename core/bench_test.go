package core_test

import (
	"testing"

	"github.com/katalvlaran/vgraph/core"
)

const benchGraphSize = 1 << 10

// benchStar builds a directed star with benchGraphSize rays.
func benchStar(b *testing.B) *core.Graph[int, int] {
	b.Helper()
	g := core.New[int, int](core.WithDirected(true), core.WithNodeCapacity(benchGraphSize+1))
	for i := 1; i <= benchGraphSize; i++ {
		if _, _, err := g.PutEdgeValue(0, i, i); err != nil {
			b.Fatalf("seed edge 0->%d: %v", i, err)
		}
	}

	return g
}

func BenchmarkPutEdgeValue(b *testing.B) {
	g := core.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.PutEdgeValue(i, i+1, i)
	}
}

func BenchmarkPutEdgeValue_Overwrite(b *testing.B) {
	g := core.New[int, int]()
	_, _, _ = g.PutEdgeValue(0, 1, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.PutEdgeValue(0, 1, i)
	}
}

func BenchmarkHasEdge(b *testing.B) {
	g := benchStar(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(0, i%benchGraphSize+1)
	}
}

func BenchmarkEdgeValue(b *testing.B) {
	g := benchStar(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.EdgeValue(0, i%benchGraphSize+1)
	}
}

func BenchmarkNodes(b *testing.B) {
	g := benchStar(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Nodes()
	}
}

func BenchmarkEdges(b *testing.B) {
	g := benchStar(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
