package repair_test

import (
	"testing"

	"github.com/katalvlaran/indset/gen"
	"github.com/katalvlaran/indset/repair"
)

// BenchmarkRepair measures a full repair of an all-nodes candidate on a
// seeded sparse graph, the worst realistic load for the greedy loop.
func BenchmarkRepair(b *testing.B) {
	g, err := gen.RandomSparse(300, 0.05, 42)
	if err != nil {
		b.Fatal(err)
	}
	candidate := g.Nodes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = repair.Repair(g, candidate); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRepairIndependent measures the no-conflict fast path.
func BenchmarkRepairIndependent(b *testing.B) {
	g, err := gen.Edgeless(300)
	if err != nil {
		b.Fatal(err)
	}
	candidate := g.Nodes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = repair.Repair(g, candidate); err != nil {
			b.Fatal(err)
		}
	}
}
