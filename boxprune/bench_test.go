package boxprune_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/katalvlaran/boxprune/boxprune"
	"github.com/katalvlaran/boxprune/internal/radixsort"
)

// latticeCubes lays out n*n*n axis-aligned unit cubes on an integer
// lattice (spec §8 S6), each occupying the closed interval [k,k+1] on
// every axis, so lattice neighbours touch.
func latticeCubes(n int) []boxaabb.AABB {
	boxes := make([]boxaabb.AABB, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				boxes = append(boxes, boxaabb.New(
					boxaabb.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
					boxaabb.Vec3{X: float32(x + 1), Y: float32(y + 1), Z: float32(z + 1)},
				))
			}
		}
	}
	return boxes
}

type discardSink struct{ n int }

func (s *discardSink) Append(uint32, uint32) { s.n++ }

// BenchmarkCompleteBoxPruning_Lattice10 is the S6 stress scenario: 1000
// unit cubes on a 10x10x10 lattice, each touching up to 26 neighbors.
func BenchmarkCompleteBoxPruning_Lattice10(b *testing.B) {
	boxes := latticeCubes(10)
	opts := boxprune.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := &discardSink{}
		_ = boxprune.CompleteBoxPruning(boxes, sink, &opts)
	}
}

// BenchmarkCompleteBoxPruning_WarmStart measures the Insertion sorter's
// warm-start coherence benefit across repeated calls on the same
// (unchanged) box set.
func BenchmarkCompleteBoxPruning_WarmStart(b *testing.B) {
	boxes := latticeCubes(10)
	opts := boxprune.DefaultOptions()
	opts.Sorter = radixsort.Insertion
	opts.State = radixsort.NewState(radixsort.Insertion)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := &discardSink{}
		_ = boxprune.CompleteBoxPruning(boxes, sink, &opts)
	}
}

func BenchmarkCompleteBoxPruning_Scaling(b *testing.B) {
	for _, n := range []int{4, 8, 16} {
		n := n
		b.Run(fmt.Sprintf("N=%d", n*n*n), func(b *testing.B) {
			boxes := latticeCubes(n)
			opts := boxprune.DefaultOptions()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink := &discardSink{}
				_ = boxprune.CompleteBoxPruning(boxes, sink, &opts)
			}
		})
	}
}
