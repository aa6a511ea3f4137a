package boxprunetest_test

import (
	"testing"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/katalvlaran/boxprune/boxprune/boxprunetest"
	"github.com/stretchr/testify/assert"
)

func TestBruteForceComplete_FaceTouching(t *testing.T) {
	boxes := []boxaabb.AABB{
		boxaabb.New(boxaabb.Vec3{X: 0, Y: 0, Z: 0}, boxaabb.Vec3{X: 1, Y: 1, Z: 1}),
		boxaabb.New(boxaabb.Vec3{X: 1, Y: 0, Z: 0}, boxaabb.Vec3{X: 2, Y: 1, Z: 1}),
	}
	assert.Equal(t, []boxprunetest.Pair{{A: 0, B: 1}}, boxprunetest.BruteForceComplete(boxes, true))
	assert.Empty(t, boxprunetest.BruteForceComplete(boxes, false))
}

func TestBruteForceBipartite_Basic(t *testing.T) {
	a := []boxaabb.AABB{boxaabb.New(boxaabb.Vec3{X: 0, Y: 0, Z: 0}, boxaabb.Vec3{X: 2, Y: 2, Z: 2})}
	b := []boxaabb.AABB{boxaabb.New(boxaabb.Vec3{X: 1, Y: 1, Z: 1}, boxaabb.Vec3{X: 3, Y: 3, Z: 3})}
	assert.Equal(t, []boxprunetest.Pair{{A: 0, B: 0}}, boxprunetest.BruteForceBipartite(a, b, true))
}
