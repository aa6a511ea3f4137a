package boxprunetest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/boxprune/boxprune/boxprunetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAABBs_CountAndValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	boxes := boxprunetest.RandomAABBs(50, boxprunetest.DefaultRandomAABBConfig(), rng)
	require.Len(t, boxes, 50)
	for _, b := range boxes {
		assert.True(t, b.Valid())
	}
}

func TestRandomAABBs_Deterministic(t *testing.T) {
	cfg := boxprunetest.DefaultRandomAABBConfig()
	a := boxprunetest.RandomAABBs(10, cfg, rand.New(rand.NewSource(42)))
	b := boxprunetest.RandomAABBs(10, cfg, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}
