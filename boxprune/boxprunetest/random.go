package boxprunetest

import (
	"math/rand"

	"github.com/katalvlaran/boxprune/boxaabb"
	"gonum.org/v1/gonum/spatial/r3"
)

// RandomAABBConfig bounds a RandomAABBs generation run.
type RandomAABBConfig struct {
	// Extent is the half-width of the cube centroids are drawn from,
	// centered at the origin.
	Extent float64
	// MinHalfSize, MaxHalfSize bound each box's per-axis half-extent.
	MinHalfSize, MaxHalfSize float64
}

// DefaultRandomAABBConfig returns a reasonable config for fuzz tests:
// centroids in [-50, 50]^3, half-extents in [0.1, 2].
func DefaultRandomAABBConfig() RandomAABBConfig {
	return RandomAABBConfig{Extent: 50, MinHalfSize: 0.1, MaxHalfSize: 2}
}

// RandomAABBs generates n boxes with centroids and half-extents drawn
// from cfg using rng. Centroid jitter is computed in r3.Vec (float64)
// before narrowing to the core's float32 AABB, matching how a caller
// assembling boxes from a physics/scene representation (commonly
// float64) would feed this package.
func RandomAABBs(n int, cfg RandomAABBConfig, rng *rand.Rand) []boxaabb.AABB {
	boxes := make([]boxaabb.AABB, n)
	for i := 0; i < n; i++ {
		centroid := r3.Vec{
			X: (rng.Float64()*2 - 1) * cfg.Extent,
			Y: (rng.Float64()*2 - 1) * cfg.Extent,
			Z: (rng.Float64()*2 - 1) * cfg.Extent,
		}
		half := r3.Vec{
			X: cfg.MinHalfSize + rng.Float64()*(cfg.MaxHalfSize-cfg.MinHalfSize),
			Y: cfg.MinHalfSize + rng.Float64()*(cfg.MaxHalfSize-cfg.MinHalfSize),
			Z: cfg.MinHalfSize + rng.Float64()*(cfg.MaxHalfSize-cfg.MinHalfSize),
		}
		min := r3.Sub(centroid, half)
		max := r3.Add(centroid, half)

		boxes[i] = boxaabb.New(
			boxaabb.Vec3{X: float32(min.X), Y: float32(min.Y), Z: float32(min.Z)},
			boxaabb.Vec3{X: float32(max.X), Y: float32(max.Y), Z: float32(max.Z)},
		)
	}
	return boxes
}
