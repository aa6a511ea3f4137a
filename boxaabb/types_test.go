package boxaabb_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/stretchr/testify/assert"
)

func TestAABB_Valid(t *testing.T) {
	valid := boxaabb.New(boxaabb.Vec3{X: 0, Y: 0, Z: 0}, boxaabb.Vec3{X: 1, Y: 1, Z: 1})
	assert.True(t, valid.Valid())

	invalid := boxaabb.New(boxaabb.Vec3{X: 2, Y: 0, Z: 0}, boxaabb.Vec3{X: 1, Y: 1, Z: 1})
	assert.False(t, invalid.Valid())
}

func TestAABB_ValidRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())
	b := boxaabb.New(boxaabb.Vec3{X: nan, Y: 0, Z: 0}, boxaabb.Vec3{X: 1, Y: 1, Z: 1})
	assert.False(t, b.Valid())
}

func TestAABB_PrimaryMinMax(t *testing.T) {
	b := boxaabb.New(boxaabb.Vec3{X: 1, Y: 2, Z: 3}, boxaabb.Vec3{X: 4, Y: 5, Z: 6})

	assert.Equal(t, float32(1), b.PrimaryMin(boxaabb.AxisX))
	assert.Equal(t, float32(4), b.PrimaryMax(boxaabb.AxisX))
	assert.Equal(t, float32(2), b.PrimaryMin(boxaabb.AxisY))
	assert.Equal(t, float32(5), b.PrimaryMax(boxaabb.AxisY))
	assert.Equal(t, float32(3), b.PrimaryMin(boxaabb.AxisZ))
	assert.Equal(t, float32(6), b.PrimaryMax(boxaabb.AxisZ))
}

func TestAABB_ComponentsCyclicRotation(t *testing.T) {
	b := boxaabb.New(boxaabb.Vec3{X: 1, Y: 2, Z: 3}, boxaabb.Vec3{X: 4, Y: 5, Z: 6})

	_, _, loA, hiA, loB, hiB := b.Components(boxaabb.AxisX)
	assert.Equal(t, [4]float32{2, 5, 3, 6}, [4]float32{loA, hiA, loB, hiB})

	_, _, loA, hiA, loB, hiB = b.Components(boxaabb.AxisY)
	assert.Equal(t, [4]float32{3, 6, 1, 4}, [4]float32{loA, hiA, loB, hiB})

	_, _, loA, hiA, loB, hiB = b.Components(boxaabb.AxisZ)
	assert.Equal(t, [4]float32{1, 4, 2, 5}, [4]float32{loA, hiA, loB, hiB})
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "X", boxaabb.AxisX.String())
	assert.Equal(t, "Y", boxaabb.AxisY.String())
	assert.Equal(t, "Z", boxaabb.AxisZ.String())
}
