package testbed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/math"
)

func TestNewCube(t *testing.T) {
	cube := NewCube(2, 4, 6)
	require.NoError(t, cube.Validate())
	assert.Equal(t, 24, cube.NumVertices())
	assert.Equal(t, 36, cube.NumIndices())

	box := cube.LocalAABB()
	assert.Equal(t, math.NewVec3(-1, -2, -3), box.Min)
	assert.Equal(t, math.NewVec3(1, 2, 3), box.Max)

	// every normal points away from the centre
	for i, n := range cube.Normals() {
		assert.InDelta(t, 1, n.Length(), 1e-5)
		assert.Greater(t, n.Dot(cube.Vertices()[i]), float32(0))
	}
}

func TestTestGame(t *testing.T) {
	tg := NewTestGame()
	e, err := engine.New(nil, tg.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	assert.Equal(t, 7, e.Scene().Len())
	assert.Equal(t, 4, e.Systems().Textures().Count())

	world := e.Scene().WorldAABB()
	assert.InDelta(t, -11, world.Min.X, 1e-4)
	assert.InDelta(t, 11, world.Max.X, 1e-4)
	assert.InDelta(t, 1, world.Max.Y, 1e-4)

	require.NoError(t, e.Tick(0.5))
	assert.InDelta(t, 6, e.Scene().WorldAABB().Max.Y, 1e-4)

	averages, err := e.Systems().Textures().AverageAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, math.NewVec3(0.5, 0.5, 0.5), averages["checker"])
	assert.Equal(t, math.NewVec3(2.125, 1.25, 4.5), averages["hdr"])
	assert.InDelta(t, 0.5, averages["gradient"].X, 1e-3)
	assert.InDelta(t, 0.5, averages["gradient"].Y, 1e-3)
	assert.InDelta(t, 0.375, averages["deep"].X, 1e-3)
	assert.InDelta(t, 0.375, averages["deep"].Z, 1e-3)

	require.NoError(t, e.Shutdown())
	assert.Equal(t, 6, e.Scene().Len())
	assert.True(t, e.Scene().WorldAABB().IsEmpty())
}
