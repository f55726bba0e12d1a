package systems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
)

func newTestTextureSystem(t *testing.T, max uint32) *TextureSystem {
	t.Helper()
	js, err := NewJobSystem(3, int(max))
	require.NoError(t, err)
	t.Cleanup(func() { js.Shutdown() })
	ts, err := NewTextureSystem(&TextureSystemConfig{MaxTextureCount: max}, js)
	require.NoError(t, err)
	return ts
}

func TestTextureSystemRegister(t *testing.T) {
	ts := newTestTextureSystem(t, 2)

	red := resources.NewTexture("red", 1, 1, resources.TextureFormatRGBA8, resources.PackRGBA8([][4]uint8{{255, 0, 0, 255}}))
	require.NoError(t, ts.Register(red))
	assert.Equal(t, uint32(0), red.ID)
	assert.Same(t, red, ts.Get("red"))
	assert.Equal(t, math.NewVec3(1, 0, 0), ts.Average("red"))

	// re-registering a name swaps the buffer in place
	green := resources.NewTexture("red", 1, 1, resources.TextureFormatRGBA32F, resources.PackRGBA32F([]math.Vec4{{Y: 1, W: 1}}))
	require.NoError(t, ts.Register(green))
	assert.Equal(t, 1, ts.Count())
	assert.Same(t, red, ts.Get("red"))
	assert.Equal(t, resources.TextureFormatRGBA32F, red.Format)
	assert.Equal(t, math.NewVec3(0, 1, 0), ts.Average("red"))

	require.NoError(t, ts.Register(resources.NewTexture("b", 1, 1, resources.TextureFormatRGBA8, make([]byte, 4))))
	err := ts.Register(resources.NewTexture("c", 1, 1, resources.TextureFormatRGBA8, make([]byte, 4)))
	assert.ErrorIs(t, err, core.ErrRegistryFull)

	assert.ErrorIs(t, ts.Register(nil), core.ErrInvalidConfig)
	assert.ErrorIs(t, ts.Register(resources.NewTexture(resources.DefaultTextureName, 1, 1, resources.TextureFormatRGBA8, nil)), core.ErrInvalidConfig)

	assert.Same(t, ts.DefaultTexture, ts.Get("missing"))
	assert.Equal(t, math.NewVec3(1, 1, 1), ts.Average("missing"))
}

func TestTextureSystemAverageAll(t *testing.T) {
	ts := newTestTextureSystem(t, 16)

	texels := []math.Vec4{{X: 1, W: 1}, {Y: 1, W: 1}, {Z: 1, W: 1}, {X: 1, Y: 1, Z: 1, W: 1}}
	require.NoError(t, ts.Register(resources.NewTexture("half", 2, 2, resources.TextureFormatRGBA16F, resources.PackRGBA16F(texels))))
	require.NoError(t, ts.Register(resources.NewTexture("full", 2, 2, resources.TextureFormatRGBA32F, resources.PackRGBA32F(texels))))
	require.NoError(t, ts.Register(resources.NewTexture("byte", 2, 1, resources.TextureFormatRGBA8,
		resources.PackRGBA8([][4]uint8{{255, 255, 255, 255}, {0, 0, 0, 255}}))))
	require.NoError(t, ts.Register(resources.NewTexture("bogus", 2, 2, resources.TextureFormatUnknown, make([]byte, 64))))

	all, err := ts.AverageAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 4)
	for name, avg := range all {
		assert.Equal(t, ts.Average(name), avg, name)
	}
	assert.InDelta(t, 0.5, all["half"].X, 1e-3)
	assert.InDelta(t, 0.5, all["full"].Y, 1e-6)
	assert.InDelta(t, 0.5, all["byte"].Z, 1e-6)
	assert.Equal(t, math.Vec3{}, all["bogus"])
}

func TestTextureSystemAverageAllCancelled(t *testing.T) {
	ts := newTestTextureSystem(t, 4)
	require.NoError(t, ts.Register(resources.NewTexture("a", 1, 1, resources.TextureFormatRGBA8, make([]byte, 4))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ts.AverageAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSystemManager(t *testing.T) {
	_, err := NewSystemManager(SystemManagerConfig{MaxMaterialCount: 1, MaxTextureCount: 1})
	assert.ErrorIs(t, err, ErrNoWorkers)

	sm, err := NewSystemManager(SystemManagerConfig{MaxMaterialCount: 4, MaxTextureCount: 4, JobWorkers: 2})
	require.NoError(t, err)
	assert.NotNil(t, sm.Materials().DefaultMaterial)
	assert.Zero(t, sm.Textures().Count())
	require.NoError(t, sm.Shutdown())
	assert.ErrorIs(t, sm.Jobs().Submit(context.Background(), JobTask{}), ErrJobSystemStopped)
}
