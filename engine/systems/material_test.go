package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
)

func TestMaterialSystemDefault(t *testing.T) {
	_, err := NewMaterialSystem(&MaterialSystemConfig{})
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 4})
	require.NoError(t, err)
	require.NotNil(t, ms.DefaultMaterial)
	assert.Equal(t, resources.DefaultMaterialName, ms.DefaultMaterial.Name)
	assert.True(t, ms.DefaultMaterial.Handle.IsValid())
	assert.Equal(t, 1, ms.Count())

	require.NoError(t, ms.Release(ms.DefaultMaterial.Handle))
	_, ok := ms.Get(ms.DefaultMaterial.Handle)
	assert.True(t, ok)
}

func TestMaterialSystemAcquireRelease(t *testing.T) {
	ms, err := NewMaterialSystem(&MaterialSystemConfig{MaxMaterialCount: 2})
	require.NoError(t, err)

	red, err := ms.Acquire(resources.MaterialConfig{
		Name:          "red",
		DiffuseColour: math.NewVec4(1, 0, 0, 1),
		Shininess:     8,
	})
	require.NoError(t, err)
	again, err := ms.Acquire(resources.MaterialConfig{Name: "red"})
	require.NoError(t, err)
	assert.Same(t, red, again)

	got, ok := ms.GetByName("red")
	require.True(t, ok)
	assert.Equal(t, float32(8), got.Shininess)

	_, err = ms.Acquire(resources.MaterialConfig{Name: "blue"})
	assert.ErrorIs(t, err, core.ErrRegistryFull)
	_, err = ms.Acquire(resources.MaterialConfig{})
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	h := red.Handle
	require.NoError(t, ms.Release(h))
	_, ok = ms.Get(h)
	assert.False(t, ok)
	_, ok = ms.GetByName("red")
	assert.False(t, ok)
	assert.ErrorIs(t, ms.Release(h), core.ErrInvalidHandle)

	blue, err := ms.Acquire(resources.MaterialConfig{Name: "blue"})
	require.NoError(t, err)
	assert.Equal(t, h.ID, blue.Handle.ID)
	assert.NotEqual(t, h, blue.Handle)
	_, ok = ms.Get(resources.NoMaterial)
	assert.False(t, ok)

	require.NoError(t, ms.Shutdown())
	assert.Zero(t, ms.Count())
}
