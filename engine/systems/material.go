package systems

import (
	"fmt"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
)

type MaterialSystemConfig struct {
	/** @brief The maximum number of materials that can be registered at once. */
	MaxMaterialCount uint32
}

/**
 * @brief MaterialSystem owns materials. Shapes hold the handles it issues
 * and never the materials themselves, so a released material simply stops
 * resolving.
 */
type MaterialSystem struct {
	Config          *MaterialSystemConfig
	DefaultMaterial *resources.Material
	materials       *core.IdentifierPool[*resources.Material]
	byName          map[string]resources.MaterialHandle
}

func NewMaterialSystem(config *MaterialSystemConfig) (*MaterialSystem, error) {
	if config.MaxMaterialCount == 0 {
		err := fmt.Errorf("func NewMaterialSystem - config.MaxMaterialCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError("%s", err)
		return nil, err
	}

	ms := &MaterialSystem{
		Config:    config,
		materials: core.NewIdentifierPool[*resources.Material](config.MaxMaterialCount),
		byName:    make(map[string]resources.MaterialHandle),
	}

	def, err := ms.Acquire(resources.MaterialConfig{
		Name:          resources.DefaultMaterialName,
		DiffuseColour: math.NewVec4(1, 1, 1, 1),
	})
	if err != nil {
		return nil, err
	}
	ms.DefaultMaterial = def

	return ms, nil
}

// Acquire registers a material from config, or returns the one already
// registered under that name.
func (ms *MaterialSystem) Acquire(config resources.MaterialConfig) (*resources.Material, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("material name cannot be empty: %w", core.ErrInvalidConfig)
	}
	if h, ok := ms.byName[config.Name]; ok {
		if m, ok := ms.Get(h); ok {
			return m, nil
		}
	}

	m := &resources.Material{
		Name:           config.Name,
		DiffuseColour:  config.DiffuseColour,
		DiffuseMapName: config.DiffuseMapName,
		Shininess:      config.Shininess,
	}
	id, generation, err := ms.materials.Acquire(m)
	if err != nil {
		core.LogError("failed to register material '%s': %s", config.Name, err)
		return nil, err
	}
	m.Handle = resources.MaterialHandle{ID: id, Generation: generation}
	ms.byName[config.Name] = m.Handle

	core.LogDebug("material '%s' registered with ID %d", m.Name, id)
	return m, nil
}

// Get resolves h; released or never-issued handles report false.
func (ms *MaterialSystem) Get(h resources.MaterialHandle) (*resources.Material, bool) {
	return ms.materials.Get(h.ID, h.Generation)
}

// GetByName returns the material registered under name.
func (ms *MaterialSystem) GetByName(name string) (*resources.Material, bool) {
	h, ok := ms.byName[name]
	if !ok {
		return nil, false
	}
	return ms.Get(h)
}

// Release drops the material. The default material cannot be released.
func (ms *MaterialSystem) Release(h resources.MaterialHandle) error {
	if h == ms.DefaultMaterial.Handle {
		core.LogWarn("ignoring release of the default material")
		return nil
	}
	m, ok := ms.Get(h)
	if !ok {
		return fmt.Errorf("release material %d: %w", h.ID, core.ErrInvalidHandle)
	}
	delete(ms.byName, m.Name)
	return ms.materials.Release(h.ID, h.Generation)
}

func (ms *MaterialSystem) Count() int {
	return ms.materials.Len()
}

func (ms *MaterialSystem) Shutdown() error {
	ms.byName = make(map[string]resources.MaterialHandle)
	ms.materials = core.NewIdentifierPool[*resources.Material](ms.Config.MaxMaterialCount)
	return nil
}
