package systems

import "errors"

type SystemManagerConfig struct {
	MaxMaterialCount uint32
	MaxTextureCount  uint32
	JobWorkers       int
}

type SystemManager struct {
	jobSystem      *JobSystem
	materialSystem *MaterialSystem
	textureSystem  *TextureSystem
}

func NewSystemManager(config SystemManagerConfig) (*SystemManager, error) {
	js, err := NewJobSystem(config.JobWorkers, int(config.MaxTextureCount))
	if err != nil {
		return nil, err
	}
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: config.MaxTextureCount,
	}, js)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	ms, err := NewMaterialSystem(&MaterialSystemConfig{
		MaxMaterialCount: config.MaxMaterialCount,
	})
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	return &SystemManager{
		jobSystem:      js,
		textureSystem:  ts,
		materialSystem: ms,
	}, nil
}

func (sm *SystemManager) Materials() *MaterialSystem { return sm.materialSystem }
func (sm *SystemManager) Textures() *TextureSystem { return sm.textureSystem }
func (sm *SystemManager) Jobs() *JobSystem { return sm.jobSystem }

// Shutdown stops every system in reverse creation order and reports all failures.
func (sm *SystemManager) Shutdown() error {
	return errors.Join(
		sm.materialSystem.Shutdown(),
		sm.textureSystem.Shutdown(),
		sm.jobSystem.Shutdown(),
	)
}
