package systems

import (
	"context"
	"fmt"
	"sync"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/resources"
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be registered at once. */
	MaxTextureCount uint32
}

/**
 * @brief TextureSystem owns registered textures and computes their average
 * colours on demand. Averages are never cached.
 */
type TextureSystem struct {
	Config *TextureSystemConfig
	// The 1x1 white texture returned for unknown names.
	DefaultTexture *resources.Texture
	// Array of registered textures.
	RegisteredTextures []*resources.Texture
	// Hashtable for texture lookups.
	RegisteredTextureTable map[string]uint32
	// sub systems
	jobSystem *JobSystem
}

func NewTextureSystem(config *TextureSystemConfig, js *JobSystem) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError("%s", err)
		return nil, err
	}

	def := resources.NewTexture(resources.DefaultTextureName, 1, 1, resources.TextureFormatRGBA8, []byte{255, 255, 255, 255})

	return &TextureSystem{
		Config:                 config,
		DefaultTexture:         def,
		RegisteredTextures:     make([]*resources.Texture, 0, config.MaxTextureCount),
		RegisteredTextureTable: make(map[string]uint32),
		jobSystem:              js,
	}, nil
}

// Register adds texture under its name, replacing the buffer of any texture
// already registered with that name.
func (ts *TextureSystem) Register(texture *resources.Texture) error {
	if texture == nil || texture.Name == "" {
		return fmt.Errorf("texture must be non-nil and named: %w", core.ErrInvalidConfig)
	}
	if texture.Name == resources.DefaultTextureName {
		core.LogWarn("func texture system Register called for the default texture '%s'", texture.Name)
		return fmt.Errorf("texture name '%s' is reserved: %w", texture.Name, core.ErrInvalidConfig)
	}

	if id, ok := ts.RegisteredTextureTable[texture.Name]; ok {
		existing := ts.RegisteredTextures[id]
		existing.SetData(texture.Width, texture.Height, texture.Format, texture.Data)
		texture.ID = id
		core.LogDebug("texture '%s' reloaded, generation %d", texture.Name, existing.Generation)
		return nil
	}

	if uint32(len(ts.RegisteredTextures)) >= ts.Config.MaxTextureCount {
		return fmt.Errorf("texture '%s': %w", texture.Name, core.ErrRegistryFull)
	}
	texture.ID = uint32(len(ts.RegisteredTextures))
	ts.RegisteredTextures = append(ts.RegisteredTextures, texture)
	ts.RegisteredTextureTable[texture.Name] = texture.ID

	core.LogDebug("texture '%s' registered (%dx%d %s)", texture.Name, texture.Width, texture.Height, texture.Format)
	return nil
}

// Get returns the texture registered under name, or the default texture.
func (ts *TextureSystem) Get(name string) *resources.Texture {
	if id, ok := ts.RegisteredTextureTable[name]; ok {
		return ts.RegisteredTextures[id]
	}
	if name != resources.DefaultTextureName {
		core.LogWarn("texture '%s' is not registered, using default", name)
	}
	return ts.DefaultTexture
}

// Average returns the average colour of the named texture.
func (ts *TextureSystem) Average(name string) math.Vec3 {
	return ts.Get(name).ComputeAverageValue()
}

/**
 * @brief Averages every registered texture concurrently on the job system.
 * Textures must not be modified until it returns.
 *
 * @return The averages keyed by texture name.
 */
func (ts *TextureSystem) AverageAll(ctx context.Context) (map[string]math.Vec3, error) {
	out := make(map[string]math.Vec3, len(ts.RegisteredTextures))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, t := range ts.RegisteredTextures {
		texture := t
		wg.Add(1)
		err := ts.jobSystem.Submit(ctx, JobTask{
			OnStart: func(ctx context.Context) error {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					return err
				}
				avg := texture.ComputeAverageValue()
				mu.Lock()
				out[texture.Name] = avg
				mu.Unlock()
				return nil
			},
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(out) != len(ts.RegisteredTextures) {
		return nil, fmt.Errorf("averaged %d of %d textures: %w", len(out), len(ts.RegisteredTextures), ErrJobSystemStopped)
	}
	return out, nil
}

func (ts *TextureSystem) Count() int {
	return len(ts.RegisteredTextures)
}

func (ts *TextureSystem) Shutdown() error {
	ts.RegisteredTextures = ts.RegisteredTextures[:0]
	ts.RegisteredTextureTable = make(map[string]uint32)
	return nil
}
