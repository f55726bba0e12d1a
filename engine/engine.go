package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/scene"
	"github.com/spaghettifunk/prism/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released every system
	EngineStageShutdown
)

var ErrWrongStage = errors.New("operation not allowed in the current engine stage")

type Engine struct {
	currentStage  Stage
	configMu      sync.Mutex
	config        *Config
	gameInstance  *Game
	scene         *scene.Scene
	systemManager *systems.SystemManager
	clock         *core.Clock
	lastTime      float64
	frameCount    uint64
}

func New(cfg *Config, g *Game) (*Engine, error) {
	if g == nil || g.FnInitialize == nil {
		return nil, fmt.Errorf("game must provide an initialize function: %w", core.ErrInvalidConfig)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError("%s", err)
		return nil, err
	}
	cfg.Apply()

	sm, err := systems.NewSystemManager(cfg.systemManagerConfig())
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}

	return &Engine{
		currentStage:  EngineStageUninitialized,
		config:        cfg,
		gameInstance:  g,
		scene:         scene.NewScene(cfg.Systems.MaxShapeCount),
		systemManager: sm,
		clock:         core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return ErrWrongStage
	}
	e.currentStage = EngineStageInitializing

	if err := e.gameInstance.FnInitialize(e); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized with %d shapes and %d textures", e.config.Name, e.scene.Len(), e.systemManager.Textures().Count())
	return nil
}

/**
 * @brief Ticks the game at the configured rate until ctx is done or an
 * update fails.
 */
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return ErrWrongStage
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	ticker := time.NewTicker(time.Second / time.Duration(e.config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.clock.Stop()
			e.currentStage = EngineStageInitialized
			return nil
		case <-ticker.C:
			e.clock.Update()
			currentTime := e.clock.Elapsed()
			if err := e.Tick(currentTime - e.lastTime); err != nil {
				core.LogError("game update failed, stopping: %s", err)
				e.clock.Stop()
				e.currentStage = EngineStageInitialized
				return err
			}
			e.lastTime = currentTime
		}
	}
}

/**
 * @brief Advances the game by one update, then collects and clears the
 * dirty flags of the shapes it changed.
 */
func (e *Engine) Tick(deltaTime float64) error {
	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(e, deltaTime); err != nil {
			return err
		}
	}
	e.frameCount++

	if dirty := e.scene.CollectDirty(); len(dirty) > 0 {
		bounds := e.scene.WorldAABB()
		core.LogDebug("frame %d: %d shapes changed, world bounds %v -> %v", e.frameCount, len(dirty), bounds.Min, bounds.Max)
	}
	return nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown || e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown(e))
	}
	errs = append(errs, e.systemManager.Shutdown())

	e.currentStage = EngineStageShutdown
	return errors.Join(errs...)
}

// OnConfigChange records a reloaded config. It runs on the watcher
// goroutine, which has already applied cfg; capacities are fixed at
// startup, so only the runtime-tunable settings are kept.
func (e *Engine) OnConfigChange(cfg *Config) {
	e.configMu.Lock()
	defer e.configMu.Unlock()
	if cfg.Systems != e.config.Systems {
		core.LogWarn("systems configuration changes take effect after a restart")
	}
	e.config.LogLevel = cfg.LogLevel
}

func (e *Engine) Stage() Stage { return e.currentStage }
// Config returns a snapshot of the current configuration.
func (e *Engine) Config() Config {
	e.configMu.Lock()
	defer e.configMu.Unlock()
	return *e.config
}

func (e *Engine) Scene() *scene.Scene { return e.scene }
func (e *Engine) Systems() *systems.SystemManager { return e.systemManager }
func (e *Engine) FrameCount() uint64 { return e.frameCount }
