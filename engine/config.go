package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/engine/systems"
)

type SystemsConfig struct {
	// Upper bound of registered materials, the default one included.
	MaxMaterialCount uint32 `toml:"max_material_count"`
	// Upper bound of registered textures.
	MaxTextureCount uint32 `toml:"max_texture_count"`
	// Upper bound of attached shapes; 0 means unbounded.
	MaxShapeCount uint32 `toml:"max_shape_count"`
	// Workers used for batch texture averaging.
	JobWorkers int `toml:"job_workers"`
}

type Config struct {
	// The application name, used in logs.
	Name     string        `toml:"name"`
	LogLevel string        `toml:"log_level"`
	// Update ticks per second while running.
	TickRate uint32        `toml:"tick_rate"`
	Systems  SystemsConfig `toml:"systems"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "prism",
		LogLevel: core.LogLevelInfo.String(),
		TickRate: 60,
		Systems: SystemsConfig{
			MaxMaterialCount: 1024,
			MaxTextureCount:  1024,
			JobWorkers:       4,
		},
	}
}

/**
 * @brief Reads a TOML config from path on top of DefaultConfig. A missing
 * file yields the defaults; unknown keys and out-of-range values are
 * rejected with core.ErrInvalidConfig.
 */
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogDebug("config file '%s' not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", core.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.TickRate == 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be > 0: %w", core.ErrInvalidConfig))
	}
	if c.Systems.MaxMaterialCount == 0 {
		errs = append(errs, fmt.Errorf("systems.max_material_count must be > 0: %w", core.ErrInvalidConfig))
	}
	if c.Systems.MaxTextureCount == 0 {
		errs = append(errs, fmt.Errorf("systems.max_texture_count must be > 0: %w", core.ErrInvalidConfig))
	}
	if c.Systems.JobWorkers <= 0 {
		errs = append(errs, fmt.Errorf("systems.job_workers must be > 0: %w", core.ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// Apply pushes the runtime-tunable settings to the running process.
func (c *Config) Apply() {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		core.LogWarn("%s", err)
		return
	}
	core.SetLogLevel(level)
}

func (c *Config) systemManagerConfig() systems.SystemManagerConfig {
	return systems.SystemManagerConfig{
		MaxMaterialCount: c.Systems.MaxMaterialCount,
		MaxTextureCount:  c.Systems.MaxTextureCount,
		JobWorkers:       c.Systems.JobWorkers,
	}
}
