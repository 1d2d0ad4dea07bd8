package scenery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a World. Values come from defaults, then an
// optional YAML or TOML file, then SCENERY_* environment variables.
type Config struct {
	// MaxEntityCount is the fixed number of entity slots. Creating more
	// entities than this fails.
	MaxEntityCount int `config:"SCENERY_MAX_ENTITY_COUNT" yaml:"max_entity_count" toml:"max_entity_count"`
	// LogLevel is a zerolog level name.
	LogLevel string `config:"SCENERY_LOG_LEVEL" yaml:"log_level" toml:"log_level"`
	// DebugChecks makes EndFrame fail when transforms were left dirty.
	DebugChecks bool `config:"SCENERY_DEBUG_CHECKS" yaml:"debug_checks" toml:"debug_checks"`
}

// DefaultConfig returns DefaultMaxEntityCount entities at Info level with
// debug checks off.
func DefaultConfig() Config {
	return Config{
		MaxEntityCount: DefaultMaxEntityCount,
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// LoadConfig reads path, picking the format from its extension, and applies
// environment overrides on top. An empty path loads only defaults and
// environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, eris.Wrapf(err, "cannot read config %s", path)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &cfg)
		case ".toml":
			err = toml.Unmarshal(data, &cfg)
		default:
			err = eris.Errorf("unsupported config format %q", ext)
		}
		if err != nil {
			return cfg, eris.Wrapf(err, "cannot parse config %s", path)
		}
	}
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "cannot read config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects a non-positive capacity and unknown log levels.
func (c Config) Validate() error {
	if c.MaxEntityCount <= 0 {
		return eris.Errorf("invalid config: max entity count must be positive, got %d", c.MaxEntityCount)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid config: log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, Info when it is empty or cannot be
// parsed.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
