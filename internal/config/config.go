package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

// Config describes an index and, optionally, a script to run against it.
type Config struct {
	Size     int          `json:"size" yaml:"size"`
	Kind     types.Kind   `json:"kind" yaml:"kind"`
	Modulus  uint64       `json:"modulus,omitempty" yaml:"modulus,omitempty"`
	Mode     types.Mode   `json:"mode" yaml:"mode"`
	LogLevel string       `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Steps    []types.Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// ApplyDefaults fills in the kind, mode and log level when they are unset.
func (c *Config) ApplyDefaults() {
	if c.Kind == "" {
		c.Kind = types.KindInt
	}
	if c.Mode == "" {
		c.Mode = types.ModePoint
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the fields that the index constructors would reject.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", types.ErrBadArgument, c.Size)
	}
	if _, err := types.ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if _, err := types.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Kind == types.KindMod && c.Modulus == 0 {
		return fmt.Errorf("%w: kind mod needs a modulus", types.ErrBadArgument)
	}
	for i, s := range c.Steps {
		if strings.TrimSpace(s.Run) == "" {
			return fmt.Errorf("%w: step %d has no command", types.ErrBadArgument, i+1)
		}
	}
	return nil
}

type ConfigImpl struct{}

func (c *ConfigImpl) LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	var cfg Config
	err = json.NewDecoder(file).Decode(&cfg)
	return cfg, err
}

func (c *ConfigImpl) LoadYAML(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	var cfg Config
	err = yaml.NewDecoder(file).Decode(&cfg)
	return cfg, err
}

// Load reads a JSON or YAML file, chosen by extension, then applies defaults
// and validates the result.
func Load(path string) (Config, error) {
	c := &ConfigImpl{}

	var cfg Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cfg, err = c.LoadConfig(path)
	case ".yaml", ".yml":
		cfg, err = c.LoadYAML(path)
	default:
		return Config{}, fmt.Errorf("%w: unsupported config file %s", types.ErrBadArgument, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
