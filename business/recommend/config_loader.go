package recommend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads scoring overrides from a YAML file on top of DefaultConfig.
// A missing file yields the defaults; an invalid one is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read scoring config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML onto the defaults so omitted sections keep their values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scoring config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scoring config: %w", err)
	}
	return cfg, nil
}

// WithLimits overrides the limits, keeping the rest of the config. Non-positive values are ignored.
func (c Config) WithLimits(defaultLimit, limitCap int) Config {
	if defaultLimit > 0 {
		c.DefaultLimit = defaultLimit
	}
	if limitCap > 0 {
		c.MaxLimit = limitCap
	}
	return c
}
