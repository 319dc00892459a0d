package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tally/internal/config"
)

// LoadConfig reads the yaml config at path. A missing file is not an
// error: the environment-based defaults are used instead.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
