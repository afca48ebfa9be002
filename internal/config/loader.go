package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable that points at the YAML file.
const PathEnv = "CONFIG_PATH"

const defaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH, or ./config.yaml when unset,
// and validates the result. Environment variables override the file and
// env-default tags fill the rest. Only an explicitly named file must exist.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFile(path, true)
	}
	return LoadFile(defaultPath, false)
}

// LoadFile is Load for a known path. With required unset a missing file
// falls back to ENV and defaults.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config
	if err := read(&cfg, path, required); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(cfg *Config, path string, required bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	case required || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
