package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Save when the file is already there and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// Path returns the location of the settings file for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// LoadConfig reads <root>/.eventgen.yaml. A missing file yields the defaults;
// fields absent from the file are defaulted too.
func LoadConfig(root string) (Config, error) {
	configPath := Path(root)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config file %s", configPath)
	}
	return cfg.WithDefaults(), nil
}

// SaveConfig writes cfg to <root>/.eventgen.yaml and returns the path written.
func SaveConfig(root string, cfg Config, overwrite bool) (string, error) {
	configPath := Path(root)
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return configPath, errors.Wrap(ErrConfigExists, configPath)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return configPath, errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return configPath, errors.Wrapf(err, "failed to write config file %s", configPath)
	}
	return configPath, nil
}
