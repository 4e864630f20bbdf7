// Package config loads the interactive shell settings.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls the interactive prompt. All fields are optional; empty
// fields fall back to defaults.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: homePath(".lox_history"),
	}
}

// DefaultPath returns the conventional config file location, ~/.lox.yaml.
func DefaultPath() string {
	return homePath(".lox.yaml")
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; a present but malformed file is. Unknown fields are
// rejected so typos surface instead of being silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Prompt != "" {
		cfg.Prompt = file.Prompt
	}
	if file.HistoryFile != "" {
		cfg.HistoryFile = file.HistoryFile
	}
	return cfg, nil
}

func homePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}
