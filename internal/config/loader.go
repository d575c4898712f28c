package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up in the user and local config directories.
const configFileName = "memory.yaml"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides the keys it sets.
// An explicit customPath that cannot be read, parsed or validated is an error; broken files
// found during the search are skipped.
func LoadMemory(customPath string) (MemoryConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMemory(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(configFileName),
		filepath.Join("configs", configFileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMemory(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseMemory(defaultMemoryYAML); err == nil {
		return cfg, nil
	}
	return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
}

// parseMemory decodes YAML over the built-in defaults and validates the result.
func parseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}
