package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPursuit loads the pursuit configuration and applies PURSUIT_*
// environment overrides on top.
// Search order: customPath -> ~/.pursuit/configs/pursuit.yaml -> ./configs/pursuit.yaml -> embedded default
func LoadPursuit(customPath string) (PursuitConfig, error) {
	cfg, err := loadPursuitFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPursuitFile(customPath string) (PursuitConfig, error) {
	cfg := DefaultPursuitConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pursuit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPursuitConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pursuit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPursuitConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPursuitYAML, &cfg); err != nil {
		return DefaultPursuitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pursuit", "configs", filename)
}
