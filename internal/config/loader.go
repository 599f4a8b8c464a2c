package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.lanerunner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need to name the
// values they change.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", "runner.yaml")}
	if p := userConfigPath("runner.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration, falling back to the
// hard-coded one if the embedded file does not parse.
func Default() RunnerConfig {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path of a user config file, or "" if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", "configs", filename)
}

// ApplyPreset modifies the speed curve for a difficulty preset.
// Fixed keeps the base speed for the whole run.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Physics.Acceleration = 0
		cfg.Physics.MaxSpeed = cfg.Physics.BaseSpeed
		return
	}
	scale := speedScale(preset)
	cfg.Physics.BaseSpeed *= scale
	cfg.Physics.MaxSpeed *= scale
	cfg.Physics.Acceleration *= scale
}
