package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries CLI-level settings only. The vocabulary tables driving the
// pipeline are compiled-in data and are deliberately not configurable.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Defaults struct {
		Industry string `yaml:"industry"`
		PageType string `yaml:"page_type"`
	} `yaml:"defaults"`
}

// Load reads the YAML config at path, layering .env and environment-variable
// overrides on top. A missing file yields defaults, not an error.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Defaults.PageType = "home"

	// 2. Load YAML config when present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if level := os.Getenv("SITEFORGE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if dir := os.Getenv("SITEFORGE_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if industry := os.Getenv("SITEFORGE_INDUSTRY"); industry != "" {
		cfg.Defaults.Industry = industry
	}

	return cfg, nil
}
