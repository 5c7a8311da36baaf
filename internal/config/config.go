// Package config loads the project configuration file and environment
// overrides.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file akin looks for in the working
// directory.
const DefaultFile = "akin.yml"

// Config holds everything the pipeline needs to run.
type Config struct {
	CorpusRoot string `yaml:"corpus_root"`
	Dictionary string `yaml:"dictionary"`
	Stopwords  string `yaml:"stopwords"`
	Output     string `yaml:"output"`
	TopK       int    `yaml:"top_k"`
	Workers    int    `yaml:"workers,omitempty"`
	Database   string `yaml:"database,omitempty"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		CorpusRoot: "./posts",
		Dictionary: "./dictionary.txt",
		Stopwords:  "./stopwords.txt",
		Output:     "./results.json",
		TopK:       3,
	}
}

// Load reads the config file if it exists and applies AKIN_*
// environment overrides on top of the defaults. A missing file is not
// an error; a malformed one is. Workers defaults to the CPU count.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment only.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.CorpusRoot = getStringEnv("AKIN_CORPUS_ROOT", cfg.CorpusRoot)
	cfg.Dictionary = getStringEnv("AKIN_DICTIONARY", cfg.Dictionary)
	cfg.Stopwords = getStringEnv("AKIN_STOPWORDS", cfg.Stopwords)
	cfg.Output = getStringEnv("AKIN_OUTPUT", cfg.Output)
	cfg.Database = getStringEnv("AKIN_DATABASE", cfg.Database)
	cfg.TopK = getIntEnv("AKIN_TOP_K", cfg.TopK)
	cfg.Workers = getIntEnv("AKIN_WORKERS", cfg.Workers)

	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.TopK < 1 {
		return nil, fmt.Errorf("top_k must be at least 1, got %d", cfg.TopK)
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func getStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
