// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	MemoryStore bool   `json:"memory_store,omitempty"` // Use the in-memory history store
	ModelDir    string `json:"model_dir,omitempty"`    // Directory with frozen model artifacts; empty uses embedded
	SkillsFile  string `json:"skills_file,omitempty"`  // External skill vocabulary JSON; empty uses embedded
	LogJSON     bool   `json:"log_json,omitempty"`     // JSON log encoding
	Debug       bool   `json:"debug,omitempty"`        // Debug log level
}

// Defaults used when neither file, env, nor flags supply a value.
const (
	DefaultPort = 8080
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills empty fields from environment variables (PORT, DATABASE_URL,
// MODEL_DIR, SKILLS_FILE). Explicit values win over the environment.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
			c.Port = p
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ModelDir == "" {
		c.ModelDir = os.Getenv("MODEL_DIR")
	}
	if c.SkillsFile == "" {
		c.SkillsFile = os.Getenv("SKILLS_FILE")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if !c.MemoryStore && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required unless 'memory_store' is set")
	}
	if c.ModelDir != "" {
		if _, err := os.Stat(c.ModelDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: model directory not found: %s", c.ModelDir)
		}
	}
	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}
	return nil
}
