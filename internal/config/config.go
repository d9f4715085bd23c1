package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-project configuration directory.
const DirName = ".filematcher"

// FileName is the configuration file inside DirName.
const FileName = "config.yaml"

// Config represents filematcher configuration options
type Config struct {
	// Roots are scanned when no root is given on the command line
	Roots []string `yaml:"roots"`

	// Recursive descends into subdirectories
	Recursive bool `yaml:"recursive"`

	// MaxDepth limits recursion depth (0 = unlimited, 1 = roots only).
	// A positive value turns Recursive on.
	MaxDepth int `yaml:"max_depth"`

	// ExcludeDirs lists directory names recursion never enters
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// IncludeHidden lets recursion enter directories starting with "."
	IncludeHidden bool `yaml:"include_hidden"`

	// FollowSymlinks classifies symlinks by their target
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Output selects the result format (text, json, yaml)
	Output string `yaml:"output"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Roots:          []string{"."},
		Recursive:      false,
		MaxDepth:       0, // Unlimited once recursive
		ExcludeDirs:    []string{".git", "node_modules"},
		IncludeHidden:  false,
		FollowSymlinks: true,
		LogLevel:       "warn",
		Output:         "text",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Detect which keys were present so explicit false/zero values still
	// override the defaults
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	present := func(key string) bool {
		_, ok := rawMap[key]
		return ok
	}

	if present("roots") {
		cfg.Roots = fileCfg.Roots
	}
	if present("recursive") {
		cfg.Recursive = fileCfg.Recursive
	}
	if present("max_depth") {
		cfg.MaxDepth = fileCfg.MaxDepth
		if cfg.MaxDepth > 0 {
			cfg.Recursive = true
		}
	}
	if present("exclude_dirs") {
		cfg.ExcludeDirs = fileCfg.ExcludeDirs
	}
	if present("include_hidden") {
		cfg.IncludeHidden = fileCfg.IncludeHidden
	}
	if present("follow_symlinks") {
		cfg.FollowSymlinks = fileCfg.FollowSymlinks
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .filematcher/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, FileName))
}

// Flags holds command-line overrides. Nil fields were not set.
type Flags struct {
	Recursive      *bool
	MaxDepth       *int
	ExcludeDirs    *[]string
	IncludeHidden  *bool
	FollowSymlinks *bool
	LogLevel       *string
	Output         *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.Recursive != nil {
		c.Recursive = *f.Recursive
	}
	if f.MaxDepth != nil {
		c.MaxDepth = *f.MaxDepth
		// A depth limit only means something when recursing
		if c.MaxDepth > 0 {
			c.Recursive = true
		}
	}
	if f.ExcludeDirs != nil {
		c.ExcludeDirs = *f.ExcludeDirs
	}
	if f.IncludeHidden != nil {
		c.IncludeHidden = *f.IncludeHidden
	}
	if f.FollowSymlinks != nil {
		c.FollowSymlinks = *f.FollowSymlinks
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Output != nil {
		c.Output = *f.Output
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output %q, must be one of: text, json, yaml", c.Output)
	}

	for i, root := range c.Roots {
		if root == "" {
			return fmt.Errorf("roots[%d] cannot be empty", i)
		}
	}

	return nil
}
