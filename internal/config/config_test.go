package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DirName, FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Roots, []string{"."}) {
		t.Errorf("Roots = %v, want [.]", cfg.Roots)
	}
	if cfg.Recursive {
		t.Errorf("Recursive = %v, want false", cfg.Recursive)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0", cfg.MaxDepth)
	}
	if !cfg.FollowSymlinks {
		t.Errorf("FollowSymlinks = %v, want true", cfg.FollowSymlinks)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Output != "text" {
		t.Errorf("Output = %q, want %q", cfg.Output, "text")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, `roots: [src, docs]
recursive: true
max_depth: 3
exclude_dirs: [vendor]
include_hidden: true
follow_symlinks: false
log_level: debug
output: json
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Roots, []string{"src", "docs"}) {
		t.Errorf("Roots = %v, want [src docs]", cfg.Roots)
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", cfg.MaxDepth)
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, []string{"vendor"}) {
		t.Errorf("ExcludeDirs = %v, want [vendor]", cfg.ExcludeDirs)
	}
	if !cfg.IncludeHidden {
		t.Error("IncludeHidden = false, want true")
	}
	if cfg.FollowSymlinks {
		t.Error("FollowSymlinks = true, want explicit false to override default")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "json")
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `
recursive: true
exclude_dirs: [this is not valid
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("LoadConfig() expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("LoadConfig() error = %v", err)
	}
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "recursive: true\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if !cfg.FollowSymlinks {
		t.Error("FollowSymlinks should keep its default")
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, DefaultConfig().ExcludeDirs) {
		t.Errorf("ExcludeDirs = %v, want defaults", cfg.ExcludeDirs)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadConfigMaxDepthImpliesRecursive(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantRecursive bool
	}{
		{"depth alone", "max_depth: 2\n", true},
		{"depth overrides recursive false", "recursive: false\nmax_depth: 2\n", true},
		{"zero depth keeps default", "max_depth: 0\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, t.TempDir(), tt.content))
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if cfg.Recursive != tt.wantRecursive {
				t.Errorf("Recursive = %v, want %v", cfg.Recursive, tt.wantRecursive)
			}
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "output: yaml\n")

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output = %q, want yaml", cfg.Output)
	}
}

func TestMergeWithFlags(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }
	strPtr := func(s string) *string { return &s }

	t.Run("nil flags keep config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MergeWithFlags(Flags{})
		if !reflect.DeepEqual(cfg, DefaultConfig()) {
			t.Errorf("MergeWithFlags(empty) changed config: %+v", cfg)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		cfg := DefaultConfig()
		exclude := []string{"target"}
		cfg.MergeWithFlags(Flags{
			Recursive:      boolPtr(true),
			ExcludeDirs:    &exclude,
			IncludeHidden:  boolPtr(true),
			FollowSymlinks: boolPtr(false),
			LogLevel:       strPtr("trace"),
			Output:         strPtr("json"),
		})
		if !cfg.Recursive || !cfg.IncludeHidden || cfg.FollowSymlinks {
			t.Errorf("bool flags not applied: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.ExcludeDirs, exclude) {
			t.Errorf("ExcludeDirs = %v, want %v", cfg.ExcludeDirs, exclude)
		}
		if cfg.LogLevel != "trace" || cfg.Output != "json" {
			t.Errorf("string flags not applied: %+v", cfg)
		}
	})

	t.Run("max depth implies recursive", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MergeWithFlags(Flags{MaxDepth: intPtr(2)})
		if cfg.MaxDepth != 2 || !cfg.Recursive {
			t.Errorf("MaxDepth = %d, Recursive = %v; want 2, true", cfg.MaxDepth, cfg.Recursive)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, "max_depth must be >= 0"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log_level"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "invalid output"},
		{"empty root", func(c *Config) { c.Roots = []string{"src", ""} }, "roots[1] cannot be empty"},
		{"no roots is fine", func(c *Config) { c.Roots = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindConfigPath(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "recursive: true\n")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("FindConfigPath() error = %v", err)
	}
	// t.TempDir may sit behind a symlink (macOS /var); compare resolved paths.
	gotResolved, _ := filepath.EvalSymlinks(got)
	wantResolved, _ := filepath.EvalSymlinks(want)
	if gotResolved != wantResolved {
		t.Errorf("FindConfigPath() = %s, want %s", got, want)
	}

	cfg, path, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if path == "" || !cfg.Recursive {
		t.Errorf("Discover() = %+v, %q; want recursive config from %s", cfg, path, want)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	// A fresh temp dir normally has no .filematcher above it; skip if the
	// machine running the tests has one.
	dir := t.TempDir()
	path, err := FindConfigPath(dir)
	if err != nil {
		t.Fatalf("FindConfigPath() error = %v", err)
	}
	if path != "" {
		t.Skipf("found ambient config at %s", path)
	}

	cfg, path, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if path != "" || !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Discover() = %+v, %q; want defaults", cfg, path)
	}
}
