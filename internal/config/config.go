package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	dirEnv     = "ANAGRID_DIR"
	configFile = "config.yaml"
)

// Config holds user-tunable client settings.
type Config struct {
	ServerURL string `yaml:"server_url"`
	Theme     string `yaml:"theme"`
	Hints     bool   `yaml:"hints"`
}

// Default returns the settings used when no config file exists yet.
func Default() Config {
	return Config{
		ServerURL: "https://api.anagrid.dev",
		Theme:     "auto",
		Hints:     true,
	}
}

var (
	resolvedDir string
	resolvedErr error
	resolveOnce sync.Once
)

// ResolveDir finds the anagrid data directory.
// Order: ANAGRID_DIR env var -> ~/.anagrid.
// Result is cached for the process lifetime.
func ResolveDir() (string, error) {
	resolveOnce.Do(func() {
		resolvedDir, resolvedErr = resolveDir()
	})
	return resolvedDir, resolvedErr
}

// ResetResolveCache resets the cached ResolveDir result. For testing only.
func ResetResolveCache() {
	resolveOnce = sync.Once{}
	resolvedDir = ""
	resolvedErr = nil
}

func resolveDir() (string, error) {
	if dir := os.Getenv(dirEnv); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("%s: %w", dirEnv, err)
		}
		return abs, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".anagrid"), nil
}

// EnsureDir creates the data directory if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Load reads the config file from dir. A missing file yields defaults.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file into dir.
func Save(dir string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, configFile), data, 0o644)
}
