package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "fyi"
	configFile = "config.yaml"

	// PathEnvVar overrides the configuration file location.
	PathEnvVar = "FYI_CONFIG"
)

var (
	// Global config instance (loaded lazily)
	globalConfig     *Config
	globalConfigPath string
	globalConfigOnce sync.Once
	globalConfigErr  error

	// Mutex for file writes
	fileMutex sync.Mutex
)

// GetConfigDir returns the XDG configuration directory for fyi, e.g.
// $XDG_CONFIG_HOME/fyi on Linux.
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigPath returns the configuration file path. FYI_CONFIG takes
// precedence over the XDG location.
func GetConfigPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), configFile)
}

// Load returns the process-wide configuration, reading it on first use.
// A missing file yields Default().
func Load() (*Config, string, error) {
	globalConfigOnce.Do(func() {
		globalConfigPath = GetConfigPath()
		globalConfig, globalConfigErr = LoadFile(globalConfigPath)
	})
	return globalConfig, globalConfigPath, globalConfigErr
}

// Reset forgets the cached configuration so the next Load reads it again.
func Reset() {
	globalConfigOnce = sync.Once{}
	globalConfig, globalConfigPath, globalConfigErr = nil, "", nil
}

// LoadFile reads and validates the configuration at path. A missing file
// yields Default(); unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration YAML. Keys absent from the document keep
// their Default() values; an empty document yields Default().
func Parse(data []byte) (*Config, error) {
	// version must come from the file itself
	cfg := *Default()
	cfg.Version = 0

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to path atomically. It is only used by
// "fyi config --init"; printing never writes configuration.
func (c *Config) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	header := []byte("# fyi configuration file\n# Location: " + path + "\n\n")
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}
