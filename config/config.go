// Package config handles application configuration.
//
// Everything here is operational: which network to build for, which
// node to talk to, where local data lives. Protocol constants (fees,
// deadlines, sink accounts) are hardcoded in the core packages and are
// not configurable.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds runtime wallet configuration.
type Config struct {
	// Core
	Network string `conf:"network"`
	DataDir string `conf:"datadir"`

	// Node connection
	Node NodeConfig

	// Logging
	Log LogConfig
}

// NodeConfig holds node connection settings.
type NodeConfig struct {
	Endpoint string        `conf:"node.endpoint"`
	Timeout  time.Duration `conf:"node.timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.xemwallet
//	macOS:   ~/Library/Application Support/Xemwallet
//	Windows: %APPDATA%\Xemwallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xemwallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Xemwallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Xemwallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Xemwallet")
	default:
		return filepath.Join(home, ".xemwallet")
	}
}

// NetworkDataDir returns the network-specific data directory.
func (c *Config) NetworkDataDir() string {
	return filepath.Join(c.DataDir, c.Network)
}

// CacheDir returns the mosaic cache database directory.
func (c *Config) CacheDir() string {
	return filepath.Join(c.NetworkDataDir(), "cache")
}

// KeystoreDir returns the keystore directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.NetworkDataDir(), "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "xemwallet.conf")
}
