package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// LoadFile reads a key = value .conf file into a flat map. A missing
// file yields an empty map; a malformed line is an error. Lines starting
// with # are comments.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer f.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key = value", n)
		}
		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return values, scanner.Err()
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ApplyFileConfig merges file values into cfg. Unknown keys are ignored
// so old binaries tolerate newer config files.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "network":
		cfg.Network = value
	case "datadir":
		cfg.DataDir = value

	case "node.endpoint", "node":
		cfg.Node.Endpoint = value
	case "node.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.Node.Timeout = d

	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// WriteDefaultConfig writes a commented starter config for the given
// network.
func WriteDefaultConfig(path string, network string) error {
	content := `# Wallet Configuration
#
# This file contains operational settings only. Protocol rules (fees,
# deadlines, sink accounts) are fixed by the network.

# Network: mainnet, testnet or mijin
network = ` + network + `

# Data directory (default: ~/.xemwallet)
# datadir = ~/.xemwallet

# ============================================================================
# Node Connection
# ============================================================================

# REST endpoint of the node to talk to
node.endpoint = http://localhost:7890

# HTTP timeout for node requests
# node.timeout = 10s

# ============================================================================
# Logging
# ============================================================================

log.level = info
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
