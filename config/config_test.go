package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.conf")
	content := `# comment
network = testnet

node.endpoint = "http://10.0.0.5:7890"
node.timeout = 30s
log.level = debug
log.json = true
unknown.key = ignored
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if values["network"] != "testnet" {
		t.Errorf("network = %q, want testnet", values["network"])
	}
	if values["node.endpoint"] != "http://10.0.0.5:7890" {
		t.Errorf("endpoint = %q, quotes should be stripped", values["node.endpoint"])
	}

	cfg := DefaultMainnet()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.Network != "testnet" {
		t.Errorf("Network = %q, want testnet", cfg.Network)
	}
	if cfg.Node.Endpoint != "http://10.0.0.5:7890" {
		t.Errorf("Endpoint = %q", cfg.Node.Endpoint)
	}
	if cfg.Node.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Node.Timeout)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("LoadFile on missing file: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected empty map, got %d entries", len(values))
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.conf")
	os.WriteFile(path, []byte("this is not a key value pair\n"), 0644)

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"mijin", func(c *Config) { c.Network = "mijin" }, false},
		{"bad network", func(c *Config) { c.Network = "devnet" }, true},
		{"empty endpoint", func(c *Config) { c.Node.Endpoint = "" }, true},
		{"bad scheme", func(c *Config) { c.Node.Endpoint = "ftp://node:7890" }, true},
		{"negative timeout", func(c *Config) { c.Node.Timeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTestnet()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.conf")
	if err := WriteDefaultConfig(path, "testnet"); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	cfg := DefaultMainnet()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.Network != "testnet" {
		t.Errorf("Network = %q, want testnet", cfg.Network)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("generated config does not validate: %v", err)
	}
}

func TestDirectories(t *testing.T) {
	cfg := DefaultTestnet()
	cfg.DataDir = "/data"

	if got := cfg.NetworkDataDir(); got != filepath.Join("/data", "testnet") {
		t.Errorf("NetworkDataDir = %q", got)
	}
	if got := cfg.CacheDir(); got != filepath.Join("/data", "testnet", "cache") {
		t.Errorf("CacheDir = %q", got)
	}
	if got := cfg.KeystoreDir(); got != filepath.Join("/data", "testnet", "keystore") {
		t.Errorf("KeystoreDir = %q", got)
	}
}
