package config

import (
	"fmt"
	"net/url"

	"github.com/xemtech/xemwallet/pkg/types"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, ok := types.ParseNetwork(cfg.Network); !ok {
		return fmt.Errorf("network must be mainnet, testnet or mijin")
	}
	if cfg.Node.Endpoint == "" {
		return fmt.Errorf("node.endpoint is required")
	}
	u, err := url.Parse(cfg.Node.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("node.endpoint must be an http(s) URL")
	}
	if cfg.Node.Timeout < 0 {
		return fmt.Errorf("node.timeout must not be negative")
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}
