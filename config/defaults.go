package config

import "time"

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: "mainnet",
		DataDir: DefaultDataDir(),
		Node: NodeConfig{
			Endpoint: "http://localhost:7890",
			Timeout:  10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default configuration for testnet.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = "testnet"
	return cfg
}

// Default returns the default configuration for the given network.
func Default(network string) *Config {
	switch network {
	case "testnet":
		return DefaultTestnet()
	default:
		return DefaultMainnet()
	}
}
