// Package types defines core primitive types for the XEM wallet core.
package types

// Network identifies which chain a transaction is built for.
// The numeric value doubles as the address version byte.
type Network byte

const (
	Mainnet Network = 0x68
	Testnet Network = 0x98
	Mijin   Network = 0x60
)

// Rental fee sink accounts. Namespace rentals and mosaic creation fees are
// paid to fixed network accounts rather than burned. Mijin deployments
// configure their own sinks, so none are hardcoded here.
const (
	mainnetNamespaceSink = Address("NAMESPACEWH4MKFMBCVFERDPOOP4FK7MTBXDPZZA")
	mainnetMosaicSink    = Address("NBMOSAICOD4F54EE5CDMR23CCBGOAM2XSJBR5OLC")
	testnetNamespaceSink = Address("TAMESPACEWH4MKFMBCVFERDPOOP4FK7MTDJEYP35")
	testnetMosaicSink    = Address("TBMOSAICOD4F54EE5CDMR23CCBGOAM2XSIUX6TRS")
)

// ParseNetwork converts a network name to a Network.
func ParseNetwork(s string) (Network, bool) {
	switch s {
	case "mainnet":
		return Mainnet, true
	case "testnet":
		return Testnet, true
	case "mijin":
		return Mijin, true
	}
	return 0, false
}

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Mijin:
		return "mijin"
	}
	return "unknown"
}

// Valid reports whether n is one of the known networks.
func (n Network) Valid() bool {
	return n == Mainnet || n == Testnet || n == Mijin
}

// VersionPrefix returns the network tag OR-ed into the version field of
// every transaction built for this network (0x68000000 mainnet,
// 0x98000000 testnet, 0x60000000 mijin).
func (n Network) VersionPrefix() uint32 {
	return uint32(n) << 24
}

// AddressVersion returns the version byte prepended to address payloads.
func (n Network) AddressVersion() byte {
	return byte(n)
}

// DueMinutes returns the transaction due window enforced by the network's
// deadline checks: 60 minutes on testnet, 24 hours elsewhere. This is a
// consensus policy constant, not a tunable.
func (n Network) DueMinutes() int64 {
	if n == Testnet {
		return 60
	}
	return 1440
}

// NamespaceSink returns the rental fee sink for namespace provisioning.
// Empty for mijin (deployment-specific).
func (n Network) NamespaceSink() Address {
	switch n {
	case Mainnet:
		return mainnetNamespaceSink
	case Testnet:
		return testnetNamespaceSink
	}
	return ""
}

// MosaicSink returns the creation fee sink for mosaic definitions.
// Empty for mijin (deployment-specific).
func (n Network) MosaicSink() Address {
	switch n {
	case Mainnet:
		return mainnetMosaicSink
	case Testnet:
		return testnetMosaicSink
	}
	return ""
}
