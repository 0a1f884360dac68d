package wallet

import "github.com/xemtech/xemwallet/pkg/types"

// Account is the public metadata of a stored key.
type Account struct {
	Label     string          `json:"label"`
	Network   types.Network   `json:"network"`
	PublicKey types.PublicKey `json:"public_key"`
	Address   types.Address   `json:"address"`
}
