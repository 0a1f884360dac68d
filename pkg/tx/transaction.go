// Package tx assembles the logical transactions a wallet hands to its
// signer: field population, fee computation, deadlines, version tags and
// multisig wrapping. Everything here is pure; the network timestamp is
// injected by the caller.
package tx

import (
	"strconv"

	"github.com/xemtech/xemwallet/pkg/types"
)

// TxType tags a transaction kind.
type TxType uint32

// Transaction kind tags, as the network defines them.
const (
	TypeTransfer             TxType = 0x0101
	TypeImportanceTransfer   TxType = 0x0801
	TypeMultisigModification TxType = 0x1001
	TypeMultisigSignature    TxType = 0x1002
	TypeMultisig             TxType = 0x1004
	TypeProvisionNamespace   TxType = 0x2001
	TypeMosaicDefinition     TxType = 0x4001
	TypeMosaicSupplyChange   TxType = 0x4002
)

// CommonHeader carries the fields shared by every transaction kind.
type CommonHeader struct {
	Type      TxType          `json:"type"`
	Version   uint32          `json:"version"`
	Signer    types.PublicKey `json:"signer"`
	TimeStamp int64           `json:"timeStamp"`
	Deadline  int64           `json:"deadline"`
	Fee       uint64          `json:"fee"`
}

// Common returns the header. Embedding CommonHeader makes every variant
// an Entity.
func (h *CommonHeader) Common() *CommonHeader { return h }

// Entity is a fully-populated logical transaction, ready for external
// encoding and signing. The concrete type determines the variant fields;
// each variant carries exactly the common header plus its own field set.
type Entity interface {
	Common() *CommonHeader
}

// Signer encodes an entity into its canonical byte form and signs it.
// Implementations (the reference serializer, hardware wallets) live
// outside this module.
type Signer interface {
	Sign(e Entity) (data, signature []byte, err error)
}

// Message types.
const (
	MessagePlain     = 1
	MessageEncrypted = 2
)

// Message is an optional transfer message with a hex-encoded payload.
type Message struct {
	Payload string `json:"payload"`
	Type    int    `json:"type"`
}

// Transfer moves XEM and optionally mosaics to a recipient.
// With mosaics attached, Amount acts as the quantity multiplier.
type Transfer struct {
	CommonHeader
	Recipient types.Address            `json:"recipient"`
	Amount    uint64                   `json:"amount"`
	Message   *Message                 `json:"message,omitempty"`
	Mosaics   []types.MosaicAttachment `json:"mosaics,omitempty"`
}

// ProvisionNamespace registers a root namespace or a sub-namespace part.
type ProvisionNamespace struct {
	CommonHeader
	RentalFeeSink types.Address `json:"rentalFeeSink"`
	RentalFee     uint64        `json:"rentalFee"`
	Parent        *string       `json:"parent"` // nil for a root namespace
	NewPart       string        `json:"newPart"`
}

// MosaicProperty is one stringified entry of a mosaic's property list.
type MosaicProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MosaicProperties are the typed definition properties of a new mosaic.
type MosaicProperties struct {
	Divisibility  uint32
	InitialSupply uint64
	SupplyMutable bool
	Transferable  bool
}

// List returns the stringified property list in its canonical order.
func (p MosaicProperties) List() []MosaicProperty {
	return []MosaicProperty{
		{Name: "divisibility", Value: strconv.FormatUint(uint64(p.Divisibility), 10)},
		{Name: "initialSupply", Value: strconv.FormatUint(p.InitialSupply, 10)},
		{Name: "supplyMutable", Value: strconv.FormatBool(p.SupplyMutable)},
		{Name: "transferable", Value: strconv.FormatBool(p.Transferable)},
	}
}

// MosaicDefinitionData is the definition substructure of a mosaic
// definition transaction.
type MosaicDefinitionData struct {
	Creator     types.PublicKey   `json:"creator"`
	ID          types.MosaicID    `json:"id"`
	Description string            `json:"description"`
	Properties  []MosaicProperty  `json:"properties"`
	Levy        *types.MosaicLevy `json:"levy,omitempty"`
}

// MosaicDefinition registers a new mosaic under an owned namespace.
type MosaicDefinition struct {
	CommonHeader
	CreationFeeSink types.Address        `json:"creationFeeSink"`
	CreationFee     uint64               `json:"creationFee"`
	Definition      MosaicDefinitionData `json:"mosaicDefinition"`
}

// Supply change directions.
const (
	SupplyIncrease = 1
	SupplyDecrease = 2
)

// MosaicSupplyChange adjusts the supply of an existing mosaic.
type MosaicSupplyChange struct {
	CommonHeader
	MosaicID   types.MosaicID `json:"mosaicId"`
	SupplyType int            `json:"supplyType"`
	Delta      uint64         `json:"delta"`
}

// Importance transfer modes.
const (
	ImportanceActivate   = 1
	ImportanceDeactivate = 2
)

// ImportanceTransfer delegates or revokes account importance to a remote
// harvesting account.
type ImportanceTransfer struct {
	CommonHeader
	Mode          int             `json:"mode"`
	RemoteAccount types.PublicKey `json:"remoteAccount"`
}
