package tx

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/xemtech/xemwallet/pkg/crypto"
	"github.com/xemtech/xemwallet/pkg/fees"
	"github.com/xemtech/xemwallet/pkg/types"
)

// ErrInvalidIntent is returned when an intent cannot form a valid
// transaction: missing required fields, zero amounts, duplicate
// cosignatories. Surfaced before any network interaction.
var ErrInvalidIntent = errors.New("invalid intent")

// Schema versions OR-ed into the version tag. Version 2 marks variants
// carrying optional structured fields (mosaic attachments, a
// minimum-cosignatories change).
const (
	schemaV1 uint32 = 1
	schemaV2 uint32 = 2
)

// AddressCodec derives the canonical address for a public key. The
// builder needs it only to order cosignatory modifications; addresses
// are never stored.
type AddressCodec interface {
	ToAddress(pub types.PublicKey, network types.Network) types.Address
}

// keccakCodec is the default codec, backed by the chain's Keccak/RIPEMD
// address derivation.
type keccakCodec struct{}

func (keccakCodec) ToAddress(pub types.PublicKey, network types.Network) types.Address {
	return crypto.AddressFromPublicKey(pub, network)
}

// Signing says who signs what. Signer is the key that will sign the
// announced entity. When Multisig is set, the intent is issued on behalf
// of that multisig account: it becomes the logical signer of the inner
// transaction and Signer cosigns the wrapping envelope.
type Signing struct {
	Signer   types.PublicKey
	Multisig *types.PublicKey
}

// logical returns the public key recorded as the inner transaction's
// signer.
func (s Signing) logical() types.PublicKey {
	if s.Multisig != nil {
		return *s.Multisig
	}
	return s.Signer
}

func (s Signing) validate() error {
	if s.Signer.IsZero() {
		return fmt.Errorf("%w: empty signer key", ErrInvalidIntent)
	}
	if s.Multisig != nil && s.Multisig.IsZero() {
		return fmt.Errorf("%w: empty multisig account key", ErrInvalidIntent)
	}
	return nil
}

// Builder assembles logical transactions for one network. It holds no
// mutable state and is safe for concurrent use; every build method takes
// the current network time in seconds, injected by the caller.
type Builder struct {
	network types.Network
	codec   AddressCodec
}

// NewBuilder creates a builder for the given network.
func NewBuilder(network types.Network) *Builder {
	return &Builder{network: network, codec: keccakCodec{}}
}

// WithAddressCodec overrides the codec used for modification sort keys.
func (b *Builder) WithAddressCodec(codec AddressCodec) *Builder {
	b.codec = codec
	return b
}

// Network returns the network the builder targets.
func (b *Builder) Network() types.Network {
	return b.network
}

// header builds the common header for one timestamp snapshot. The
// deadline is always now + dueMinutes·60; nodes reject anything else.
func (b *Builder) header(t TxType, schema uint32, signer types.PublicKey, now int64, fee uint64) CommonHeader {
	return CommonHeader{
		Type:      t,
		Version:   b.network.VersionPrefix() | schema,
		Signer:    signer,
		TimeStamp: now,
		Deadline:  now + b.network.DueMinutes()*60,
		Fee:       fee,
	}
}

// finish wraps the inner entity in a multisig envelope when the intent
// was issued on behalf of a multisig account. Both headers derive from
// the same now snapshot.
func (b *Builder) finish(now int64, s Signing, inner Entity) Entity {
	if s.Multisig == nil {
		return inner
	}
	return b.wrap(now, s.Signer, inner)
}

// TransferIntent describes a funds transfer, optionally carrying a
// hex-encoded message and mosaic attachments. With attachments present,
// Amount acts as the quantity multiplier.
type TransferIntent struct {
	Signing
	Recipient      string // any display form; normalized during build
	Amount         uint64 // µXEM
	MessagePayload string // hex; empty for no message
	Mosaics        []types.MosaicAttachment
}

// Transfer builds a transfer transaction. The registry snapshot is
// consulted only when mosaics are attached; an unknown mosaic aborts the
// construction.
func (b *Builder) Transfer(now int64, in TransferIntent, registry fees.MosaicRegistry) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	recipient, err := types.ParseAddress(in.Recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: recipient: %v", ErrInvalidIntent, err)
	}
	if in.Amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidIntent)
	}
	if in.MessagePayload != "" {
		if _, err := hex.DecodeString(in.MessagePayload); err != nil {
			return nil, fmt.Errorf("%w: message payload is not hex: %v", ErrInvalidIntent, err)
		}
	}

	schema := schemaV1
	var units uint64
	if len(in.Mosaics) > 0 {
		schema = schemaV2
		units, err = fees.MosaicTransferFee(in.Amount, registry, in.Mosaics)
		if err != nil {
			return nil, err
		}
	} else {
		units = fees.MinimumTransferFee(in.Amount)
	}
	units += fees.MessageFee(in.MessagePayload)

	t := &Transfer{
		CommonHeader: b.header(TypeTransfer, schema, in.logical(), now, fees.Scale(units)),
		Recipient:    recipient,
		Amount:       in.Amount,
		Mosaics:      in.Mosaics,
	}
	if in.MessagePayload != "" {
		t.Message = &Message{Payload: in.MessagePayload, Type: MessagePlain}
	}
	return b.finish(now, in.Signing, t), nil
}

// ProvisionNamespaceIntent registers a namespace part. An empty Parent
// means a root namespace.
type ProvisionNamespaceIntent struct {
	Signing
	Parent  string
	NewPart string
}

// ProvisionNamespace builds a namespace registration. Sub-namespaces
// rent cheaper than roots.
func (b *Builder) ProvisionNamespace(now int64, in ProvisionNamespaceIntent) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.NewPart) == "" {
		return nil, fmt.Errorf("%w: empty namespace part", ErrInvalidIntent)
	}

	rental := fees.RootNamespaceRentalFee
	var parent *string
	if in.Parent != "" {
		rental = fees.SubNamespaceRentalFee
		p := in.Parent
		parent = &p
	}

	e := &ProvisionNamespace{
		CommonHeader:  b.header(TypeProvisionNamespace, schemaV1, in.logical(), now, fees.Scale(fees.NamespaceMosaicCommonFee)),
		RentalFeeSink: b.network.NamespaceSink(),
		RentalFee:     rental,
		Parent:        parent,
		NewPart:       in.NewPart,
	}
	return b.finish(now, in.Signing, e), nil
}

// MosaicDefinitionIntent defines a new mosaic under an owned namespace.
type MosaicDefinitionIntent struct {
	Signing
	ID          types.MosaicID
	Description string
	Properties  MosaicProperties
	Levy        *types.MosaicLevy
}

// MosaicDefinition builds a mosaic definition transaction. The levy
// substructure is included only when the intent sets one.
func (b *Builder) MosaicDefinition(now int64, in MosaicDefinitionIntent) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ID.NamespaceID) == "" {
		return nil, fmt.Errorf("%w: empty namespace id", ErrInvalidIntent)
	}
	if strings.TrimSpace(in.ID.Name) == "" {
		return nil, fmt.Errorf("%w: empty mosaic name", ErrInvalidIntent)
	}

	e := &MosaicDefinition{
		CommonHeader:    b.header(TypeMosaicDefinition, schemaV1, in.logical(), now, fees.Scale(fees.NamespaceMosaicCommonFee)),
		CreationFeeSink: b.network.MosaicSink(),
		CreationFee:     fees.MosaicDefinitionRentalFee,
		Definition: MosaicDefinitionData{
			Creator:     in.logical(),
			ID:          in.ID,
			Description: in.Description,
			Properties:  in.Properties.List(),
			Levy:        in.Levy,
		},
	}
	return b.finish(now, in.Signing, e), nil
}

// SupplyChangeIntent resupplies or shrinks an existing mosaic.
type SupplyChangeIntent struct {
	Signing
	MosaicID  types.MosaicID
	Direction int // SupplyIncrease or SupplyDecrease
	Delta     uint64
}

// SupplyChange builds a mosaic supply change transaction.
func (b *Builder) SupplyChange(now int64, in SupplyChangeIntent) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	if in.MosaicID.NamespaceID == "" || in.MosaicID.Name == "" {
		return nil, fmt.Errorf("%w: empty mosaic id", ErrInvalidIntent)
	}
	if in.Direction != SupplyIncrease && in.Direction != SupplyDecrease {
		return nil, fmt.Errorf("%w: unknown supply direction %d", ErrInvalidIntent, in.Direction)
	}
	if in.Delta == 0 {
		return nil, fmt.Errorf("%w: supply delta must be positive", ErrInvalidIntent)
	}

	e := &MosaicSupplyChange{
		CommonHeader: b.header(TypeMosaicSupplyChange, schemaV1, in.logical(), now, fees.Scale(fees.NamespaceMosaicCommonFee)),
		MosaicID:     in.MosaicID,
		SupplyType:   in.Direction,
		Delta:        in.Delta,
	}
	return b.finish(now, in.Signing, e), nil
}

// ImportanceTransferIntent delegates importance to a remote harvesting
// account, or takes it back.
type ImportanceTransferIntent struct {
	Signing
	Mode          int // ImportanceActivate or ImportanceDeactivate
	RemoteAccount types.PublicKey
}

// ImportanceTransfer builds an importance delegation transaction.
func (b *Builder) ImportanceTransfer(now int64, in ImportanceTransferIntent) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	if in.Mode != ImportanceActivate && in.Mode != ImportanceDeactivate {
		return nil, fmt.Errorf("%w: unknown importance mode %d", ErrInvalidIntent, in.Mode)
	}
	if in.RemoteAccount.IsZero() {
		return nil, fmt.Errorf("%w: empty remote account key", ErrInvalidIntent)
	}

	e := &ImportanceTransfer{
		CommonHeader:  b.header(TypeImportanceTransfer, schemaV1, in.logical(), now, fees.Scale(fees.ImportanceTransferFee)),
		Mode:          in.Mode,
		RemoteAccount: in.RemoteAccount,
	}
	return b.finish(now, in.Signing, e), nil
}

// MultisigModificationIntent changes a multisig account's cosignatory
// set and optionally its minimum-signatures threshold (RelativeChange
// nil means no threshold change).
type MultisigModificationIntent struct {
	Signing
	Modifications  []CosignatoryModification
	RelativeChange *int
}

// MultisigModification builds a multisig aggregate modification. The
// modification list is copied and, when it has more than one element,
// sorted into the canonical order so that independently built proposals
// hash identically.
func (b *Builder) MultisigModification(now int64, in MultisigModificationIntent) (Entity, error) {
	if err := in.Signing.validate(); err != nil {
		return nil, err
	}
	if len(in.Modifications) == 0 && in.RelativeChange == nil {
		return nil, fmt.Errorf("%w: no modifications and no threshold change", ErrInvalidIntent)
	}
	if err := validateModifications(in.Modifications); err != nil {
		return nil, err
	}

	mods := make([]CosignatoryModification, len(in.Modifications))
	copy(mods, in.Modifications)
	if len(mods) > 1 {
		b.sortModifications(mods)
	}

	schema := schemaV1
	var minc *MinCosignatories
	if in.RelativeChange != nil {
		schema = schemaV2
		minc = &MinCosignatories{RelativeChange: *in.RelativeChange}
	}

	units := fees.MultisigModificationFee(len(mods), in.RelativeChange != nil)
	e := &MultisigModification{
		CommonHeader:     b.header(TypeMultisigModification, schema, in.logical(), now, fees.Scale(units)),
		Modifications:    mods,
		MinCosignatories: minc,
	}
	return b.finish(now, in.Signing, e), nil
}

// CosignatureIntent co-signs a pending transaction of a multisig
// account the signer is a cosignatory of.
type CosignatureIntent struct {
	Signer          types.PublicKey
	MultisigAccount string // address of the multisig account
	TransactionHash types.Hash
}

// Cosignature builds a multisig signature transaction. It is announced
// standalone and never wrapped.
func (b *Builder) Cosignature(now int64, in CosignatureIntent) (Entity, error) {
	if in.Signer.IsZero() {
		return nil, fmt.Errorf("%w: empty signer key", ErrInvalidIntent)
	}
	addr, err := types.ParseAddress(in.MultisigAccount)
	if err != nil {
		return nil, fmt.Errorf("%w: multisig account: %v", ErrInvalidIntent, err)
	}
	if in.TransactionHash.IsZero() {
		return nil, fmt.Errorf("%w: empty transaction hash", ErrInvalidIntent)
	}

	return &MultisigSignature{
		CommonHeader: b.header(TypeMultisigSignature, schemaV1, in.Signer, now, fees.Scale(fees.CosignatureFee)),
		OtherHash:    HashRef{Data: in.TransactionHash},
		OtherAccount: addr,
	}, nil
}
