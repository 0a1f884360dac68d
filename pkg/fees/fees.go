// Package fees implements the network's deterministic minimum-fee rules.
// Every function is pure: fees depend only on their inputs and the
// constant table below, never on wall-clock time or network state.
package fees

import (
	"errors"
	"fmt"
	"math"

	"github.com/xemtech/xemwallet/pkg/types"
)

var (
	// ErrUnknownMosaic is returned when an attachment references a mosaic
	// absent from the registry snapshot. The whole fee computation aborts;
	// a transfer fee is never partially computed.
	ErrUnknownMosaic = errors.New("unknown mosaic")

	// ErrFeeOverflow indicates mosaic state that cannot be represented in
	// the fee arithmetic. Valid network state never triggers it.
	ErrFeeOverflow = errors.New("fee computation overflow")
)

// Network-wide fee constants. Everything fee-related is sourced from this
// one table so the builder and the calculator cannot drift apart.
const (
	// MicroXemPerXem is the number of µXEM in one XEM.
	MicroXemPerXem = 1_000_000

	// FeeUnit is the smallest fee step, in µXEM (0.05 XEM). All unit
	// counts below are multiplied by this before landing in a
	// transaction's fee field.
	FeeUnit uint64 = 50_000

	// feeCap caps the value-scaled minimum transfer fee, in fee units.
	feeCap = 25

	// MaxMosaicQuantity is the largest representable total mosaic
	// quantity (supply × 10^divisibility).
	MaxMosaicQuantity uint64 = 9_000_000_000_000_000

	// xemTotalSupply is the XEM supply in whole XEM, used to express
	// mosaic quantities as their XEM equivalent.
	xemTotalSupply = 8_999_999_999

	// Mosaics with at most this supply and zero divisibility pay the flat
	// small-business fee instead of the supply-scaled one.
	smallBusinessSupplyLimit = 10_000
	smallBusinessFee         = 1
)

// Structural fees, in fee units.
const (
	// NamespaceMosaicCommonFee covers namespace provisioning, mosaic
	// definition and mosaic supply changes.
	NamespaceMosaicCommonFee uint64 = 3

	// ImportanceTransferFee covers importance delegation transactions.
	ImportanceTransferFee uint64 = 3

	// CosignatureFee covers multisig signature transactions.
	CosignatureFee uint64 = 2 * 3

	// MultisigWrapperFee covers the outer multisig envelope.
	MultisigWrapperFee uint64 = 2 * 3

	multisigModificationBase    = 10
	multisigModificationPerMod  = 6
	multisigMinCosignatoriesFee = 6
)

// Rental fees, in µXEM. Paid to the network sink accounts on top of the
// transaction fee.
const (
	RootNamespaceRentalFee    uint64 = 100 * MicroXemPerXem
	SubNamespaceRentalFee     uint64 = 10 * MicroXemPerXem
	MosaicDefinitionRentalFee uint64 = 10 * MicroXemPerXem
)

// Scale converts fee units to µXEM.
func Scale(units uint64) uint64 {
	return units * FeeUnit
}

// MosaicRegistry resolves mosaic state snapshots by ID. Get reports
// explicitly whether the mosaic is known; implementations must never
// substitute defaults for missing entries.
type MosaicRegistry interface {
	Get(id types.MosaicID) (types.MosaicInfo, bool)
}

// RegistryMap is an in-memory MosaicRegistry keyed by full mosaic name.
type RegistryMap map[string]types.MosaicInfo

// Get looks up a mosaic snapshot by ID.
func (m RegistryMap) Get(id types.MosaicID) (types.MosaicInfo, bool) {
	info, ok := m[id.FullName()]
	return info, ok
}

// MinimumTransferFee returns the value-scaled minimum fee, in fee units,
// for transferring amount µXEM: one unit per 10000 XEM, at least 1,
// capped at 25.
func MinimumTransferFee(amount uint64) uint64 {
	return minimumFeeFromXem(amount / MicroXemPerXem)
}

func minimumFeeFromXem(xem uint64) uint64 {
	fee := xem / 10_000
	if fee < 1 {
		fee = 1
	}
	if fee > feeCap {
		fee = feeCap
	}
	return fee
}

// MessageFee returns the fee, in fee units, for a hex-encoded message
// payload: one base unit plus one per full 32 bytes. Empty payloads are
// free.
func MessageFee(payloadHex string) uint64 {
	if len(payloadHex) == 0 {
		return 0
	}
	return uint64(len(payloadHex))/2/32 + 1
}

// MultisigModificationFee returns the fee, in fee units, for a multisig
// aggregate modification with the given modification count, plus an
// increment when a minimum-cosignatories change rides along.
func MultisigModificationFee(modifications int, hasMinChange bool) uint64 {
	fee := uint64(multisigModificationBase + multisigModificationPerMod*modifications)
	if hasMinChange {
		fee += multisigMinCosignatoriesFee
	}
	return fee
}

// MosaicTransferFee returns the fee, in fee units, for transferring the
// given mosaic attachments at the given multiplier (the transfer's amount
// field, in µXEM). Each attachment contributes at least one unit; the
// total is at least one unit. An attachment referencing a mosaic missing
// from the registry aborts the whole computation with ErrUnknownMosaic.
func MosaicTransferFee(multiplier uint64, registry MosaicRegistry, attachments []types.MosaicAttachment) (uint64, error) {
	var total uint64
	for _, att := range attachments {
		info, ok := registry.Get(att.MosaicID)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownMosaic, att.MosaicID.FullName())
		}
		fee, err := attachmentFee(multiplier, info, att.Quantity)
		if err != nil {
			return 0, err
		}
		total += fee
	}
	if total < 1 {
		total = 1
	}
	return total, nil
}

// attachmentFee computes one attachment's contribution, in fee units.
func attachmentFee(multiplier uint64, info types.MosaicInfo, quantity uint64) (uint64, error) {
	if info.Supply <= smallBusinessSupplyLimit && info.Divisibility == 0 {
		return smallBusinessFee, nil
	}

	pow := uint64(1)
	for i := uint32(0); i < info.Divisibility; i++ {
		if pow > MaxMosaicQuantity/10 {
			return 0, fmt.Errorf("%w: divisibility %d", ErrFeeOverflow, info.Divisibility)
		}
		pow *= 10
	}
	if info.Supply != 0 && info.Supply > MaxMosaicQuantity/pow {
		return 0, fmt.Errorf("%w: total quantity of %s", ErrFeeOverflow, info.ID.FullName())
	}
	totalQuantity := info.Supply * pow
	if totalQuantity == 0 {
		return smallBusinessFee, nil
	}

	adjustment := int64(math.Floor(0.8 * math.Log(float64(MaxMosaicQuantity)/float64(totalQuantity))))

	// The float division can land a hair under the true XEM equivalent
	// (150000 XEM comes out as 149999.99999999997), so round up before
	// applying the minimum-fee rule. Nodes compute fees the same way;
	// do not "fix" this.
	xemEquivalent := math.Ceil(float64(xemTotalSupply) * float64(quantity) * float64(multiplier) /
		float64(totalQuantity) / float64(MicroXemPerXem))

	fee := int64(minimumFeeFromXem(uint64(xemEquivalent))) - adjustment
	if fee < 1 {
		fee = 1
	}
	return uint64(fee), nil
}
