package tx

import (
	"fmt"
	"sort"

	"github.com/xemtech/xemwallet/pkg/fees"
	"github.com/xemtech/xemwallet/pkg/types"
)

// Cosignatory modification operations.
const (
	ModificationAdd    = 1
	ModificationRemove = 2
)

// CosignatoryModification adds or removes one cosignatory.
type CosignatoryModification struct {
	ModificationType   int             `json:"modificationType"`
	CosignatoryAccount types.PublicKey `json:"cosignatoryAccount"`
}

// MinCosignatories is the relative minimum-signatures change of a
// multisig modification.
type MinCosignatories struct {
	RelativeChange int `json:"relativeChange"`
}

// MultisigModification changes the cosignatory set or the
// minimum-signatures threshold of a multisig account.
type MultisigModification struct {
	CommonHeader
	Modifications    []CosignatoryModification `json:"modifications"`
	MinCosignatories *MinCosignatories         `json:"minCosignatories,omitempty"`
}

// HashRef wraps a transaction hash the way announce payloads expect it.
type HashRef struct {
	Data types.Hash `json:"data"`
}

// MultisigSignature co-signs a pending multisig transaction.
type MultisigSignature struct {
	CommonHeader
	OtherHash    HashRef       `json:"otherHash"`
	OtherAccount types.Address `json:"otherAccount"`
}

// Multisig is the envelope wrapping an inner transaction issued on
// behalf of a multisig account. Created once at the end of assembly and
// never mutated afterwards.
type Multisig struct {
	CommonHeader
	OtherTrans Entity `json:"otherTrans"`
}

// wrap puts inner into a multisig envelope cosigned by cosigner. The
// caller passes the same timestamp snapshot used for the inner header so
// the two deadlines cannot drift.
func (b *Builder) wrap(now int64, cosigner types.PublicKey, inner Entity) *Multisig {
	return &Multisig{
		CommonHeader: b.header(TypeMultisig, schemaV1, cosigner, now, fees.Scale(fees.MultisigWrapperFee)),
		OtherTrans:   inner,
	}
}

// sortModifications orders a modification list into its canonical total
// order: non-decreasing by operation, ties broken by the cosignatory's
// address on the builder's network. Independently built proposals must
// serialize identically, so this order is mandatory.
func (b *Builder) sortModifications(mods []CosignatoryModification) {
	addrs := make(map[types.PublicKey]types.Address, len(mods))
	addr := func(pub types.PublicKey) types.Address {
		a, ok := addrs[pub]
		if !ok {
			a = b.codec.ToAddress(pub, b.network)
			addrs[pub] = a
		}
		return a
	}
	sort.SliceStable(mods, func(i, j int) bool {
		if mods[i].ModificationType != mods[j].ModificationType {
			return mods[i].ModificationType < mods[j].ModificationType
		}
		return addr(mods[i].CosignatoryAccount) < addr(mods[j].CosignatoryAccount)
	})
}

// validateModifications rejects empty operations and duplicate keys.
func validateModifications(mods []CosignatoryModification) error {
	seen := make(map[types.PublicKey]struct{}, len(mods))
	for i, m := range mods {
		if m.ModificationType != ModificationAdd && m.ModificationType != ModificationRemove {
			return fmt.Errorf("%w: modification %d has unknown type %d", ErrInvalidIntent, i, m.ModificationType)
		}
		if m.CosignatoryAccount.IsZero() {
			return fmt.Errorf("%w: modification %d has empty cosignatory key", ErrInvalidIntent, i)
		}
		if _, dup := seen[m.CosignatoryAccount]; dup {
			return fmt.Errorf("%w: duplicate cosignatory %s", ErrInvalidIntent, m.CosignatoryAccount)
		}
		seen[m.CosignatoryAccount] = struct{}{}
	}
	return nil
}
