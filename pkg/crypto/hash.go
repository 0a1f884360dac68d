// Package crypto provides the hashing primitives behind address
// derivation and internal fingerprinting. Signing itself is out of this
// module's hands: finished transactions go to an external signer.
package crypto

import (
	"encoding/base32"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/xemtech/xemwallet/pkg/types"
)

// Fingerprint computes a BLAKE3-256 digest of the input data.
// Used for fixed-width cache and index keys, never for anything the
// network sees.
func Fingerprint(data []byte) types.Hash {
	return types.Hash(blake3.Sum256(data))
}

// Keccak256 computes the pre-FIPS Keccak-256 digest the chain uses for
// address derivation and checksums.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// AddressFromPublicKey derives the canonical address for a public key on
// the given network:
//
//	payload  = version(1) | RIPEMD160(Keccak256(pubkey))
//	checksum = Keccak256(payload)[:4]
//	address  = base32(payload | checksum)
//
// The result is always 40 upper-case base32 characters.
func AddressFromPublicKey(pub types.PublicKey, network types.Network) types.Address {
	keccak := Keccak256(pub[:])

	r := ripemd160.New()
	r.Write(keccak)

	payload := make([]byte, 0, 25)
	payload = append(payload, network.AddressVersion())
	payload = r.Sum(payload)

	checksum := Keccak256(payload)[:4]
	full := append(payload, checksum...)

	return types.Address(base32.StdEncoding.EncodeToString(full))
}

// ValidAddressChecksum reports whether an address decodes and carries a
// correct checksum for its embedded version byte.
func ValidAddressChecksum(a types.Address) bool {
	raw, err := base32.StdEncoding.DecodeString(string(a))
	if err != nil || len(raw) != 25 {
		return false
	}
	checksum := Keccak256(raw[:21])[:4]
	for i, b := range checksum {
		if raw[21+i] != b {
			return false
		}
	}
	return true
}
