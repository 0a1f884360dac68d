package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PublicKeySize is the length of an account public key in bytes.
const PublicKeySize = 32

// PublicKey represents a 256-bit account public key.
type PublicKey [PublicKeySize]byte

// IsZero returns true if the key is all zeros.
func (p PublicKey) IsZero() bool {
	return p == PublicKey{}
}

// String returns the hex-encoded key.
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// Bytes returns a copy of the key as a byte slice.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, p[:])
	return b
}

// MarshalJSON encodes the key as a hex string.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a hex string into a public key.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = PublicKey{}
		return nil
	}
	parsed, err := HexToPublicKey(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// HexToPublicKey converts a hex string to a PublicKey.
// Returns an error if the string is not exactly 64 hex characters.
func HexToPublicKey(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	var p PublicKey
	copy(p[:], b)
	return p, nil
}
