package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics. 256
// bits of entropy map one-to-one onto a 32-byte private key, so a
// mnemonic is a complete key backup.
const MnemonicEntropyBits = 256

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// KeyToMnemonic encodes a 32-byte private key as a 24-word mnemonic.
func KeyToMnemonic(key []byte) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	mnemonic, err := bip39.NewMnemonic(key)
	if err != nil {
		return "", fmt.Errorf("encode key: %w", err)
	}
	return mnemonic, nil
}

// MnemonicToKey recovers the 32-byte private key from a 24-word
// mnemonic produced by KeyToMnemonic.
func MnemonicToKey(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("decode mnemonic: %w", err)
	}
	if len(entropy) != KeySize {
		return nil, fmt.Errorf("mnemonic encodes %d bytes, need %d (24 words)", len(entropy), KeySize)
	}
	return entropy, nil
}
