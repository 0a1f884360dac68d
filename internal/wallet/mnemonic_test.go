package wallet

import (
	"strings"
	"testing"
)

func TestGenerateMnemonic(t *testing.T) {
	first, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if n := len(strings.Fields(first)); n != 24 {
		t.Errorf("word count = %d, want 24", n)
	}
	if !ValidateMnemonic(first) {
		t.Error("generated mnemonic should validate")
	}

	second, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	if first == second {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestKeyMnemonicRoundtrip(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i * 7)
	}

	mnemonic, err := KeyToMnemonic(key)
	if err != nil {
		t.Fatalf("KeyToMnemonic() error: %v", err)
	}
	if len(strings.Fields(mnemonic)) != 24 {
		t.Errorf("word count = %d, want 24", len(strings.Fields(mnemonic)))
	}

	restored, err := MnemonicToKey(mnemonic)
	if err != nil {
		t.Fatalf("MnemonicToKey() error: %v", err)
	}
	if string(restored) != string(key) {
		t.Error("roundtrip did not reproduce the key")
	}
}

func TestKeyToMnemonic_BadSize(t *testing.T) {
	if _, err := KeyToMnemonic([]byte{1, 2, 3}); err == nil {
		t.Error("KeyToMnemonic() should reject a non-32-byte key")
	}
}

func TestMnemonicToKey_TwelveWords(t *testing.T) {
	// 12 words encode only 16 bytes of entropy, not a full key.
	m := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if _, err := MnemonicToKey(m); err == nil {
		t.Error("MnemonicToKey() should reject 12-word mnemonics")
	}
}

func TestValidateMnemonic(t *testing.T) {
	valid24 := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	valid12 := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	badChecksum := strings.Repeat("abandon ", 23) + "abandon"

	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{"24 words", valid24, true},
		{"12 words", valid12, true},
		{"empty", "", false},
		{"non-wordlist words", "not a valid mnemonic phrase at all", false},
		{"bad checksum", badChecksum, false},
		{"single word", "abandon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}
