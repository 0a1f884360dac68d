// Package wallet implements encrypted key storage. Each wallet file
// holds one private key, encrypted with a passphrase, plus its public
// metadata.
package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xemtech/xemwallet/pkg/crypto"
	"github.com/xemtech/xemwallet/pkg/types"
)

// KeySize is the private key length in bytes.
const KeySize = 32

// keystoreFile is the on-disk JSON format for an encrypted wallet.
type keystoreFile struct {
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	Account      Account   `json:"account"`
	EncryptedKey []byte    `json:"encrypted_key"`
}

// Keystore manages encrypted key storage on disk.
type Keystore struct {
	path string
}

// NewKeystore creates a keystore that reads/writes to the given directory.
// The directory is created if it doesn't exist.
func NewKeystore(path string) (*Keystore, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	return &Keystore{path: path}, nil
}

// walletPath returns the file path for a wallet by name.
func (ks *Keystore) walletPath(name string) string {
	return filepath.Join(ks.path, name+".wallet")
}

// Create encrypts a private key and writes a new wallet file. Fails if
// a wallet with that name already exists.
func (ks *Keystore) Create(name string, acct Account, key, password []byte, params EncryptionParams) error {
	if len(key) != KeySize {
		return fmt.Errorf("private key must be %d bytes, got %d", KeySize, len(key))
	}
	path := ks.walletPath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("wallet %q already exists", name)
	}

	encrypted, err := Encrypt(key, password, params)
	if err != nil {
		return fmt.Errorf("encrypt key: %w", err)
	}

	kf := keystoreFile{
		Version:      1,
		CreatedAt:    time.Now().UTC(),
		Account:      acct,
		EncryptedKey: encrypted,
	}

	return ks.writeFile(path, &kf)
}

// Load decrypts a wallet and returns the private key with its account
// metadata. Callers should zero the key when done.
func (ks *Keystore) Load(name string, password []byte) ([]byte, Account, error) {
	kf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return nil, Account{}, err
	}

	key, err := Decrypt(kf.EncryptedKey, password)
	if err != nil {
		return nil, Account{}, fmt.Errorf("decrypt wallet: %w", err)
	}
	if len(key) != KeySize {
		return nil, Account{}, fmt.Errorf("wallet %q holds a %d-byte key, want %d", name, len(key), KeySize)
	}

	return key, kf.Account, nil
}

// Info returns a wallet's account metadata without decrypting anything.
func (ks *Keystore) Info(name string) (Account, error) {
	kf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return Account{}, err
	}
	return kf.Account, nil
}

// Bind records the public key an external signer reported for a
// wallet's private key and derives the matching address. Key pairs are
// produced outside this module, so the association arrives after
// creation.
func (ks *Keystore) Bind(name string, pub types.PublicKey) error {
	if pub.IsZero() {
		return fmt.Errorf("public key must not be zero")
	}
	path := ks.walletPath(name)
	kf, err := ks.readFile(path)
	if err != nil {
		return err
	}
	kf.Account.PublicKey = pub
	kf.Account.Address = crypto.AddressFromPublicKey(pub, kf.Account.Network)
	return ks.writeFile(path, kf)
}

// Relabel updates a wallet's display label.
func (ks *Keystore) Relabel(name, label string) error {
	path := ks.walletPath(name)
	kf, err := ks.readFile(path)
	if err != nil {
		return err
	}
	kf.Account.Label = label
	return ks.writeFile(path, kf)
}

// List returns the names of all wallet files in the keystore.
func (ks *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.path)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext := filepath.Ext(name); ext == ".wallet" {
			names = append(names, name[:len(name)-len(ext)])
		}
	}
	return names, nil
}

// Delete removes a wallet file.
func (ks *Keystore) Delete(name string) error {
	path := ks.walletPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("wallet %q not found", name)
	}
	return os.Remove(path)
}

func (ks *Keystore) writeFile(path string, kf *keystoreFile) error {
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func (ks *Keystore) readFile(path string) (*keystoreFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	var kf keystoreFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if kf.Version != 1 {
		return nil, fmt.Errorf("unsupported wallet version: %d", kf.Version)
	}
	return &kf, nil
}
