package types

import (
	"fmt"
	"strings"
)

// AddressLength is the length of a canonical address in base32 characters.
const AddressLength = 40

// Address represents an account address in canonical form: upper-case
// base32 with no separators. Use NormalizeAddress for user-supplied input.
type Address string

// NormalizeAddress upper-cases an address string and strips dash
// separators, returning the canonical form used in transactions.
func NormalizeAddress(s string) Address {
	return Address(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "")))
}

// String returns the canonical address string.
func (a Address) String() string {
	return string(a)
}

// IsZero returns true for the empty address.
func (a Address) IsZero() bool {
	return a == ""
}

// Pretty returns the address with a dash every six characters, the
// conventional display form.
func (a Address) Pretty() string {
	s := string(a)
	var b strings.Builder
	for i := 0; i < len(s); i += 6 {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + 6
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// Valid reports whether the address has canonical length and alphabet.
func (a Address) Valid() bool {
	if len(a) != AddressLength {
		return false
	}
	for _, c := range a {
		if !((c >= 'A' && c <= 'Z') || (c >= '2' && c <= '7')) {
			return false
		}
	}
	return true
}

// ParseAddress normalizes and validates an address string.
func ParseAddress(s string) (Address, error) {
	a := NormalizeAddress(s)
	if a.IsZero() {
		return "", fmt.Errorf("empty address")
	}
	if !a.Valid() {
		return "", fmt.Errorf("invalid address %q", s)
	}
	return a, nil
}
