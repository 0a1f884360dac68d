package types

import (
	"fmt"
	"strings"
)

// MosaicID identifies a mosaic by its namespace and name.
type MosaicID struct {
	NamespaceID string `json:"namespaceId"`
	Name        string `json:"name"`
}

// FullName returns the fully-qualified "namespace:name" form.
func (id MosaicID) FullName() string {
	return id.NamespaceID + ":" + id.Name
}

// ParseMosaicID parses a "namespace:name" string.
func ParseMosaicID(s string) (MosaicID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return MosaicID{}, fmt.Errorf("mosaic id must be namespace:name, got %q", s)
	}
	return MosaicID{NamespaceID: parts[0], Name: parts[1]}, nil
}

// MosaicAttachment attaches a quantity of a mosaic to a transfer.
// Quantity is in the mosaic's smallest unit.
type MosaicAttachment struct {
	MosaicID MosaicID `json:"mosaicId"`
	Quantity uint64   `json:"quantity"`
}

// MosaicInfo is a point-in-time snapshot of the mosaic state the fee
// calculation depends on. Supply is in whole units.
type MosaicInfo struct {
	ID           MosaicID          `json:"id"`
	Supply       uint64            `json:"supply"`
	Divisibility uint32            `json:"divisibility"`
	Properties   map[string]string `json:"properties,omitempty"`
}

// Levy types.
const (
	LevyAbsolute   = 1
	LevyPercentile = 2
)

// MosaicLevy describes an extra fee paid to a third party on every
// transfer of the mosaic.
type MosaicLevy struct {
	Type      int      `json:"type"`
	Recipient Address  `json:"recipient"`
	MosaicID  MosaicID `json:"mosaicId"`
	Fee       uint64   `json:"fee"`
}
