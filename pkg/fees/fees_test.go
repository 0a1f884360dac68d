package fees

import (
	"errors"
	"testing"

	"github.com/xemtech/xemwallet/pkg/types"
)

func TestMinimumTransferFee(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64 // µXEM
		want   uint64 // fee units
	}{
		{"zero", 0, 1},
		{"1.5 xem", 1_500_000, 1},
		{"just under one step", 9_999 * MicroXemPerXem, 1},
		{"one step", 10_000 * MicroXemPerXem, 1},
		{"two steps", 20_000 * MicroXemPerXem, 2},
		{"at cap", 250_000 * MicroXemPerXem, 25},
		{"over cap", 1_000_000 * MicroXemPerXem, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinimumTransferFee(tt.amount); got != tt.want {
				t.Errorf("MinimumTransferFee(%d) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestMessageFee(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    uint64
	}{
		{"empty", "", 0},
		{"one byte", "ab", 1},
		{"31 bytes", hexPayload(31), 1},
		{"32 bytes", hexPayload(32), 2},
		{"64 bytes", hexPayload(64), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageFee(tt.payload); got != tt.want {
				t.Errorf("MessageFee(%d hex chars) = %d, want %d", len(tt.payload), got, tt.want)
			}
		})
	}
}

// hexPayload returns a hex string encoding n bytes.
func hexPayload(n int) string {
	s := make([]byte, 2*n)
	for i := range s {
		s[i] = 'a'
	}
	return string(s)
}

func testRegistry() RegistryMap {
	return RegistryMap{
		"shop:points": {
			ID:           types.MosaicID{NamespaceID: "shop", Name: "points"},
			Supply:       5_000,
			Divisibility: 0,
		},
		// Mirrors the native currency: near-max total quantity, so the
		// supply adjustment vanishes.
		"nem:xem": {
			ID:           types.MosaicID{NamespaceID: "nem", Name: "xem"},
			Supply:       8_999_999_999,
			Divisibility: 6,
		},
		// 9e9 total quantity: adjustment = floor(0.8·ln(1e6)) = 11.
		"acme:coupon": {
			ID:           types.MosaicID{NamespaceID: "acme", Name: "coupon"},
			Supply:       9_000_000,
			Divisibility: 3,
		},
	}
}

func TestMosaicTransferFee(t *testing.T) {
	registry := testRegistry()
	xeMultiplier := uint64(MicroXemPerXem) // ×1

	tests := []struct {
		name        string
		attachments []types.MosaicAttachment
		want        uint64
	}{
		{
			"small business",
			[]types.MosaicAttachment{att("shop", "points", 10)},
			1,
		},
		{
			// 150000 XEM equivalent: the raw float comes out at
			// 149999.99999999997 and must be ceiled to 150000.
			"ceiling workaround",
			[]types.MosaicAttachment{att("nem", "xem", 150_000 * MicroXemPerXem)},
			15,
		},
		{
			// Tiny quantity: raw fee 1, adjustment 11, floor at 1.
			"adjustment floored at one",
			[]types.MosaicAttachment{att("acme", "coupon", 1_000)},
			1,
		},
		{
			// 500000 whole units ≈ 5e8 XEM equivalent: raw fee capped at
			// 25, minus adjustment 11.
			"adjustment applied",
			[]types.MosaicAttachment{att("acme", "coupon", 500_000_000)},
			14,
		},
		{
			"sum across attachments",
			[]types.MosaicAttachment{
				att("shop", "points", 10),
				att("acme", "coupon", 500_000_000),
			},
			15,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MosaicTransferFee(xeMultiplier, registry, tt.attachments)
			if err != nil {
				t.Fatalf("MosaicTransferFee: %v", err)
			}
			if got != tt.want {
				t.Errorf("MosaicTransferFee = %d, want %d", got, tt.want)
			}
			if got < 1 {
				t.Errorf("MosaicTransferFee = %d, must be >= 1", got)
			}
		})
	}
}

func TestMosaicTransferFee_UnknownMosaic(t *testing.T) {
	registry := testRegistry()
	attachments := []types.MosaicAttachment{
		att("shop", "points", 10),
		att("nowhere", "nothing", 1),
	}
	_, err := MosaicTransferFee(MicroXemPerXem, registry, attachments)
	if !errors.Is(err, ErrUnknownMosaic) {
		t.Fatalf("expected ErrUnknownMosaic, got %v", err)
	}
}

func TestMosaicTransferFee_Overflow(t *testing.T) {
	registry := RegistryMap{
		"big:huge": {
			ID:           types.MosaicID{NamespaceID: "big", Name: "huge"},
			Supply:       MaxMosaicQuantity,
			Divisibility: 6,
		},
	}
	_, err := MosaicTransferFee(MicroXemPerXem, registry, []types.MosaicAttachment{att("big", "huge", 1)})
	if !errors.Is(err, ErrFeeOverflow) {
		t.Fatalf("expected ErrFeeOverflow, got %v", err)
	}
}

func TestMultisigModificationFee(t *testing.T) {
	tests := []struct {
		mods     int
		minDelta bool
		want     uint64
	}{
		{1, false, 16},
		{2, false, 22},
		{2, true, 28},
		{0, true, 16},
	}
	for _, tt := range tests {
		if got := MultisigModificationFee(tt.mods, tt.minDelta); got != tt.want {
			t.Errorf("MultisigModificationFee(%d, %v) = %d, want %d", tt.mods, tt.minDelta, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	if got := Scale(3); got != 150_000 {
		t.Errorf("Scale(3) = %d, want 150000", got)
	}
}

func att(ns, name string, quantity uint64) types.MosaicAttachment {
	return types.MosaicAttachment{
		MosaicID: types.MosaicID{NamespaceID: ns, Name: name},
		Quantity: quantity,
	}
}
