package tx

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/xemtech/xemwallet/pkg/fees"
	"github.com/xemtech/xemwallet/pkg/types"
)

const testNow = int64(9_000_000)

func testKey(b byte) types.PublicKey {
	var p types.PublicKey
	p[0] = b
	p[31] = b
	return p
}

// A syntactically valid testnet-shaped recipient for builder tests.
const testRecipient = "TBX7XZ2BHO5XEUFH32RWJJNPOOP4FK7MT2345A6C"

func testRegistry() fees.RegistryMap {
	return fees.RegistryMap{
		"shop:points": {
			ID:           types.MosaicID{NamespaceID: "shop", Name: "points"},
			Supply:       5_000,
			Divisibility: 0,
		},
	}
}

func TestTransfer_PlainFee(t *testing.T) {
	b := NewBuilder(types.Testnet)
	e, err := b.Transfer(testNow, TransferIntent{
		Signing:   Signing{Signer: testKey(1)},
		Recipient: testRecipient,
		Amount:    1_500_000, // 1.5 XEM
	}, nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	tr, ok := e.(*Transfer)
	if !ok {
		t.Fatalf("expected *Transfer, got %T", e)
	}
	if tr.Fee != 50_000 {
		t.Errorf("fee = %d, want 50000 (one fee unit)", tr.Fee)
	}
	if tr.Deadline != testNow+3600 {
		t.Errorf("deadline = %d, want timestamp+3600 on testnet", tr.Deadline)
	}
	if tr.TimeStamp != testNow {
		t.Errorf("timestamp = %d, want %d", tr.TimeStamp, testNow)
	}
	if tr.Version != 0x98000001 {
		t.Errorf("version = %#x, want 0x98000001", tr.Version)
	}
	if tr.Type != TypeTransfer {
		t.Errorf("type = %#x, want %#x", tr.Type, TypeTransfer)
	}
	if tr.Message != nil {
		t.Error("no payload given, message must be absent")
	}
	if tr.Mosaics != nil {
		t.Error("no attachments given, mosaics must be absent")
	}
}

func TestTransfer_RecipientNormalized(t *testing.T) {
	b := NewBuilder(types.Testnet)
	pretty := "tbx7xz-2bho5x-eufh32-rwjjnp-oop4fk-7mt234-5a6c"
	e, err := b.Transfer(testNow, TransferIntent{
		Signing:   Signing{Signer: testKey(1)},
		Recipient: pretty,
		Amount:    1,
	}, nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if got := e.(*Transfer).Recipient; got != types.Address(testRecipient) {
		t.Errorf("recipient = %q, want normalized %q", got, testRecipient)
	}
}

func TestTransfer_MessageFee(t *testing.T) {
	b := NewBuilder(types.Testnet)
	payload := "48656c6c6f" // 5 bytes
	e, err := b.Transfer(testNow, TransferIntent{
		Signing:        Signing{Signer: testKey(1)},
		Recipient:      testRecipient,
		Amount:         1_500_000,
		MessagePayload: payload,
	}, nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	tr := e.(*Transfer)
	if tr.Fee != 100_000 {
		t.Errorf("fee = %d, want 100000 (minimum + one message unit)", tr.Fee)
	}
	if tr.Message == nil || tr.Message.Payload != payload || tr.Message.Type != MessagePlain {
		t.Errorf("message = %+v, want plain payload %q", tr.Message, payload)
	}
}

func TestTransfer_Mosaics(t *testing.T) {
	b := NewBuilder(types.Testnet)
	e, err := b.Transfer(testNow, TransferIntent{
		Signing:   Signing{Signer: testKey(1)},
		Recipient: testRecipient,
		Amount:    1_000_000, // multiplier ×1
		Mosaics: []types.MosaicAttachment{
			{MosaicID: types.MosaicID{NamespaceID: "shop", Name: "points"}, Quantity: 10},
		},
	}, testRegistry())
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	tr := e.(*Transfer)
	if tr.Version != 0x98000002 {
		t.Errorf("version = %#x, want schema 2 with attachments", tr.Version)
	}
	// Small-business mosaic: exactly one fee unit.
	if tr.Fee != 50_000 {
		t.Errorf("fee = %d, want 50000", tr.Fee)
	}
	if len(tr.Mosaics) != 1 {
		t.Fatalf("mosaics = %d, want 1", len(tr.Mosaics))
	}
}

func TestTransfer_UnknownMosaicAborts(t *testing.T) {
	b := NewBuilder(types.Testnet)
	_, err := b.Transfer(testNow, TransferIntent{
		Signing:   Signing{Signer: testKey(1)},
		Recipient: testRecipient,
		Amount:    1_000_000,
		Mosaics: []types.MosaicAttachment{
			{MosaicID: types.MosaicID{NamespaceID: "no", Name: "such"}, Quantity: 1},
		},
	}, testRegistry())
	if !errors.Is(err, fees.ErrUnknownMosaic) {
		t.Fatalf("expected ErrUnknownMosaic, got %v", err)
	}
}

func TestTransfer_InvalidIntent(t *testing.T) {
	b := NewBuilder(types.Testnet)
	tests := []struct {
		name   string
		intent TransferIntent
	}{
		{"zero amount", TransferIntent{Signing: Signing{Signer: testKey(1)}, Recipient: testRecipient}},
		{"empty recipient", TransferIntent{Signing: Signing{Signer: testKey(1)}, Amount: 1}},
		{"bad recipient", TransferIntent{Signing: Signing{Signer: testKey(1)}, Recipient: "not-an-address", Amount: 1}},
		{"empty signer", TransferIntent{Recipient: testRecipient, Amount: 1}},
		{"odd hex message", TransferIntent{Signing: Signing{Signer: testKey(1)}, Recipient: testRecipient, Amount: 1, MessagePayload: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Transfer(testNow, tt.intent, nil); !errors.Is(err, ErrInvalidIntent) {
				t.Errorf("expected ErrInvalidIntent, got %v", err)
			}
		})
	}
}

func TestVersionPrefixPerNetwork(t *testing.T) {
	tests := []struct {
		network  types.Network
		highByte uint32
		due      int64
	}{
		{types.Mainnet, 0x68, 1440 * 60},
		{types.Testnet, 0x98, 60 * 60},
		{types.Mijin, 0x60, 1440 * 60},
	}
	for _, tt := range tests {
		t.Run(tt.network.String(), func(t *testing.T) {
			b := NewBuilder(tt.network)
			e, err := b.ImportanceTransfer(testNow, ImportanceTransferIntent{
				Signing:       Signing{Signer: testKey(1)},
				Mode:          ImportanceActivate,
				RemoteAccount: testKey(2),
			})
			if err != nil {
				t.Fatalf("ImportanceTransfer: %v", err)
			}
			h := e.Common()
			if h.Version>>24 != tt.highByte {
				t.Errorf("version high byte = %#x, want %#x", h.Version>>24, tt.highByte)
			}
			if h.Deadline-h.TimeStamp != tt.due {
				t.Errorf("deadline-timestamp = %d, want %d", h.Deadline-h.TimeStamp, tt.due)
			}
		})
	}
}

func TestProvisionNamespace(t *testing.T) {
	b := NewBuilder(types.Testnet)

	root, err := b.ProvisionNamespace(testNow, ProvisionNamespaceIntent{
		Signing: Signing{Signer: testKey(1)},
		NewPart: "acme",
	})
	if err != nil {
		t.Fatalf("ProvisionNamespace(root): %v", err)
	}
	pn := root.(*ProvisionNamespace)
	if pn.RentalFee != fees.RootNamespaceRentalFee {
		t.Errorf("root rental = %d, want %d", pn.RentalFee, fees.RootNamespaceRentalFee)
	}
	if pn.Parent != nil {
		t.Error("root namespace must have nil parent")
	}
	if pn.RentalFeeSink != types.Testnet.NamespaceSink() {
		t.Errorf("sink = %s, want testnet namespace sink", pn.RentalFeeSink)
	}
	if pn.Fee != fees.Scale(fees.NamespaceMosaicCommonFee) {
		t.Errorf("fee = %d, want %d", pn.Fee, fees.Scale(fees.NamespaceMosaicCommonFee))
	}

	sub, err := b.ProvisionNamespace(testNow, ProvisionNamespaceIntent{
		Signing: Signing{Signer: testKey(1)},
		Parent:  "acme",
		NewPart: "tools",
	})
	if err != nil {
		t.Fatalf("ProvisionNamespace(sub): %v", err)
	}
	ps := sub.(*ProvisionNamespace)
	if ps.RentalFee != fees.SubNamespaceRentalFee {
		t.Errorf("sub rental = %d, want %d", ps.RentalFee, fees.SubNamespaceRentalFee)
	}
	if ps.Parent == nil || *ps.Parent != "acme" {
		t.Errorf("parent = %v, want acme", ps.Parent)
	}

	if _, err := b.ProvisionNamespace(testNow, ProvisionNamespaceIntent{
		Signing: Signing{Signer: testKey(1)},
		NewPart: "  ",
	}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("blank part: expected ErrInvalidIntent, got %v", err)
	}
}

func TestMosaicDefinition(t *testing.T) {
	b := NewBuilder(types.Testnet)
	e, err := b.MosaicDefinition(testNow, MosaicDefinitionIntent{
		Signing:     Signing{Signer: testKey(1)},
		ID:          types.MosaicID{NamespaceID: "acme", Name: "coupon"},
		Description: "store coupons",
		Properties: MosaicProperties{
			Divisibility:  2,
			InitialSupply: 1_000_000,
			SupplyMutable: true,
			Transferable:  true,
		},
	})
	if err != nil {
		t.Fatalf("MosaicDefinition: %v", err)
	}
	md := e.(*MosaicDefinition)
	if md.CreationFee != fees.MosaicDefinitionRentalFee {
		t.Errorf("creation fee = %d, want %d", md.CreationFee, fees.MosaicDefinitionRentalFee)
	}
	if md.Definition.Creator != testKey(1) {
		t.Error("definition creator must be the logical signer")
	}
	if md.Definition.Levy != nil {
		t.Error("no levy given, levy must be absent")
	}

	want := []MosaicProperty{
		{Name: "divisibility", Value: "2"},
		{Name: "initialSupply", Value: "1000000"},
		{Name: "supplyMutable", Value: "true"},
		{Name: "transferable", Value: "true"},
	}
	if len(md.Definition.Properties) != len(want) {
		t.Fatalf("properties = %d entries, want %d", len(md.Definition.Properties), len(want))
	}
	for i, p := range want {
		if md.Definition.Properties[i] != p {
			t.Errorf("property[%d] = %+v, want %+v", i, md.Definition.Properties[i], p)
		}
	}

	if _, err := b.MosaicDefinition(testNow, MosaicDefinitionIntent{
		Signing: Signing{Signer: testKey(1)},
		ID:      types.MosaicID{NamespaceID: "acme", Name: ""},
	}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("empty name: expected ErrInvalidIntent, got %v", err)
	}
}

func TestSupplyChange(t *testing.T) {
	b := NewBuilder(types.Testnet)
	e, err := b.SupplyChange(testNow, SupplyChangeIntent{
		Signing:   Signing{Signer: testKey(1)},
		MosaicID:  types.MosaicID{NamespaceID: "acme", Name: "coupon"},
		Direction: SupplyDecrease,
		Delta:     500,
	})
	if err != nil {
		t.Fatalf("SupplyChange: %v", err)
	}
	sc := e.(*MosaicSupplyChange)
	if sc.SupplyType != SupplyDecrease || sc.Delta != 500 {
		t.Errorf("supply change = %+v, want decrease by 500", sc)
	}

	if _, err := b.SupplyChange(testNow, SupplyChangeIntent{
		Signing:   Signing{Signer: testKey(1)},
		MosaicID:  types.MosaicID{NamespaceID: "acme", Name: "coupon"},
		Direction: 3,
		Delta:     1,
	}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("bad direction: expected ErrInvalidIntent, got %v", err)
	}
}

func TestImportanceTransfer_InvalidMode(t *testing.T) {
	b := NewBuilder(types.Testnet)
	if _, err := b.ImportanceTransfer(testNow, ImportanceTransferIntent{
		Signing:       Signing{Signer: testKey(1)},
		Mode:          0,
		RemoteAccount: testKey(2),
	}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("expected ErrInvalidIntent, got %v", err)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder(types.Mainnet)
	intent := TransferIntent{
		Signing:        Signing{Signer: testKey(7)},
		Recipient:      testRecipient,
		Amount:         42_000_000,
		MessagePayload: "00ff00ff",
	}

	first, err := b.Transfer(testNow, intent, nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	second, err := b.Transfer(testNow, intent, nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(c) {
		t.Errorf("identical inputs produced different transactions:\n%s\n%s", a, c)
	}
}
