package event

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

func testAddr(b byte) common.Address {
	var a common.Address
	a[19] = b
	return a
}

func TestEvent_Clone(t *testing.T) {
	e := Event{Type: TypeTransfer, From: testAddr(1), To: testAddr(2), Amount: uint256.NewInt(100)}

	clone := e.Clone()
	clone.Amount.SetUint64(999)

	if e.Amount.Uint64() != 100 {
		t.Errorf("Clone shares Amount with original: got %d, want 100", e.Amount.Uint64())
	}
}

func TestEvent_Touches(t *testing.T) {
	alice, bob, carol := testAddr(1), testAddr(2), testAddr(3)

	tests := []struct {
		name  string
		event Event
		addr  common.Address
		want  bool
	}{
		{"transfer sender", Event{Type: TypeTransfer, From: alice, To: bob}, alice, true},
		{"transfer recipient", Event{Type: TypeTransfer, From: alice, To: bob}, bob, true},
		{"transfer bystander", Event{Type: TypeTransfer, From: alice, To: bob}, carol, false},
		{"approval owner", Event{Type: TypeApproval, Owner: alice, Spender: bob}, alice, true},
		{"approval ignores transfer fields", Event{Type: TypeApproval, Owner: alice, Spender: bob}, common.Address{}, false},
		{"crosschain mint initiator", Event{Type: TypeCrosschainMint, To: bob, Initiator: carol}, carol, true},
		{"crosschain burn source", Event{Type: TypeCrosschainBurn, From: alice, Initiator: carol}, alice, true},
		{"ownership previous", Event{Type: TypeOwnershipTransferred, PreviousOwner: alice, NewOwner: bob}, alice, true},
		{"unknown type", Event{Type: Type("bogus"), From: alice}, alice, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Touches(tt.addr); got != tt.want {
				t.Errorf("Touches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_MarshalJSON_FieldsPerType(t *testing.T) {
	alice, bob := testAddr(1), testAddr(2)

	tests := []struct {
		name      string
		record    Record
		wantKeys  []string
		wantValue map[string]string
	}{
		{
			name:     "transfer",
			record:   Record{EventID: "id1", Seq: 1, EmittedAt: 1704067200000, Event: Event{Type: TypeTransfer, From: alice, To: bob, Amount: uint256.NewInt(500)}},
			wantKeys: []string{"event_id", "seq", "emitted_at", "type", "from", "to", "amount"},
			wantValue: map[string]string{
				"type":   "Transfer",
				"amount": "500",
			},
		},
		{
			name:     "approval",
			record:   Record{EventID: "id2", Seq: 2, Event: Event{Type: TypeApproval, Owner: alice, Spender: bob, Amount: uint256.NewInt(7)}},
			wantKeys: []string{"event_id", "seq", "emitted_at", "type", "owner", "spender", "amount"},
			wantValue: map[string]string{
				"type":   "Approval",
				"amount": "7",
			},
		},
		{
			name:     "crosschain mint",
			record:   Record{EventID: "id3", Seq: 3, Event: Event{Type: TypeCrosschainMint, To: bob, Initiator: alice, Amount: uint256.NewInt(500)}},
			wantKeys: []string{"event_id", "seq", "emitted_at", "type", "to", "amount", "initiator"},
			wantValue: map[string]string{
				"type":      "CrosschainMint",
				"initiator": alice.Hex(),
			},
		},
		{
			name:     "crosschain burn",
			record:   Record{EventID: "id4", Seq: 4, Event: Event{Type: TypeCrosschainBurn, From: bob, Initiator: alice, Amount: uint256.NewInt(500)}},
			wantKeys: []string{"event_id", "seq", "emitted_at", "type", "from", "amount", "initiator"},
			wantValue: map[string]string{
				"type": "CrosschainBurn",
			},
		},
		{
			name:     "ownership transferred",
			record:   Record{EventID: "id5", Seq: 5, Event: Event{Type: TypeOwnershipTransferred, PreviousOwner: alice, NewOwner: bob}},
			wantKeys: []string{"event_id", "seq", "emitted_at", "type", "previous_owner", "new_owner"},
			wantValue: map[string]string{
				"type": "OwnershipTransferred",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(&tt.record)
			if err != nil {
				t.Fatalf("MarshalJSON failed: %v", err)
			}

			var decoded map[string]any
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}

			if len(decoded) != len(tt.wantKeys) {
				t.Errorf("got %d keys %v, want %d", len(decoded), decoded, len(tt.wantKeys))
			}
			for _, k := range tt.wantKeys {
				if _, ok := decoded[k]; !ok {
					t.Errorf("missing key %q in %v", k, decoded)
				}
			}
			for k, want := range tt.wantValue {
				if got, _ := decoded[k].(string); got != want {
					t.Errorf("key %q = %q, want %q", k, decoded[k], want)
				}
			}
		})
	}
}

func TestRecord_MarshalJSON_AmountIsDecimalString(t *testing.T) {
	big := new(uint256.Int).SetAllOne() // 2^256-1, far beyond float precision
	r := Record{EventID: "id", Seq: 1, Event: Event{Type: TypeTransfer, From: testAddr(1), To: testAddr(2), Amount: big}}

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var decoded struct {
		Amount string `json:"amount"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Amount != big.Dec() {
		t.Errorf("amount = %q, want %q", decoded.Amount, big.Dec())
	}
}
