package idhash

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"crosschain-token-lab/internal/event"
)

func testAddr(b byte) common.Address {
	var a common.Address
	a[19] = b
	return a
}

func TestComputeEventID(t *testing.T) {
	tests := []struct {
		name string
		seq  uint64
		e    event.Event
	}{
		{
			name: "transfer",
			seq:  1,
			e:    event.Event{Type: event.TypeTransfer, From: testAddr(1), To: testAddr(2), Amount: uint256.NewInt(500)},
		},
		{
			name: "mint transfer from zero address",
			seq:  2,
			e:    event.Event{Type: event.TypeTransfer, To: testAddr(2), Amount: uint256.NewInt(500)},
		},
		{
			name: "crosschain mint with initiator",
			seq:  3,
			e:    event.Event{Type: event.TypeCrosschainMint, To: testAddr(2), Initiator: testAddr(0xbb), Amount: uint256.NewInt(500)},
		},
		{
			name: "ownership transfer without amount",
			seq:  4,
			e:    event.Event{Type: event.TypeOwnershipTransferred, PreviousOwner: testAddr(1), NewOwner: testAddr(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEventID(tt.seq, tt.e)

			if len(got) < 43 || len(got) > 44 {
				t.Errorf("ComputeEventID() length = %d, want 43-44", len(got))
			}

			// Verify determinism: same inputs should produce same output
			got2 := ComputeEventID(tt.seq, tt.e)
			if got != got2 {
				t.Errorf("ComputeEventID() not deterministic: %s != %s", got, got2)
			}
		})
	}
}

func TestComputeEventID_DifferentInputsProduceDifferentIDs(t *testing.T) {
	base := event.Event{Type: event.TypeTransfer, From: testAddr(1), To: testAddr(2), Amount: uint256.NewInt(500)}
	baseID := ComputeEventID(1, base)

	// Different sequence number
	if ComputeEventID(2, base) == baseID {
		t.Error("different seq produced identical ID")
	}

	// Different amount
	changed := base
	changed.Amount = uint256.NewInt(501)
	if ComputeEventID(1, changed) == baseID {
		t.Error("different amount produced identical ID")
	}

	// Different type with identical addresses
	changed = base
	changed.Type = event.TypeCrosschainMint
	if ComputeEventID(1, changed) == baseID {
		t.Error("different type produced identical ID")
	}

	// Different recipient
	changed = base
	changed.To = testAddr(3)
	if ComputeEventID(1, changed) == baseID {
		t.Error("different recipient produced identical ID")
	}
}

func TestComputeEventID_NilAmountDistinctFromZero(t *testing.T) {
	withZero := event.Event{Type: event.TypeTransfer, From: testAddr(1), To: testAddr(2), Amount: new(uint256.Int)}
	withNil := event.Event{Type: event.TypeTransfer, From: testAddr(1), To: testAddr(2)}

	if ComputeEventID(1, withZero) == ComputeEventID(1, withNil) {
		t.Error("nil amount and zero amount produced identical IDs")
	}
}
