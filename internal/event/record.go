package event

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// Record is an event as stored in a journal: the event itself plus the
// journal-assigned sequence number, deterministic identifier, and
// emission timestamp.
type Record struct {
	EventID   string // deterministic ID, see internal/idhash
	Seq       uint64 // 1-based position in the journal, total order
	EmittedAt int64  // Unix timestamp in milliseconds
	Event
}

// recordHeader carries the fields common to every serialized record.
type recordHeader struct {
	EventID   string `json:"event_id"`
	Seq       uint64 `json:"seq"`
	EmittedAt int64  `json:"emitted_at"`
	Type      Type   `json:"type"`
}

// MarshalJSON serializes only the address fields meaningful for the
// record's event type. Amounts are decimal strings, addresses hex.
func (r *Record) MarshalJSON() ([]byte, error) {
	h := recordHeader{EventID: r.EventID, Seq: r.Seq, EmittedAt: r.EmittedAt, Type: r.Type}
	amount := ""
	if r.Amount != nil {
		amount = r.Amount.Dec()
	}

	switch r.Type {
	case TypeApproval:
		return json.Marshal(struct {
			recordHeader
			Owner   common.Address `json:"owner"`
			Spender common.Address `json:"spender"`
			Amount  string         `json:"amount"`
		}{h, r.Owner, r.Spender, amount})
	case TypeCrosschainMint:
		return json.Marshal(struct {
			recordHeader
			To        common.Address `json:"to"`
			Amount    string         `json:"amount"`
			Initiator common.Address `json:"initiator"`
		}{h, r.To, amount, r.Initiator})
	case TypeCrosschainBurn:
		return json.Marshal(struct {
			recordHeader
			From      common.Address `json:"from"`
			Amount    string         `json:"amount"`
			Initiator common.Address `json:"initiator"`
		}{h, r.From, amount, r.Initiator})
	case TypeOwnershipTransferred:
		return json.Marshal(struct {
			recordHeader
			PreviousOwner common.Address `json:"previous_owner"`
			NewOwner      common.Address `json:"new_owner"`
		}{h, r.PreviousOwner, r.NewOwner})
	default: // TypeTransfer and any future transfer-shaped type
		return json.Marshal(struct {
			recordHeader
			From   common.Address `json:"from"`
			To     common.Address `json:"to"`
			Amount string         `json:"amount"`
		}{h, r.From, r.To, amount})
	}
}
