// Package event defines the canonical notification records emitted by
// every state-changing token operation, consumed by external observers
// (indexers, bridges relaying mint/burn completions).
package event

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Type identifies the kind of token event.
type Type string

const (
	TypeTransfer             Type = "Transfer"
	TypeApproval             Type = "Approval"
	TypeCrosschainMint       Type = "CrosschainMint"
	TypeCrosschainBurn       Type = "CrosschainBurn"
	TypeOwnershipTransferred Type = "OwnershipTransferred"
)

// Event is a canonical token notification. Which address fields are
// meaningful depends on Type:
//
//	Transfer:             From, To, Amount (From is zero for mints, To is zero for burns)
//	Approval:             Owner, Spender, Amount
//	CrosschainMint:       To, Amount, Initiator (the bridge identity)
//	CrosschainBurn:       From, Amount, Initiator (the bridge identity)
//	OwnershipTransferred: PreviousOwner, NewOwner (NewOwner is zero on renounce)
type Event struct {
	Type          Type
	From          common.Address
	To            common.Address
	Owner         common.Address
	Spender       common.Address
	PreviousOwner common.Address
	NewOwner      common.Address
	Initiator     common.Address
	Amount        *uint256.Int // nil for OwnershipTransferred
}

// Sink receives emitted events. Emission is side-effect only: a sink has no
// failure mode and must not block the emitting operation. Events arrive in
// the total order the operations committed in.
type Sink interface {
	Emit(e Event)
}

// Clone returns a copy of the event with its own Amount value, safe to
// retain after the emitting operation returns.
func (e Event) Clone() Event {
	if e.Amount != nil {
		e.Amount = e.Amount.Clone()
	}
	return e
}

// Touches reports whether addr participates in the event, considering only
// the address fields meaningful for the event's type.
func (e Event) Touches(addr common.Address) bool {
	switch e.Type {
	case TypeTransfer:
		return e.From == addr || e.To == addr
	case TypeApproval:
		return e.Owner == addr || e.Spender == addr
	case TypeCrosschainMint:
		return e.To == addr || e.Initiator == addr
	case TypeCrosschainBurn:
		return e.From == addr || e.Initiator == addr
	case TypeOwnershipTransferred:
		return e.PreviousOwner == addr || e.NewOwner == addr
	}
	return false
}
