// Package idhash computes deterministic identifiers for journal records.
package idhash

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"crosschain-token-lab/internal/event"
)

// ComputeEventID computes a deterministic event_id using SHA256.
// Formula: SHA256(seq|type|from|to|owner|spender|previous_owner|new_owner|initiator|amount)
// Returns the base58-encoded digest (43-44 characters).
func ComputeEventID(seq uint64, e event.Event) string {
	amount := ""
	if e.Amount != nil {
		amount = e.Amount.Dec()
	}

	data := fmt.Sprintf("%d|%s|%s|%s|%s|%s|%s|%s|%s|%s",
		seq,
		string(e.Type),
		e.From.Hex(),
		e.To.Hex(),
		e.Owner.Hex(),
		e.Spender.Hex(),
		e.PreviousOwner.Hex(),
		e.NewOwner.Hex(),
		e.Initiator.Hex(),
		amount,
	)

	hash := sha256.Sum256([]byte(data))
	return base58.Encode(hash[:])
}
