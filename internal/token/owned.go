package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"crosschain-token-lab/internal/event"
)

// OwnedToken is the owner-administered variant: a fungible ledger with a
// local mint entry point gated on a single mutable owner identity.
// Ownership is single-writer — only the current owner may hand it over
// or renounce it, and renouncing (owner = zero) is terminal.
type OwnedToken struct {
	*Ledger
	owner common.Address // guarded by Ledger.mu
}

// NewOwnedToken creates an owner-administered token with the given
// initial owner. A nil sink discards events.
func NewOwnedToken(meta Metadata, owner common.Address, sink event.Sink) *OwnedToken {
	return &OwnedToken{
		Ledger: newLedger(meta, sink),
		owner:  owner,
	}
}

// Owner returns the current owner, or the zero address once renounced.
func (t *OwnedToken) Owner() common.Address {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.owner
}

// IsOwner reports whether caller is the current owner. Pure predicate.
// Once ownership is renounced this returns false for every caller,
// including the zero address itself.
func (t *OwnedToken) IsOwner(caller common.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isOwnerLocked(caller)
}

func (t *OwnedToken) isOwnerLocked(caller common.Address) bool {
	return t.owner != zeroAddress && caller == t.owner
}

// MintTo mints amount to to. Fails with ErrUnauthorized for any
// non-owner caller, leaving state untouched. Emits the standard
// Transfer (from the zero address) only.
func (t *OwnedToken) MintTo(caller, to common.Address, amount *uint256.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isOwnerLocked(caller) {
		return fmt.Errorf("mint by %s: %w", caller.Hex(), ErrUnauthorized)
	}
	return t.mint(to, amount)
}

// TransferOwnership atomically hands ownership to newOwner. Fails with
// ErrUnauthorized for any non-owner caller and ErrInvalidOwner for a
// zero newOwner; RenounceOwnership is the only path to a zero owner.
func (t *OwnedToken) TransferOwnership(caller, newOwner common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isOwnerLocked(caller) {
		return fmt.Errorf("ownership transfer by %s: %w", caller.Hex(), ErrUnauthorized)
	}
	if newOwner == zeroAddress {
		return fmt.Errorf("ownership transfer by %s: %w", caller.Hex(), ErrInvalidOwner)
	}

	prev := t.owner
	t.owner = newOwner
	t.emit(event.Event{Type: event.TypeOwnershipTransferred, PreviousOwner: prev, NewOwner: newOwner})
	return nil
}

// RenounceOwnership sets the owner to the zero address. Irreversible:
// once renounced, the owner check can never again succeed for any
// caller, so MintTo is permanently disabled.
func (t *OwnedToken) RenounceOwnership(caller common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isOwnerLocked(caller) {
		return fmt.Errorf("ownership renounce by %s: %w", caller.Hex(), ErrUnauthorized)
	}

	prev := t.owner
	t.owner = zeroAddress
	t.emit(event.Event{Type: event.TypeOwnershipTransferred, PreviousOwner: prev, NewOwner: zeroAddress})
	return nil
}
