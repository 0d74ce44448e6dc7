package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"crosschain-token-lab/internal/event"
)

// CrosschainToken is the cross-chain variant: a fungible ledger whose
// mint and burn entry points are gated on a single bridge identity fixed
// at construction. The bridge is the sole caller authorized to relay
// cross-chain mint/burn instructions; the token validates only the
// immediate caller, not the message transport behind it.
type CrosschainToken struct {
	*Ledger
	bridge common.Address // immutable after construction
}

// NewCrosschainToken creates a cross-chain token. bridge is the only
// identity CrosschainMint/CrosschainBurn will accept; it cannot be
// changed later. A nil sink discards events.
func NewCrosschainToken(meta Metadata, bridge common.Address, sink event.Sink) *CrosschainToken {
	return &CrosschainToken{
		Ledger: newLedger(meta, sink),
		bridge: bridge,
	}
}

// Bridge returns the fixed bridge identity.
func (t *CrosschainToken) Bridge() common.Address { return t.bridge }

// IsBridge reports whether caller is the authorized bridge. Pure
// predicate, callable independently of any operation.
func (t *CrosschainToken) IsBridge(caller common.Address) bool {
	return caller == t.bridge
}

// CrosschainMint mints amount to to on behalf of a completed inbound
// cross-chain transfer. Fails with ErrUnauthorized for any non-bridge
// caller, leaving state untouched. On success it emits the standard
// Transfer (from the zero address) plus a CrosschainMint event carrying
// the initiating bridge identity.
func (t *CrosschainToken) CrosschainMint(caller, to common.Address, amount *uint256.Int) error {
	if !t.IsBridge(caller) {
		return fmt.Errorf("crosschain mint by %s: %w", caller.Hex(), ErrUnauthorized)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.mint(to, amount); err != nil {
		return err
	}
	t.emit(event.Event{Type: event.TypeCrosschainMint, To: to, Amount: amount.Clone(), Initiator: caller})
	return nil
}

// CrosschainBurn burns amount from from to fund an outbound cross-chain
// transfer. Fails with ErrUnauthorized for any non-bridge caller. On
// success it emits the standard Transfer (to the zero address) plus a
// CrosschainBurn event carrying the initiating bridge identity.
func (t *CrosschainToken) CrosschainBurn(caller, from common.Address, amount *uint256.Int) error {
	if !t.IsBridge(caller) {
		return fmt.Errorf("crosschain burn by %s: %w", caller.Hex(), ErrUnauthorized)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.burn(from, amount); err != nil {
		return err
	}
	t.emit(event.Event{Type: event.TypeCrosschainBurn, From: from, Amount: amount.Clone(), Initiator: caller})
	return nil
}
