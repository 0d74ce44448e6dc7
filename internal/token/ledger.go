// Package token implements the accounting and authorization core of a
// cross-chain-transferable fungible token: a ledger tracking balances,
// allowances and total supply, plus two privileged variants — a
// bridge-gated cross-chain mint/burn token (CrosschainToken) and an
// owner-administered local-mint token (OwnedToken).
//
// All amounts are 256-bit unsigned integers; arithmetic that would wrap
// is rejected, never clamped. Every state-changing operation is
// all-or-nothing: checks run before any mutation, and events are emitted
// only after the operation has fully committed.
package token

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"crosschain-token-lab/internal/event"
)

// zeroAddress is the null account identifier.
var zeroAddress common.Address

// maxUint256 is the unlimited-allowance sentinel: an allowance equal to
// 2^256-1 is never decremented by TransferFrom.
var maxUint256 = new(uint256.Int).SetAllOne()

// MaxAllowance returns the unlimited-allowance sentinel value.
func MaxAllowance() *uint256.Int {
	return maxUint256.Clone()
}

// Metadata holds the display properties of a token, fixed at construction.
type Metadata struct {
	Name     string // display name
	Symbol   string // ticker symbol
	Decimals uint8  // decimal precision
}

// Ledger is the shared balance/allowance/supply bookkeeping core.
//
// Invariant: the sum of all balances equals the total supply at all
// times. Absent accounts and allowances read as zero. A single mutex
// serializes operations, mirroring the one-logical-transaction-per-call
// execution model of the host environment.
type Ledger struct {
	mu   sync.Mutex
	meta Metadata

	supply     uint256.Int
	balances   map[common.Address]*uint256.Int
	allowances map[common.Address]map[common.Address]*uint256.Int

	sink event.Sink // nil discards events
}

func newLedger(meta Metadata, sink event.Sink) *Ledger {
	return &Ledger{
		meta:       meta,
		balances:   make(map[common.Address]*uint256.Int),
		allowances: make(map[common.Address]map[common.Address]*uint256.Int),
		sink:       sink,
	}
}

// Name returns the token's display name.
func (l *Ledger) Name() string { return l.meta.Name }

// Symbol returns the token's ticker symbol.
func (l *Ledger) Symbol() string { return l.meta.Symbol }

// Decimals returns the token's decimal precision.
func (l *Ledger) Decimals() uint8 { return l.meta.Decimals }

// TotalSupply returns the amount of tokens in existence. Never fails.
func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply.Clone()
}

// BalanceOf returns the balance of account, zero for absent accounts.
// Never fails.
func (l *Ledger) BalanceOf(account common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if bal, ok := l.balances[account]; ok {
		return bal.Clone()
	}
	return new(uint256.Int)
}

// Allowance returns the amount spender may still debit from owner via
// TransferFrom, zero by default. Never fails.
func (l *Ledger) Allowance(owner, spender common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if allowed, ok := l.allowances[owner][spender]; ok {
		return allowed.Clone()
	}
	return new(uint256.Int)
}

// Transfer moves amount from the caller's balance to to.
// Fails with ErrInvalidRecipient for a zero destination and
// ErrInsufficientBalance if the caller's balance is short.
func (l *Ledger) Transfer(caller, to common.Address, amount *uint256.Int) error {
	if to == zeroAddress {
		return fmt.Errorf("transfer from %s: %w", caller.Hex(), ErrInvalidRecipient)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.move(caller, to, amount); err != nil {
		return err
	}
	l.emit(event.Event{Type: event.TypeTransfer, From: caller, To: to, Amount: amount.Clone()})
	return nil
}

// Approve sets the caller's allowance for spender to amount, overwriting
// any previous value. Any amount, including zero and the unlimited
// sentinel, is valid; Approve never fails and always emits an Approval.
func (l *Ledger) Approve(caller, spender common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	inner, ok := l.allowances[caller]
	if !ok {
		inner = make(map[common.Address]*uint256.Int)
		l.allowances[caller] = inner
	}
	inner[spender] = amount.Clone()

	l.emit(event.Event{Type: event.TypeApproval, Owner: caller, Spender: spender, Amount: amount.Clone()})
	return nil
}

// TransferFrom moves amount from from's balance to to, spending the
// caller's allowance. The allowance check precedes the balance check;
// an allowance equal to the unlimited sentinel is never decremented.
func (l *Ledger) TransferFrom(caller, from, to common.Address, amount *uint256.Int) error {
	if to == zeroAddress {
		return fmt.Errorf("transfer from %s by %s: %w", from.Hex(), caller.Hex(), ErrInvalidRecipient)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowances[from][caller]
	if allowed == nil {
		if !amount.IsZero() {
			return fmt.Errorf("spender %s allowed 0 by %s, needs %s: %w",
				caller.Hex(), from.Hex(), amount.Dec(), ErrInsufficientAllowance)
		}
	} else if allowed.Lt(amount) {
		return fmt.Errorf("spender %s allowed %s by %s, needs %s: %w",
			caller.Hex(), allowed.Dec(), from.Hex(), amount.Dec(), ErrInsufficientAllowance)
	}

	if err := l.move(from, to, amount); err != nil {
		return err
	}

	// Explicit sentinel branch: unlimited allowances are left untouched.
	if allowed != nil && !allowed.Eq(maxUint256) {
		allowed.Sub(allowed, amount)
	}

	l.emit(event.Event{Type: event.TypeTransfer, From: from, To: to, Amount: amount.Clone()})
	return nil
}

// move debits from and credits to. Caller holds l.mu and has performed
// all non-balance checks; move performs the balance check itself so no
// mutation precedes it. A self-transfer nets to zero without precision
// loss.
func (l *Ledger) move(from, to common.Address, amount *uint256.Int) error {
	bal := l.balances[from]
	if bal == nil {
		if !amount.IsZero() {
			return fmt.Errorf("account %s holds 0, needs %s: %w",
				from.Hex(), amount.Dec(), ErrInsufficientBalance)
		}
		return nil
	}
	if bal.Lt(amount) {
		return fmt.Errorf("account %s holds %s, needs %s: %w",
			from.Hex(), bal.Dec(), amount.Dec(), ErrInsufficientBalance)
	}

	bal.Sub(bal, amount)
	if bal.IsZero() {
		delete(l.balances, from)
	}
	l.credit(to, amount)
	return nil
}

// credit adds amount to to's balance. A credit cannot overflow: every
// balance is bounded by the total supply, whose own overflow is rejected
// in mint.
func (l *Ledger) credit(to common.Address, amount *uint256.Int) {
	if amount.IsZero() {
		return
	}
	if bal, ok := l.balances[to]; ok {
		bal.Add(bal, amount)
		return
	}
	l.balances[to] = amount.Clone()
}

// mint creates amount new tokens for to, growing the total supply.
// Caller holds l.mu. Fails with ErrInvalidRecipient for a zero
// destination and ErrArithmeticOverflow if the supply would wrap.
func (l *Ledger) mint(to common.Address, amount *uint256.Int) error {
	if to == zeroAddress {
		return fmt.Errorf("mint: %w", ErrInvalidRecipient)
	}
	if _, overflow := new(uint256.Int).AddOverflow(&l.supply, amount); overflow {
		return fmt.Errorf("minting %s onto supply %s would wrap: %w",
			amount.Dec(), l.supply.Dec(), ErrArithmeticOverflow)
	}

	l.supply.Add(&l.supply, amount)
	l.credit(to, amount)
	l.emit(event.Event{Type: event.TypeTransfer, From: zeroAddress, To: to, Amount: amount.Clone()})
	return nil
}

// burn destroys amount tokens held by from, shrinking the total supply.
// Caller holds l.mu. The supply cannot underflow: the balance check plus
// the sum-of-balances invariant bound every burn by prior mints.
func (l *Ledger) burn(from common.Address, amount *uint256.Int) error {
	bal := l.balances[from]
	if bal == nil {
		if !amount.IsZero() {
			return fmt.Errorf("account %s holds 0, needs %s: %w",
				from.Hex(), amount.Dec(), ErrInsufficientBalance)
		}
	} else {
		if bal.Lt(amount) {
			return fmt.Errorf("account %s holds %s, needs %s: %w",
				from.Hex(), bal.Dec(), amount.Dec(), ErrInsufficientBalance)
		}
		bal.Sub(bal, amount)
		if bal.IsZero() {
			delete(l.balances, from)
		}
	}

	l.supply.Sub(&l.supply, amount)
	l.emit(event.Event{Type: event.TypeTransfer, From: from, To: zeroAddress, Amount: amount.Clone()})
	return nil
}

// emit forwards an event to the configured sink, if any. Called only
// after the triggering operation has fully committed.
func (l *Ledger) emit(e event.Event) {
	if l.sink != nil {
		l.sink.Emit(e)
	}
}
