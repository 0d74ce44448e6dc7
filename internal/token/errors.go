package token

import "errors"

// Operation errors. Every failure aborts the entire operation with no
// partial state mutation and no event emission; call sites wrap these
// with the offending identities and amounts, callers dispatch with
// errors.Is.
var (
	// ErrUnauthorized is returned when the caller fails an identity check
	// (bridge or owner). Non-retryable.
	ErrUnauthorized = errors.New("unauthorized caller")

	// ErrInsufficientBalance is returned when a debit exceeds the
	// account's available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientAllowance is returned when a TransferFrom debit
	// exceeds the granted allowance.
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrArithmeticOverflow is returned when an amount would wrap the
	// total supply. Never silently clamped.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrInvalidRecipient is returned when a mint or transfer targets the
	// zero address.
	ErrInvalidRecipient = errors.New("invalid recipient: zero address")

	// ErrInvalidOwner is returned when TransferOwnership targets the zero
	// address; RenounceOwnership is the only path to a zero owner.
	ErrInvalidOwner = errors.New("invalid owner: zero address")
)

// ErrorReason maps an operation error to a short stable label, used as a
// metric dimension. Returns "" for nil.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrInsufficientAllowance):
		return "insufficient_allowance"
	case errors.Is(err, ErrArithmeticOverflow):
		return "arithmetic_overflow"
	case errors.Is(err, ErrInvalidRecipient):
		return "invalid_recipient"
	case errors.Is(err, ErrInvalidOwner):
		return "invalid_owner"
	default:
		return "unknown"
	}
}
