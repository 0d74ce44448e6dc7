package storage

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crosschain-token-lab/internal/event"
)

// EventJournal provides append and query access to emitted token events.
// Appends happen through the event.Sink side of the interface; queries
// serve external observers (indexers, bridges confirming mint/burn
// completions). Records are totally ordered by Seq, which follows the
// commit order of the emitting operations.
type EventJournal interface {
	event.Sink

	// Seq returns the sequence number of the latest record, 0 if empty.
	Seq(ctx context.Context) (uint64, error)

	// GetBySeq retrieves the record with the given sequence number.
	// Returns ErrNotFound if it does not exist.
	GetBySeq(ctx context.Context, seq uint64) (*event.Record, error)

	// GetBySeqRange retrieves records with Seq within [start, end]
	// (inclusive), ordered by Seq ASC. Returns ErrInvalidInput if
	// start > end or start is 0.
	GetBySeqRange(ctx context.Context, start, end uint64) ([]*event.Record, error)

	// GetByType retrieves all records of the given event type, ordered
	// by Seq ASC.
	GetByType(ctx context.Context, t event.Type) ([]*event.Record, error)

	// GetByAccount retrieves all records whose type-relevant address
	// fields include addr, ordered by Seq ASC.
	GetByAccount(ctx context.Context, addr common.Address) ([]*event.Record, error)
}
