package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crosschain-token-lab/internal/event"
	"crosschain-token-lab/internal/idhash"
	"crosschain-token-lab/internal/storage"
)

// EventJournal is an in-memory implementation of storage.EventJournal.
// Append-only: records are never updated or removed once emitted.
type EventJournal struct {
	mu      sync.RWMutex
	records []*event.Record

	now func() time.Time // overridable in tests
}

// NewEventJournal creates a new in-memory event journal.
func NewEventJournal() *EventJournal {
	return &EventJournal{now: time.Now}
}

// Emit appends an event, assigning the next sequence number, the
// emission timestamp, and a deterministic event_id. Implements
// event.Sink: emission has no failure mode.
func (j *EventJournal) Emit(e event.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rec := &event.Record{
		Seq:       uint64(len(j.records)) + 1,
		EmittedAt: j.now().UnixMilli(),
		Event:     e.Clone(),
	}
	rec.EventID = idhash.ComputeEventID(rec.Seq, rec.Event)
	j.records = append(j.records, rec)
}

// Seq returns the sequence number of the latest record, 0 if empty.
func (j *EventJournal) Seq(_ context.Context) (uint64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return uint64(len(j.records)), nil
}

// GetBySeq retrieves the record with the given sequence number.
// Returns ErrNotFound if it does not exist.
func (j *EventJournal) GetBySeq(_ context.Context, seq uint64) (*event.Record, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if seq == 0 || seq > uint64(len(j.records)) {
		return nil, storage.ErrNotFound
	}
	return copyRecord(j.records[seq-1]), nil
}

// GetBySeqRange retrieves records with Seq within [start, end] (inclusive).
func (j *EventJournal) GetBySeqRange(_ context.Context, start, end uint64) ([]*event.Record, error) {
	if start == 0 || start > end {
		return nil, storage.ErrInvalidInput
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	if start > uint64(len(j.records)) {
		return nil, nil
	}
	if end > uint64(len(j.records)) {
		end = uint64(len(j.records))
	}

	result := make([]*event.Record, 0, end-start+1)
	for _, r := range j.records[start-1 : end] {
		result = append(result, copyRecord(r))
	}
	return result, nil
}

// GetByType retrieves all records of the given event type, ordered by Seq ASC.
func (j *EventJournal) GetByType(_ context.Context, t event.Type) ([]*event.Record, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var result []*event.Record
	for _, r := range j.records {
		if r.Type == t {
			result = append(result, copyRecord(r))
		}
	}
	return result, nil
}

// GetByAccount retrieves all records touching addr, ordered by Seq ASC.
func (j *EventJournal) GetByAccount(_ context.Context, addr common.Address) ([]*event.Record, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var result []*event.Record
	for _, r := range j.records {
		if r.Touches(addr) {
			result = append(result, copyRecord(r))
		}
	}
	return result, nil
}

// copyRecord returns a copy to prevent external mutation of stored records.
func copyRecord(r *event.Record) *event.Record {
	rec := *r
	rec.Event = r.Event.Clone()
	return &rec
}
