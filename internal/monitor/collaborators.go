// Package monitor turns raw account-change notifications into typed,
// ordered job-lifecycle event streams. It owns the subscription lifecycle
// and the Run/Job correlation; how bytes become records and how the
// underlying stream is carried are collaborator concerns.
package monitor

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/records"
)

// Notification is a single raw account-change event delivered by a Channel.
type Notification struct {
	// Address of the account that changed.
	Address string
	// Data is the raw account payload; only a Classifier knows its layout.
	Data []byte
}

// Source is a live notification stream scoped to one program.
type Source interface {
	// Receive blocks until the next notification arrives, the context is
	// cancelled, or the stream fails at the transport level.
	Receive(ctx context.Context) (Notification, error)
	// Close releases the stream. Safe to call more than once.
	Close() error
}

// Channel opens cancellable notification streams filtered to one program.
type Channel interface {
	Open(ctx context.Context, program string) (Source, error)
}

// Classifier identifies and decodes raw account payloads.
type Classifier interface {
	// Identify reports the record kind of a raw payload, or KindUnknown.
	Identify(data []byte) records.Kind
	// Decode parses a payload of a known kind into a typed raw record.
	Decode(kind records.Kind, data []byte) (records.Raw, error)
}

// Lookup performs on-demand point queries against current ledger state.
type Lookup interface {
	// Job fetches one job record by address. Returns errors.ErrNotFound
	// when no record exists there.
	Job(ctx context.Context, address string) (records.RawJob, error)
	// RunsForJob fetches the claim records for a job address, zero or
	// more, in observation order.
	RunsForJob(ctx context.Context, job string) ([]records.RawRun, error)
}
