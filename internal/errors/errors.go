package errors

import sterrors "errors"

var (
	ErrConfigRequired     = sterrors.New("jobgrid: config is required")
	ErrProgramRequired    = sterrors.New("jobgrid: program address is required")
	ErrChannelRequired    = sterrors.New("jobgrid: notification channel is required")
	ErrClassifierRequired = sterrors.New("jobgrid: record classifier is required")
	ErrLookupRequired     = sterrors.New("jobgrid: record lookup is required")
	ErrLoggerRequired     = sterrors.New("jobgrid: logger is required")
	ErrPublisherRequired  = sterrors.New("jobgrid: publisher is required")
	ErrTopicRequired      = sterrors.New("jobgrid: topic is required")

	// ErrNotFound is returned by Lookup implementations when no record
	// exists at the queried address.
	ErrNotFound = sterrors.New("jobgrid: record not found")

	// ErrSourceClosed signals that a notification source failed at the
	// transport level and will deliver nothing further.
	ErrSourceClosed = sterrors.New("jobgrid: notification source closed")
)
