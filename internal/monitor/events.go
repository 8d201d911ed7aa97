package monitor

import "github.com/jobgrid/jobgrid/internal/records"

// Event is one detailed-mode stream element: a job, run, or market view
// tagged with a ULID so consumers can de-duplicate after relay fan-out.
type Event struct {
	ID string
	records.View
}

// SimpleEvent is one simple-mode stream element. Runs never appear here;
// the correlator folds them into their owning job before emission.
type SimpleEvent struct {
	ID     string
	Kind   records.Kind
	Job    *records.Job
	Market *records.Market
}

// Address returns the account address of the entity the event holds.
func (e SimpleEvent) Address() string {
	switch e.Kind {
	case records.KindJob:
		if e.Job != nil {
			return e.Job.Address
		}
	case records.KindMarket:
		if e.Market != nil {
			return e.Market.Address
		}
	}
	return ""
}

func (e *Event) simple() SimpleEvent {
	return SimpleEvent{ID: e.ID, Kind: e.Kind, Job: e.Job, Market: e.Market}
}
