package monitor

import (
	"context"

	"github.com/jobgrid/jobgrid/internal/logging"
	"github.com/jobgrid/jobgrid/internal/records"
)

// Mode selects how much granularity a stream exposes.
type Mode uint8

const (
	// ModeSimple folds runs into their owning job so consumers only see
	// jobs and markets.
	ModeSimple Mode = iota
	// ModeDetailed emits jobs, markets, and runs as separate events.
	ModeDetailed
)

func (m Mode) String() string {
	if m == ModeDetailed {
		return "detailed"
	}
	return "simple"
}

// correlator decides, per transformed record, whether to emit it as-is,
// merge it with related ledger state first, or drop it. It is read-through:
// nothing is cached across notifications.
type correlator struct {
	mode    Mode
	lookup  Lookup
	log     logging.ServiceLogger
	metrics *Metrics
}

func newCorrelator(mode Mode, lookup Lookup, log logging.ServiceLogger, metrics *Metrics) *correlator {
	return &correlator{mode: mode, lookup: lookup, log: log, metrics: metrics}
}

// correlate returns the view to emit, or nil to drop the notification.
func (c *correlator) correlate(ctx context.Context, view records.View) *records.View {
	switch view.Kind {
	case records.KindMarket:
		return &view
	case records.KindJob:
		return c.correlateJob(ctx, view)
	case records.KindRun:
		return c.correlateRun(ctx, view)
	default:
		return nil
	}
}

// correlateJob checks whether a still-queued job already has a claim on the
// ledger and, in simple mode, presents it as running. A failed lookup
// degrades to emitting the job unmerged.
func (c *correlator) correlateJob(ctx context.Context, view records.View) *records.View {
	if c.mode == ModeDetailed || view.Job.State != records.JobQueued {
		return &view
	}

	runs, err := c.lookup.RunsForJob(ctx, view.Job.Address)
	if err != nil {
		c.metrics.lookupFailures.Inc()
		c.log.Error("claim lookup failed, emitting job unmerged", err, logging.LogFields{
			"job": view.Job.Address,
		})
		return &view
	}
	if len(runs) == 0 {
		return &view
	}
	if len(runs) > 1 {
		c.log.Info("job has multiple claims, keeping first observed", logging.LogFields{
			"job":    view.Job.Address,
			"claims": len(runs),
		})
	}

	job := *view.Job
	job.ApplyClaim(runs[0].Node, records.UnixTime(runs[0].Time))
	return &records.View{Kind: records.KindJob, Job: &job}
}

// correlateRun folds a claim into its owning job. Claim notifications carry
// no job context, so simple mode always needs the job record; without it
// there is no safe degraded form and the event is dropped.
func (c *correlator) correlateRun(ctx context.Context, view records.View) *records.View {
	if c.mode == ModeDetailed {
		return &view
	}

	rawJob, err := c.lookup.Job(ctx, view.Run.Job)
	if err != nil {
		c.metrics.lookupFailures.Inc()
		c.log.Error("job lookup failed, dropping claim event", err, logging.LogFields{
			"job": view.Run.Job,
			"run": view.Run.Address,
		})
		return nil
	}
	job, err := records.TransformJob(view.Run.Job, rawJob)
	if err != nil {
		c.metrics.lookupFailures.Inc()
		c.log.Error("looked-up job is malformed, dropping claim event", err, logging.LogFields{
			"job": view.Run.Job,
			"run": view.Run.Address,
		})
		return nil
	}

	job.ApplyRun(*view.Run)
	return &records.View{Kind: records.KindJob, Job: &job}
}
