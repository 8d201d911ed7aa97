package records

import (
	"fmt"
	"time"
)

// Discriminant values used by the on-ledger account layout.
const (
	rawJobQueued    = 0
	rawJobRunning   = 1
	rawJobCompleted = 2
	rawJobStopped   = 3

	rawJobQueue  = 0
	rawNodeQueue = 1
)

// Transform converts a decoded raw record into its application-level view.
// Malformed input (an unknown discriminant, a missing payload) is reported
// as an error so the caller can drop the notification.
func Transform(address string, raw Raw) (View, error) {
	switch raw.Kind {
	case KindJob:
		if raw.Job == nil {
			return View{}, fmt.Errorf("transform: job record at %s has no payload", address)
		}
		job, err := TransformJob(address, *raw.Job)
		if err != nil {
			return View{}, err
		}
		return View{Kind: KindJob, Job: &job}, nil
	case KindRun:
		if raw.Run == nil {
			return View{}, fmt.Errorf("transform: run record at %s has no payload", address)
		}
		run := TransformRun(address, *raw.Run)
		return View{Kind: KindRun, Run: &run}, nil
	case KindMarket:
		if raw.Market == nil {
			return View{}, fmt.Errorf("transform: market record at %s has no payload", address)
		}
		market, err := TransformMarket(address, *raw.Market)
		if err != nil {
			return View{}, err
		}
		return View{Kind: KindMarket, Market: &market}, nil
	default:
		return View{}, fmt.Errorf("transform: record at %s has unknown kind %d", address, raw.Kind)
	}
}

// TransformJob widens a raw job record into its view form.
func TransformJob(address string, raw RawJob) (Job, error) {
	state, err := jobState(raw.State)
	if err != nil {
		return Job{}, fmt.Errorf("transform: job %s: %w", address, err)
	}
	return Job{
		Address: address,
		Market:  raw.Market,
		Node:    raw.Node,
		Payer:   raw.Payer,
		Project: raw.Project,
		Price:   raw.Price,
		State:   state,
		Started: UnixTime(raw.TimeStart),
		Ended:   UnixTime(raw.TimeEnd),
		Timeout: time.Duration(raw.Timeout) * time.Second,
		Spec:    ContentID(raw.SpecHash),
		Result:  ContentID(raw.ResultSum),
	}, nil
}

// TransformRun widens a raw claim record into its view form.
func TransformRun(address string, raw RawRun) Run {
	return Run{
		Address: address,
		Job:     raw.Job,
		Node:    raw.Node,
		Payer:   raw.Payer,
		Time:    UnixTime(raw.Time),
	}
}

// TransformMarket widens a raw market record into its view form.
func TransformMarket(address string, raw RawMarket) (Market, error) {
	queueType, err := marketQueueType(raw.QueueType)
	if err != nil {
		return Market{}, fmt.Errorf("transform: market %s: %w", address, err)
	}
	return Market{
		Address:    address,
		Project:    raw.Project,
		Vault:      raw.Vault,
		QueueType:  queueType,
		JobPrice:   raw.JobPrice,
		JobTimeout: time.Duration(raw.JobTimeout) * time.Second,
	}, nil
}

// UnixTime converts a ledger timestamp to time.Time. Zero stays the zero
// time, which marks "not set" fields like a queued job's start time.
func UnixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func jobState(raw uint8) (JobState, error) {
	switch raw {
	case rawJobQueued:
		return JobQueued, nil
	case rawJobRunning:
		return JobRunning, nil
	case rawJobCompleted:
		return JobCompleted, nil
	case rawJobStopped:
		return JobStopped, nil
	default:
		return "", fmt.Errorf("unknown job state discriminant %d", raw)
	}
}

func marketQueueType(raw uint8) (QueueType, error) {
	switch raw {
	case rawJobQueue:
		return JobQueue, nil
	case rawNodeQueue:
		return NodeQueue, nil
	default:
		return "", fmt.Errorf("unknown queue type discriminant %d", raw)
	}
}
