// Package records holds the typed views of the three monitored account
// kinds and the pure transforms that produce them from decoded raw records.
// Nothing here performs I/O; values live only for the duration of the
// notification that produced them.
package records

import "time"

// Kind identifies which account kind a raw record or view represents.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindJob
	KindRun
	KindMarket
)

func (k Kind) String() string {
	switch k {
	case KindJob:
		return "job"
	case KindRun:
		return "run"
	case KindMarket:
		return "market"
	default:
		return "unknown"
	}
}

// JobState is the lifecycle state of a posted job.
type JobState string

const (
	JobQueued    JobState = "queued"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobStopped   JobState = "stopped"
)

// QueueType tells whether a market queues waiting jobs or waiting nodes.
type QueueType string

const (
	JobQueue  QueueType = "job"
	NodeQueue QueueType = "node"
)

// RawJob is a decoded job account as produced by a Classifier. Numeric
// fields keep their on-ledger representation; Transform widens them.
type RawJob struct {
	Market    string
	Node      string
	Payer     string
	Project   string
	Price     uint64
	State     uint8
	TimeStart int64
	TimeEnd   int64
	Timeout   int64
	SpecHash  [32]byte
	ResultSum [32]byte
}

// RawRun is a decoded claim account: a node asserting it runs a job.
type RawRun struct {
	Job   string
	Node  string
	Payer string
	Time  int64
}

// RawMarket is a decoded market account.
type RawMarket struct {
	Project    string
	Vault      string
	QueueType  uint8
	JobPrice   uint64
	JobTimeout int64
}

// Raw is the tagged union a Classifier yields: exactly one of the pointers
// is set, matching Kind.
type Raw struct {
	Kind   Kind
	Job    *RawJob
	Run    *RawRun
	Market *RawMarket
}

// Job is the application-level view of a job account. A queued job has a
// zero Started time; once a claim is observed the job presents as running
// on the claiming node from the claim time.
type Job struct {
	Address string
	Market  string
	Node    string
	Payer   string
	Project string
	Price   uint64
	State   JobState
	Started time.Time
	Ended   time.Time
	Timeout time.Duration
	Spec    string
	Result  string
}

// ApplyClaim folds a node's claim into the job view.
func (j *Job) ApplyClaim(node string, at time.Time) {
	j.State = JobRunning
	j.Node = node
	j.Started = at
}

// ApplyRun folds a claim record into the job view.
func (j *Job) ApplyRun(r Run) {
	j.ApplyClaim(r.Node, r.Time)
}

// Run is the application-level view of a claim account.
type Run struct {
	Address string
	Job     string
	Node    string
	Payer   string
	Time    time.Time
}

// Market is the application-level view of a market account.
type Market struct {
	Address    string
	Project    string
	Vault      string
	QueueType  QueueType
	JobPrice   uint64
	JobTimeout time.Duration
}

// View is the tagged union flowing from the transformer through the
// correlator: exactly one of the pointers is set, matching Kind.
type View struct {
	Kind   Kind
	Job    *Job
	Run    *Run
	Market *Market
}

// Address returns the account address of whichever entity the view holds.
func (v View) Address() string {
	switch v.Kind {
	case KindJob:
		if v.Job != nil {
			return v.Job.Address
		}
	case KindRun:
		if v.Run != nil {
			return v.Run.Address
		}
	case KindMarket:
		if v.Market != nil {
			return v.Market.Address
		}
	}
	return ""
}
