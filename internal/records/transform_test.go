package records

import (
	"crypto/sha256"
	"strings"
	"testing"
	"time"
)

func TestTransformJobMapsFields(t *testing.T) {
	raw := RawJob{
		Market:    "market-1",
		Node:      "node-1",
		Payer:     "payer-1",
		Project:   "project-1",
		Price:     4200,
		State:     1,
		TimeStart: 1700000000,
		TimeEnd:   1700003600,
		Timeout:   3600,
		SpecHash:  [32]byte{0xAB, 0x01},
	}

	job, err := TransformJob("job-1", raw)
	if err != nil {
		t.Fatalf("unexpected transform error: %v", err)
	}

	if job.Address != "job-1" {
		t.Errorf("expected address job-1, got %s", job.Address)
	}
	if job.State != JobRunning {
		t.Errorf("expected state %s, got %s", JobRunning, job.State)
	}
	if got := job.Started.Unix(); got != 1700000000 {
		t.Errorf("expected start 1700000000, got %d", got)
	}
	if job.Timeout != time.Hour {
		t.Errorf("expected timeout 1h, got %s", job.Timeout)
	}
	if job.Spec == "" {
		t.Error("expected spec content id to render")
	}
	if job.Result != "" {
		t.Errorf("expected unset result to render empty, got %s", job.Result)
	}
}

func TestTransformJobStates(t *testing.T) {
	want := map[uint8]JobState{
		0: JobQueued,
		1: JobRunning,
		2: JobCompleted,
		3: JobStopped,
	}
	for raw, state := range want {
		job, err := TransformJob("job", RawJob{State: raw})
		if err != nil {
			t.Fatalf("state %d: unexpected error: %v", raw, err)
		}
		if job.State != state {
			t.Errorf("state %d: expected %s, got %s", raw, state, job.State)
		}
	}
}

func TestTransformJobRejectsUnknownState(t *testing.T) {
	if _, err := TransformJob("job", RawJob{State: 9}); err == nil {
		t.Fatal("expected error for unknown state discriminant")
	}
}

func TestQueuedJobHasNoStartTime(t *testing.T) {
	job, err := TransformJob("job", RawJob{State: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !job.Started.IsZero() {
		t.Errorf("expected zero start time for queued job, got %s", job.Started)
	}
}

func TestTransformRun(t *testing.T) {
	run := TransformRun("run-1", RawRun{Job: "job-1", Node: "node-1", Payer: "payer-1", Time: 100})
	if run.Address != "run-1" || run.Job != "job-1" || run.Node != "node-1" {
		t.Errorf("unexpected run view: %+v", run)
	}
	if run.Time.Unix() != 100 {
		t.Errorf("expected claim time 100, got %d", run.Time.Unix())
	}
}

func TestTransformMarketQueueTypes(t *testing.T) {
	market, err := TransformMarket("m", RawMarket{QueueType: 0, JobPrice: 7, JobTimeout: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if market.QueueType != JobQueue {
		t.Errorf("expected job queue, got %s", market.QueueType)
	}
	if market.JobTimeout != time.Minute {
		t.Errorf("expected 1m timeout, got %s", market.JobTimeout)
	}

	market, err = TransformMarket("m", RawMarket{QueueType: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if market.QueueType != NodeQueue {
		t.Errorf("expected node queue, got %s", market.QueueType)
	}

	if _, err := TransformMarket("m", RawMarket{QueueType: 5}); err == nil {
		t.Fatal("expected error for unknown queue type discriminant")
	}
}

func TestTransformUnion(t *testing.T) {
	view, err := Transform("m", Raw{Kind: KindMarket, Market: &RawMarket{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Kind != KindMarket || view.Market == nil {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Address() != "m" {
		t.Errorf("expected address m, got %s", view.Address())
	}

	if _, err := Transform("x", Raw{Kind: KindJob}); err == nil {
		t.Fatal("expected error for missing payload")
	}
	if _, err := Transform("x", Raw{Kind: KindUnknown}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestApplyRun(t *testing.T) {
	job := Job{Address: "job-1", State: JobQueued}
	job.ApplyRun(Run{Node: "node-9", Time: time.Unix(100, 0)})

	if job.State != JobRunning {
		t.Errorf("expected running, got %s", job.State)
	}
	if job.Node != "node-9" {
		t.Errorf("expected node-9, got %s", job.Node)
	}
	if job.Started.Unix() != 100 {
		t.Errorf("expected start 100, got %d", job.Started.Unix())
	}
}

func TestKindStrings(t *testing.T) {
	if KindJob.String() != "job" || KindRun.String() != "run" || KindMarket.String() != "market" {
		t.Error("unexpected kind strings")
	}
	if KindUnknown.String() != "unknown" || Kind(42).String() != "unknown" {
		t.Error("expected unknown rendering for unrecognized kinds")
	}
}

func TestContentIDRendering(t *testing.T) {
	if got := ContentID([32]byte{}); got != "" {
		t.Errorf("expected empty rendering for zero digest, got %q", got)
	}

	id := ContentID([32]byte{0x01})
	// sha2-256 multihash prefix always renders with the Qm marker.
	if !strings.HasPrefix(id, "Qm") {
		t.Errorf("expected Qm prefix, got %q", id)
	}
	if len(id) != 46 {
		t.Errorf("expected 46-character content id, got %d (%q)", len(id), id)
	}
}

func TestContentIDKnownDigest(t *testing.T) {
	// sha2-256("hello world") in its canonical multihash rendering.
	digest := sha256.Sum256([]byte("hello world"))
	if got := ContentID(digest); got != "Qmf412jQZiuVUtdgnB36FXFX7xg5V6KEbSJ4dpQuhkLyfD" {
		t.Errorf("unexpected content id: %q", got)
	}
}

func TestContentIDDistinguishesDigests(t *testing.T) {
	a := ContentID([32]byte{0x01})
	b := ContentID([32]byte{0x02})
	if a == b {
		t.Errorf("distinct digests rendered identically: %q", a)
	}
	if a != ContentID([32]byte{0x01}) {
		t.Error("expected deterministic rendering")
	}
}
