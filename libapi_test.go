package jobgrid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/jobgrid/jobgrid/feed/channel"
)

func TestMonitorExportPropagatesErrors(t *testing.T) {
	if _, err := NewMonitor("", nil, nil, nil, nil); !errors.Is(err, ErrProgramRequired) {
		t.Fatalf("expected program required error, got %v", err)
	}
}

func TestTransformExportAliases(t *testing.T) {
	job, err := TransformJob("job-1", RawJob{State: 0})
	if err != nil {
		t.Fatalf("transform alias failed: %v", err)
	}
	if job.State != JobQueued {
		t.Fatalf("expected queued, got %s", job.State)
	}

	view, err := Transform("m-1", Raw{Kind: KindMarket, Market: &RawMarket{}})
	if err != nil {
		t.Fatalf("transform alias failed: %v", err)
	}
	if view.Address() != "m-1" {
		t.Fatalf("expected address m-1, got %q", view.Address())
	}
}

func TestEncodingExportAliases(t *testing.T) {
	payload := map[string]string{"hello": "world"}
	raw, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal alias failed: %v", err)
	}
	if err := Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal alias failed: %v", err)
	}
}

func TestCreateULIDExport(t *testing.T) {
	if id := CreateULID(); len(id) != 26 {
		t.Fatalf("expected 26-character ulid, got %q", id)
	}
}

func TestLoggerExports(t *testing.T) {
	log := NopServiceLogger()
	log.Info("boot", LogFields{"component": "test"})
	NewWatermillAdapter(log).Debug("adapted", nil)
}

// marketClassifier treats every payload as a market record. Enough of a
// Classifier to drive the end-to-end test through the public surface.
type marketClassifier struct{}

func (marketClassifier) Identify(data []byte) Kind { return KindMarket }
func (marketClassifier) Decode(kind Kind, data []byte) (Raw, error) {
	return Raw{Kind: KindMarket, Market: &RawMarket{}}, nil
}

type emptyLookup struct{}

func (emptyLookup) Job(ctx context.Context, address string) (RawJob, error) {
	return RawJob{}, ErrNotFound
}
func (emptyLookup) RunsForJob(ctx context.Context, job string) ([]RawRun, error) {
	return nil, nil
}

func TestEndToEndThroughPublicSurface(t *testing.T) {
	f, err := channel.Build(context.Background(), &Config{FeedSystem: "channel"}, watermill.NopLogger{})
	if err != nil {
		t.Fatalf("feed build failed: %v", err)
	}

	ch, err := NewFeedChannel(f.Subscriber, "", NopServiceLogger())
	if err != nil {
		t.Fatalf("feed channel failed: %v", err)
	}

	m, err := NewMonitor("program-1", ch, marketClassifier{}, emptyLookup{}, NopServiceLogger())
	if err != nil {
		t.Fatalf("monitor construction failed: %v", err)
	}

	events, stop := m.Events(context.Background())
	defer stop()

	// Let the supervisor subscribe before publishing; the in-memory feed
	// drops messages published before a subscription exists.
	time.Sleep(50 * time.Millisecond)

	if err := PublishNotification(f.Publisher, "", "program-1", "market-1", []byte("x")); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Kind != KindMarket || ev.Address() != "market-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}
