package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	"github.com/jobgrid/jobgrid/internal/logging"
	"github.com/jobgrid/jobgrid/internal/records"
)

// fakeClassifier resolves payloads against a fixed table keyed by the
// payload bytes themselves.
type fakeClassifier struct {
	table map[string]records.Raw
}

func (c *fakeClassifier) Identify(data []byte) records.Kind {
	raw, ok := c.table[string(data)]
	if !ok {
		return records.KindUnknown
	}
	return raw.Kind
}

func (c *fakeClassifier) Decode(kind records.Kind, data []byte) (records.Raw, error) {
	raw, ok := c.table[string(data)]
	if !ok {
		return records.Raw{}, errors.New("no such record")
	}
	return raw, nil
}

// fakeLookup answers point queries from fixed maps and can be flipped into
// a failing state.
type fakeLookup struct {
	mu   sync.Mutex
	jobs map[string]records.RawJob
	runs map[string][]records.RawRun
	fail bool
}

func (l *fakeLookup) Job(ctx context.Context, address string) (records.RawJob, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail {
		return records.RawJob{}, errors.New("lookup unavailable")
	}
	job, ok := l.jobs[address]
	if !ok {
		return records.RawJob{}, errspkg.ErrNotFound
	}
	return job, nil
}

func (l *fakeLookup) RunsForJob(ctx context.Context, job string) ([]records.RawRun, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail {
		return nil, errors.New("lookup unavailable")
	}
	return l.runs[job], nil
}

func (l *fakeLookup) setFail(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fail = fail
}

// scriptedSource yields its notifications in order, then either fails with
// err or blocks until cancelled.
type scriptedSource struct {
	notifications []Notification
	err           error

	mu   sync.Mutex
	next int
}

func (s *scriptedSource) Receive(ctx context.Context) (Notification, error) {
	s.mu.Lock()
	if s.next < len(s.notifications) {
		n := s.notifications[s.next]
		s.next++
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()

	if s.err != nil {
		return Notification{}, s.err
	}
	<-ctx.Done()
	return Notification{}, ctx.Err()
}

func (s *scriptedSource) Close() error { return nil }

// fakeChannel hands out its sources in order and counts opens. Once the
// script is exhausted further opens block until cancelled.
type fakeChannel struct {
	mu      sync.Mutex
	sources []*scriptedSource
	opens   atomic.Int32
}

func (c *fakeChannel) Open(ctx context.Context, program string) (Source, error) {
	c.opens.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sources) == 0 {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	src := c.sources[0]
	c.sources = c.sources[1:]
	return src, nil
}

func newTestMonitor(t *testing.T, channel Channel, classifier Classifier, lookup Lookup) *Monitor {
	t.Helper()
	m, err := New("program-1", channel, classifier, lookup, logging.NopServiceLogger(),
		WithBackoffDelay(time.Millisecond))
	if err != nil {
		t.Fatalf("failed to construct monitor: %v", err)
	}
	return m
}

func collectDetailed(t *testing.T, events <-chan Event, n int) []Event {
	t.Helper()
	out := make([]Event, 0, n)
	for len(out) < n {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("stream closed after %d of %d events", len(out), n)
			}
			out = append(out, ev)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func collectSimple(t *testing.T, events <-chan SimpleEvent, n int) []SimpleEvent {
	t.Helper()
	out := make([]SimpleEvent, 0, n)
	for len(out) < n {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("stream closed after %d of %d events", len(out), n)
			}
			out = append(out, ev)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func waitClosed[E any](t *testing.T, events <-chan E) {
	t.Helper()
	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("expected closed stream, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stream to close")
	}
}
