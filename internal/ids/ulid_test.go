package ids

import (
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestNewProducesValidULIDs(t *testing.T) {
	id := New()
	if len(id) != 26 {
		t.Fatalf("expected 26-character ulid, got %d (%q)", len(id), id)
	}
	if _, err := ulid.Parse(id); err != nil {
		t.Fatalf("generated id does not parse: %v", err)
	}
}

func TestNewIsMonotonicWithinProcess(t *testing.T) {
	prev := New()
	for i := 0; i < 1000; i++ {
		next := New()
		if next <= prev {
			t.Fatalf("expected strictly increasing ids, got %q after %q", next, prev)
		}
		prev = next
	}
}

func TestNewIsSafeForConcurrentUse(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	var mu sync.Mutex
	seen := make(map[string]bool, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				id := New()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
