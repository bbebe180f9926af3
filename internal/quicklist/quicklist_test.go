package quicklist

import (
	"sync"
	"testing"
)

func TestAddAndNames(t *testing.T) {
	l := New()
	l.Add("milk")
	l.Add("eggs")

	names := l.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0] != "milk" || names[1] != "eggs" {
		t.Errorf("names = %v, want [milk eggs]", names)
	}
}

func TestAddDeduplicates(t *testing.T) {
	l := New()
	l.Add("milk")
	l.Add("milk")

	if got := len(l.Names()); got != 1 {
		t.Errorf("expected 1 name after duplicate add, got %d", got)
	}

	// Dedup is exact match; different case is a different entry.
	l.Add("Milk")
	if got := len(l.Names()); got != 2 {
		t.Errorf("expected 2 names, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	l := New()
	l.Add("milk")
	l.Add("eggs")

	l.Remove("milk")
	names := l.Names()
	if len(names) != 1 || names[0] != "eggs" {
		t.Errorf("names = %v, want [eggs]", names)
	}

	// Removing an absent name is a no-op.
	l.Remove("bread")
	if got := len(l.Names()); got != 1 {
		t.Errorf("expected 1 name, got %d", got)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	l := New()
	l.Add("milk")

	names := l.Names()
	names[0] = "mutated"

	if got := l.Names()[0]; got != "milk" {
		t.Errorf("internal list mutated through returned slice: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add("milk")
			l.Names()
			l.Remove("milk")
		}()
	}
	wg.Wait()
}
