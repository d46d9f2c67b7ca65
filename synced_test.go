package vks

import (
	"testing"
	"time"
)

func TestSyncedExclusion(t *testing.T) {
	s := NewSynced(42)
	g := s.Lock()

	acquired := make(chan struct{})
	go func() {
		g2 := s.Lock()
		g2.Unlock()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock succeeded while guard held")
	case <-time.After(20 * time.Millisecond):
	}

	g.Unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired after Unlock")
	}
}

func TestSyncedWith(t *testing.T) {
	s := NewSynced(1)
	s.With(func(h *int) { *h = 2 })
	g := s.Lock()
	if g.Handle() != 2 {
		t.Errorf("handle = %d, want 2", g.Handle())
	}
	g.Unlock()
}

func TestSyncedPoison(t *testing.T) {
	s := NewSynced(1)
	func() {
		defer func() { recover() }()
		s.With(func(*int) { panic("boom") })
	}()

	defer func() {
		if recover() == nil {
			t.Error("Lock on poisoned cell did not panic")
		}
	}()
	s.Lock()
}

func TestGuardSet(t *testing.T) {
	s := NewSynced(1)
	g := s.Lock()
	g.Set(9)
	g.Unlock()
	g = s.Lock()
	if g.Handle() != 9 {
		t.Errorf("handle = %d, want 9", g.Handle())
	}
	g.Unlock()
}
