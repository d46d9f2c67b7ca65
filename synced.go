//go:build !vks_singlethread

package vks

import "sync"

// Synced wraps a raw handle that the foreign interface forbids using from
// multiple threads at once (queues, command pools and the buffers allocated
// from them, descriptor pools, fences, semaphores). Every mutating or
// externally observable use of the handle must happen while holding the
// guard returned by Lock, which makes the exclusivity requirement textually
// visible at each call site instead of a documentation convention.
//
// A cell becomes poisoned when a holder panics inside With. A poisoned cell
// refuses further locking by panicking: the handle may have been left in an
// inconsistent state mid-operation and no recovery is sound.
type Synced[H any] struct {
	mu       sync.Mutex
	poisoned bool
	value    H
}

func NewSynced[H any](value H) *Synced[H] {
	return &Synced[H]{value: value}
}

// Lock blocks until exclusive access is available and returns the guard.
// Panics if the cell is poisoned.
func (s *Synced[H]) Lock() *Guard[H] {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		panic("vks: synced handle poisoned by an earlier panic")
	}
	return &Guard[H]{cell: s}
}

// With runs f with exclusive access to the handle. If f panics the cell is
// poisoned and the panic resumes.
func (s *Synced[H]) With(f func(h *H)) {
	g := s.Lock()
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			s.mu.Unlock()
			panic(r)
		}
		g.Unlock()
	}()
	f(&s.value)
}

// Guard holds exclusive access to the handle inside a Synced cell until
// Unlock is called. Use after Unlock panics.
type Guard[H any] struct {
	cell *Synced[H]
}

func (g *Guard[H]) Handle() H {
	return g.cell.value
}

func (g *Guard[H]) Set(value H) {
	g.cell.value = value
}

func (g *Guard[H]) Unlock() {
	c := g.cell
	g.cell = nil
	c.mu.Unlock()
}
