//go:build vks_singlethread

package vks

// Single-threaded Synced variant: a checked borrow instead of a mutex. A
// re-entrant Lock is the single-threaded equivalent of a deadlock and
// panics immediately, which keeps the double-begin and reset-while-recording
// contract violations loud in both build modes.
type Synced[H any] struct {
	locked   bool
	poisoned bool
	value    H
}

func NewSynced[H any](value H) *Synced[H] {
	return &Synced[H]{value: value}
}

func (s *Synced[H]) Lock() *Guard[H] {
	if s.poisoned {
		panic("vks: synced handle poisoned by an earlier panic")
	}
	if s.locked {
		panic("vks: re-entrant lock of a synced handle")
	}
	s.locked = true
	return &Guard[H]{cell: s}
}

func (s *Synced[H]) With(f func(h *H)) {
	g := s.Lock()
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			s.locked = false
			panic(r)
		}
		g.Unlock()
	}()
	f(&s.value)
}

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
	c.locked = false
}
