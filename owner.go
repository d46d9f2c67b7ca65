//go:build !vks_singlethread

package vks

import "sync/atomic"

// shared is the reference-counted ownership cell embedded in every wrapper
// type. A wrapper starts with one reference; children take additional
// references on their parent with Retain and give them back with Release.
// The destroy hook runs exactly once, when the count reaches zero, which is
// what makes teardown follow the ownership graph in reverse-topological
// order: a parent's foreign destroy call cannot be issued while any child
// still holds a reference.
//
// This is the multi-threaded variant. Build with the vks_singlethread tag to
// swap in non-atomic counting.
type shared struct {
	refs    int64
	destroy func()
}

func (s *shared) init(destroy func()) {
	s.refs = 1
	s.destroy = destroy
}

// Retain takes an additional reference. O(1), never fails on a live object;
// retaining an object whose count already reached zero is a programming
// error and panics.
func (s *shared) Retain() {
	if atomic.AddInt64(&s.refs, 1) <= 1 {
		panic("vks: retain of a released object")
	}
}

// Release gives back one reference. When the last reference is released the
// destroy hook runs. Releasing more times than retained panics.
func (s *shared) Release() {
	switch n := atomic.AddInt64(&s.refs, -1); {
	case n == 0:
		s.destroy()
	case n < 0:
		panic("vks: release of an already destroyed object")
	}
}
