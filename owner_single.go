//go:build vks_singlethread

package vks

// Single-threaded ownership cell. Identical contract to the default variant
// minus the atomics; the caller guarantees all wrappers are used from one
// goroutine.
type shared struct {
	refs    int64
	destroy func()
}

func (s *shared) init(destroy func()) {
	s.refs = 1
	s.destroy = destroy
}

func (s *shared) Retain() {
	s.refs++
	if s.refs <= 1 {
		panic("vks: retain of a released object")
	}
}

func (s *shared) Release() {
	s.refs--
	switch {
	case s.refs == 0:
		s.destroy()
	case s.refs < 0:
		panic("vks: release of an already destroyed object")
	}
}
