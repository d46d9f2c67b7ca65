package vks

import (
	"testing"
)

func TestDestructionOrder(t *testing.T) {
	d, disp := newTestDevice(t)
	q := d.Queue(0, 0)
	pool, err := NewCommandPool(q, 0)
	if err != nil {
		t.Fatalf("NewCommandPool: %v", err)
	}
	cb, err := pool.AllocateBuffer()
	if err != nil {
		t.Fatalf("AllocateBuffer: %v", err)
	}

	// Drop the parents first. Nothing may be destroyed while the command
	// buffer still holds its chain of references.
	d.Release()
	q.Release()
	pool.Release()
	if n := disp.called("DestroyDevice"); n != 0 {
		t.Error("device destroyed while a child is live")
	}
	if n := disp.called("DestroyCommandPool"); n != 0 {
		t.Error("pool destroyed while a command buffer is live")
	}

	cb.Release()

	want := []string{"FreeCommandBuffers", "DestroyCommandPool", "DestroyDevice"}
	log := disp.callLog()
	got := log[len(log)-len(want):]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("teardown call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDestroyRunsOnce(t *testing.T) {
	d, disp := newTestDevice(t)
	q := d.Queue(0, 0)
	q.Retain()
	q.Release()
	q.Release()
	d.Release()
	if n := disp.called("DestroyDevice"); n != 1 {
		t.Errorf("DestroyDevice called %d times", n)
	}
}

func TestRetainAfterReleasePanics(t *testing.T) {
	d, _ := newTestDevice(t)
	d.Release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	d.Retain()
}

func TestOverReleasePanics(t *testing.T) {
	d, _ := newTestDevice(t)
	d.Release()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	d.Release()
}

func TestSharedFanOut(t *testing.T) {
	// Many siblings share one parent; the parent must survive until the last
	// one goes, regardless of release order.
	d, disp := newTestDevice(t)
	q := d.Queue(0, 0)
	pool, _ := NewCommandPool(q, 0)
	bufs, err := pool.AllocateBuffers(8)
	if err != nil {
		t.Fatalf("AllocateBuffers: %v", err)
	}
	d.Release()
	q.Release()
	pool.Release()
	for _, i := range []int{3, 0, 7, 5, 1, 6, 2} {
		bufs[i].Release()
	}
	if disp.called("DestroyCommandPool") != 0 {
		t.Error("pool destroyed before last buffer")
	}
	bufs[4].Release()
	if disp.called("DestroyCommandPool") != 1 {
		t.Error("pool not destroyed after last buffer")
	}
	if disp.called("DestroyDevice") != 1 {
		t.Error("device not destroyed after last buffer")
	}
}
