package vks

import (
	"errors"
	"testing"
	"time"

	"github.com/vulkayes/vulkayes-go/foreign"
)

func newTestCommandBuffer(t *testing.T) (*CommandBuffer, *fakeDispatch) {
	d, disp := newTestDevice(t)
	q := d.Queue(0, 0)
	pool, err := NewCommandPool(q, foreign.CommandPoolCreateResetCommandBuffer)
	if err != nil {
		t.Fatalf("NewCommandPool: %v", err)
	}
	cb, err := pool.AllocateBuffer()
	if err != nil {
		t.Fatalf("AllocateBuffer: %v", err)
	}
	return cb, disp
}

func TestRecordDispatch(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)

	r, err := cb.Begin(BeginInfo{OneTime: true})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	r.Dispatch([3]uint32{1, 1, 1})
	if err := r.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	want := []string{"BeginCommandBuffer", "CmdDispatch", "EndCommandBuffer"}
	log := disp.callLog()
	got := log[len(log)-len(want):]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBeginHoldsGuard(t *testing.T) {
	cb, _ := newTestCommandBuffer(t)

	r, err := cb.Begin(BeginInfo{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		g := cb.Handle()
		g.Unlock()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("buffer guard acquired during a live recording session")
	case <-time.After(20 * time.Millisecond):
	}

	if err := r.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("guard never released after End")
	}
}

func TestBeginErrorReleasesGuard(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)
	disp.fail("BeginCommandBuffer", foreign.OutOfHostMemory)

	if _, err := cb.Begin(BeginInfo{}); !errors.Is(err, foreign.ErrOutOfHostMemory) {
		t.Fatalf("Begin err = %v", err)
	}

	// The guard must be free again.
	g := cb.Handle()
	g.Unlock()
}

func TestRecordAutoEnd(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)

	err := cb.Record(BeginInfo{}, func(r *Recording) error {
		r.Dispatch([3]uint32{2, 2, 1})
		return nil
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if disp.called("EndCommandBuffer") != 1 {
		t.Error("recording not ended")
	}
}

func TestRecordEndsOpenRenderPass(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)
	rp, fb := newTestRenderTarget(t, cb.Device())

	err := cb.Record(BeginInfo{}, func(r *Recording) error {
		p := r.BeginRenderPass(rp, fb, foreign.Rect2D{}, nil, true)
		p.Draw(3, 1, 0, 0)
		return nil
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if disp.called("CmdEndRenderPass") != 1 {
		t.Error("open render pass was not closed")
	}
	if disp.called("EndCommandBuffer") != 1 {
		t.Error("recording not ended")
	}
}

func TestRecordEndsOnPanic(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic did not propagate")
			}
		}()
		cb.Record(BeginInfo{}, func(*Recording) error {
			panic("boom")
		})
	}()

	if disp.called("EndCommandBuffer") != 1 {
		t.Error("recording not ended after panic")
	}
}

func TestRenderPassFlow(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)
	rp, fb := newTestRenderTarget(t, cb.Device())

	r, err := cb.Begin(BeginInfo{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	p := r.BeginRenderPass(rp, fb, foreign.Rect2D{
		Extent: foreign.Extent2D{Width: 16, Height: 16},
	}, []foreign.ClearValue{{Color: [4]float32{0, 0, 0, 1}}}, true)
	p.Draw(3, 1, 0, 0)
	p.NextSubpass(true)
	p.DrawIndexed(6, 1, 0, 0, 0)
	r2 := p.EndRenderPass()
	if err := r2.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	want := []string{
		"BeginCommandBuffer", "CmdBeginRenderPass", "CmdDraw",
		"CmdNextSubpass", "CmdDrawIndexed", "CmdEndRenderPass", "EndCommandBuffer",
	}
	log := disp.callLog()
	got := log[len(log)-len(want):]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestConsumedRecordingPanics(t *testing.T) {
	cb, _ := newTestCommandBuffer(t)

	r, err := cb.Begin(BeginInfo{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := r.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("use of ended recording did not panic")
		}
	}()
	r.Dispatch([3]uint32{1, 1, 1})
}

func TestRecordingConsumedByRenderPass(t *testing.T) {
	cb, _ := newTestCommandBuffer(t)
	rp, fb := newTestRenderTarget(t, cb.Device())

	err := cb.Record(BeginInfo{}, func(r *Recording) error {
		p := r.BeginRenderPass(rp, fb, foreign.Rect2D{}, nil, true)
		defer func() {
			if recover() == nil {
				t.Error("dispatch inside render pass did not panic")
			}
			p.EndRenderPass()
		}()
		r.Dispatch([3]uint32{1, 1, 1})
		return nil
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestPushConstantsSize(t *testing.T) {
	cb, _ := newTestCommandBuffer(t)
	layout, err := NewPipelineLayout(cb.Device(), nil, nil)
	if err != nil {
		t.Fatalf("NewPipelineLayout: %v", err)
	}

	err = cb.Record(BeginInfo{}, func(r *Recording) error {
		if err := r.PushConstants(layout, foreign.ShaderStageCompute, 0, []byte{1, 2, 3}); !errors.Is(err, ErrPushConstantSizeInvalid) {
			t.Errorf("odd size err = %v", err)
		}
		return r.PushConstants(layout, foreign.ShaderStageCompute, 0, []byte{1, 2, 3, 4})
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestFillAndUpdateBuffer(t *testing.T) {
	cb, disp := newTestCommandBuffer(t)
	buf, err := NewBuffer(cb.Device(), 64, foreign.BufferUsageTransferDst, foreign.SharingModeExclusive, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	err = cb.Record(BeginInfo{}, func(r *Recording) error {
		if err := r.FillBuffer(buf, 2, 4, 0); !errors.Is(err, ErrDataSizeInvalid) {
			t.Errorf("misaligned offset err = %v", err)
		}
		if err := r.FillBuffer(buf, 0, 128, 0); !errors.Is(err, ErrRangeOutOfBounds) {
			t.Errorf("oversized fill err = %v", err)
		}
		if err := r.UpdateBuffer(buf, 0, []byte{1, 2, 3}); !errors.Is(err, ErrDataSizeInvalid) {
			t.Errorf("odd update size err = %v", err)
		}
		if disp.called("CmdFillBuffer")+disp.called("CmdUpdateBuffer") != 0 {
			t.Error("rejected command reached the foreign interface")
		}

		if err := r.FillBuffer(buf, 0, foreign.WholeSize, 0xDEADBEEF); err != nil {
			return err
		}
		return r.UpdateBuffer(buf, 4, []byte{1, 2, 3, 4})
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if disp.called("CmdFillBuffer") != 1 || disp.called("CmdUpdateBuffer") != 1 {
		t.Error("fill/update not recorded")
	}
}

func newTestRenderTarget(t *testing.T, d *Device) (*RenderPass, *Framebuffer) {
	t.Helper()
	rp, err := NewRenderPass(d, foreign.RenderPassCreateInfo{
		Attachments: []foreign.AttachmentDescription{{
			Format:      foreign.FormatB8G8R8A8Unorm,
			Samples:     foreign.SampleCount1,
			LoadOp:      foreign.AttachmentLoadOpClear,
			StoreOp:     foreign.AttachmentStoreOpStore,
			FinalLayout: foreign.ImageLayoutPresentSrc,
		}},
		Subpasses: []foreign.SubpassDescription{{
			BindPoint: foreign.PipelineBindPointGraphics,
			ColorAttachments: []foreign.AttachmentReference{
				{Attachment: 0, Layout: foreign.ImageLayoutColorAttachmentOptimal},
			},
		}, {
			BindPoint: foreign.PipelineBindPointGraphics,
		}},
	})
	if err != nil {
		t.Fatalf("NewRenderPass: %v", err)
	}
	img, err := NewImage(d, ImageOptions{
		Type:   foreign.ImageType2D,
		Format: foreign.FormatB8G8R8A8Unorm,
		Extent: foreign.Extent3D{Width: 16, Height: 16, Depth: 1},
		Usage:  foreign.ImageUsageColorAttachment,
	})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	view, err := NewImageView(img, foreign.ImageViewType2D, img.Format(), foreign.ImageSubresourceRange{
		AspectMask: foreign.ImageAspectColor,
		LevelCount: 1,
		LayerCount: 1,
	})
	if err != nil {
		t.Fatalf("NewImageView: %v", err)
	}
	fb, err := NewFramebuffer(rp, []*ImageView{view}, 16, 16, 1)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	return rp, fb
}
