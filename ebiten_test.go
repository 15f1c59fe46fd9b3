package linden

import (
	"errors"
	"testing"
)

func TestCreateFramebufferRejectsBadSizes(t *testing.T) {
	r := NewEbitenRenderer()
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {maxFramebufferDim + 1, 10}} {
		fb, err := r.CreateFramebuffer(sz[0], sz[1])
		if fb != nil || err == nil {
			t.Errorf("CreateFramebuffer(%d, %d) = %v, %v; want nil, error", sz[0], sz[1], fb, err)
		}
		if err != nil && !errors.Is(err, ErrFramebufferSize) {
			t.Errorf("error = %v, want ErrFramebufferSize", err)
		}
	}
}

func TestCreateFramebufferExactSize(t *testing.T) {
	r := NewEbitenRenderer()
	fb, err := r.CreateFramebuffer(100, 50)
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}
	defer r.DestroyFramebuffer(fb)

	w, h := fb.Size()
	if w != 100 || h != 50 {
		t.Errorf("Size = %dx%d, want exactly 100x50", w, h)
	}
	b := fb.(*ebitenFramebuffer).Image().Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("image bounds = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestFramebufferPoolReuse(t *testing.T) {
	r := NewEbitenRenderer()
	fb1, err := r.CreateFramebuffer(64, 64)
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}
	img1 := fb1.(*ebitenFramebuffer).Image()
	r.DestroyFramebuffer(fb1)

	fb2, err := r.CreateFramebuffer(64, 64)
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}
	defer r.DestroyFramebuffer(fb2)
	if fb2.(*ebitenFramebuffer).Image() != img1 {
		t.Error("same-size reallocation should reuse the pooled image")
	}
}

func TestFramebufferPoolSeparatesSizes(t *testing.T) {
	r := NewEbitenRenderer()
	fb1, _ := r.CreateFramebuffer(32, 32)
	img1 := fb1.(*ebitenFramebuffer).Image()
	r.DestroyFramebuffer(fb1)

	fb2, err := r.CreateFramebuffer(32, 64)
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}
	defer r.DestroyFramebuffer(fb2)
	if fb2.(*ebitenFramebuffer).Image() == img1 {
		t.Error("different sizes must not share pooled images")
	}
}

func TestDestroyFramebufferNilSafe(t *testing.T) {
	r := NewEbitenRenderer()
	r.DestroyFramebuffer(nil)
	r.DestroyFramebuffer(&fakeFramebuffer{}) // foreign backend, ignored
}

func TestSetTargetResetsClip(t *testing.T) {
	r := NewEbitenRenderer()
	fb, err := r.CreateFramebuffer(16, 16)
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}
	defer r.DestroyFramebuffer(fb)

	r.SetClipRect(Rect{Width: 4, Height: 4})
	if !r.hasClip {
		t.Fatal("clip should be set")
	}
	r.SetTarget(FBOTarget(fb))
	if r.hasClip {
		t.Error("SetTarget should reset the clip to the full target")
	}
	if r.target != fb.(*ebitenFramebuffer).Image() {
		t.Error("target slot should point at the FBO image")
	}
}
