package linden

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxFramebufferDim caps framebuffer dimensions; ebiten rejects larger
// textures by panicking, which the error taxonomy here does not allow.
const maxFramebufferDim = 16384

// ErrFramebufferSize is returned by CreateFramebuffer for non-positive or
// oversized dimensions.
var ErrFramebufferSize = errors.New("linden: invalid framebuffer size")

// EbitenRenderer implements the Renderer capability surface on Ebitengine.
// The window surface is the *ebiten.Image handed to the game's Draw; call
// SetSurface with it each frame before RenderWindow.
//
// Framebuffers are recycled through an exact-size pool, so steady-state
// frames perform no image allocations.
type EbitenRenderer struct {
	surface *ebiten.Image // current window surface, set per frame
	target  *ebiten.Image // current-target slot (surface or an FBO image)
	clip    Rect
	hasClip bool
	pool    framebufferPool
}

// NewEbitenRenderer returns a renderer with an empty framebuffer pool.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// SetSurface installs the window surface for this frame. The current
// target resets to the surface.
func (r *EbitenRenderer) SetSurface(screen *ebiten.Image) {
	r.surface = screen
	r.target = screen
	r.hasClip = false
}

// ebitenFramebuffer wraps a pooled ebiten image as a Framebuffer.
type ebitenFramebuffer struct {
	img  *ebiten.Image
	w, h int
}

// Size returns the framebuffer's dimensions in pixels.
func (f *ebitenFramebuffer) Size() (int, int) {
	return f.w, f.h
}

// Image returns the underlying ebiten image, for custom composite hooks
// that want to draw with ebiten directly.
func (f *ebitenFramebuffer) Image() *ebiten.Image {
	return f.img
}

// CreateFramebuffer allocates (or recycles) a cleared offscreen image of
// exactly (w, h) pixels.
func (r *EbitenRenderer) CreateFramebuffer(w, h int) (Framebuffer, error) {
	if w <= 0 || h <= 0 || w > maxFramebufferDim || h > maxFramebufferDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrFramebufferSize, w, h)
	}
	return &ebitenFramebuffer{img: r.pool.acquire(w, h), w: w, h: h}, nil
}

// DestroyFramebuffer returns a framebuffer's image to the pool.
// No-op on nil or on framebuffers from another backend.
func (r *EbitenRenderer) DestroyFramebuffer(fb Framebuffer) {
	ef, ok := fb.(*ebitenFramebuffer)
	if !ok || ef == nil {
		return
	}
	r.pool.release(ef.img)
	ef.img = nil
}

// SetTarget replaces the current-target slot. The clip resets to the full
// target.
func (r *EbitenRenderer) SetTarget(t Target) {
	switch t.Type {
	case TargetWindow:
		r.target = r.surface
	case TargetFBO:
		if ef, ok := t.Buffer.(*ebitenFramebuffer); ok {
			r.target = ef.img
		} else {
			r.target = nil
		}
	}
	r.hasClip = false
}

// Clear fills the current target with a solid color, ignoring the clip.
func (r *EbitenRenderer) Clear(c Color) {
	if r.target == nil {
		return
	}
	if c == (Color{}) {
		r.target.Clear()
		return
	}
	r.target.Fill(toRGBA(c))
}

// SetClipRect restricts subsequent blits to rect, in current-target
// coordinates.
func (r *EbitenRenderer) SetClipRect(rect Rect) {
	r.clip = rect
	r.hasClip = true
}

// Blit copies srcRect from src into dstRect of the current target,
// alpha-blending and scaling as needed.
func (r *EbitenRenderer) Blit(src Framebuffer, srcRect, dstRect Rect) {
	ef, ok := src.(*ebitenFramebuffer)
	if !ok || ef == nil || ef.img == nil || r.target == nil {
		return
	}
	if srcRect.Empty() || dstRect.Empty() {
		return
	}
	dst := r.target
	if r.hasClip {
		clipBounds := image.Rect(
			int(r.clip.X), int(r.clip.Y),
			int(r.clip.X+r.clip.Width), int(r.clip.Y+r.clip.Height),
		).Intersect(dst.Bounds())
		if clipBounds.Empty() {
			return
		}
		// SubImage shares the parent's coordinate space, so absolute
		// destination coordinates stay valid.
		dst = dst.SubImage(clipBounds).(*ebiten.Image)
	}
	part := ef.img.SubImage(image.Rect(
		int(srcRect.X), int(srcRect.Y),
		int(srcRect.X+srcRect.Width), int(srcRect.Y+srcRect.Height),
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	if srcRect.Width != dstRect.Width || srcRect.Height != dstRect.Height {
		op.GeoM.Scale(dstRect.Width/srcRect.Width, dstRect.Height/srcRect.Height)
	}
	op.GeoM.Translate(dstRect.X, dstRect.Y)
	dst.DrawImage(part, &op)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func toRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// --- Framebuffer pool ---

// framebufferPool recycles offscreen ebiten images keyed by exact
// dimensions. After warmup, acquire/release perform no allocations.
type framebufferPool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// acquire returns a cleared image of exactly (w, h) pixels, reusing a
// pooled one when available.
func (p *framebufferPool) acquire(w, h int) *ebiten.Image {
	key := poolKey(w, h)
	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}
	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// release returns an image to the pool. It is cleared on next acquire, not
// here (avoids redundant GPU work if released then immediately re-acquired).
func (p *framebufferPool) release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}
