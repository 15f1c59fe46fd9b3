package linden

// Framebuffer is an offscreen render target allocated by a Renderer.
// Framebuffers are exclusively owned by the Item or ItemTree that allocated
// them and must be returned via Renderer.DestroyFramebuffer exactly once.
type Framebuffer interface {
	// Size returns the framebuffer's dimensions in pixels.
	Size() (w, h int)
}

// TargetType distinguishes the two kinds of render target.
type TargetType uint8

const (
	// TargetWindow renders into the window surface.
	TargetWindow TargetType = iota
	// TargetFBO renders into an offscreen framebuffer.
	TargetFBO
)

// Target identifies one render destination: either a window surface or an
// offscreen framebuffer. Exactly one of Window/Buffer is set, matching Type.
type Target struct {
	Type   TargetType
	Window *Window
	Buffer Framebuffer
}

// WindowTarget returns a Target addressing the given window's surface.
func WindowTarget(w *Window) Target {
	return Target{Type: TargetWindow, Window: w}
}

// FBOTarget returns a Target addressing the given framebuffer.
func FBOTarget(fb Framebuffer) Target {
	return Target{Type: TargetFBO, Buffer: fb}
}

// Renderer is the narrow capability surface the compositor needs from a
// rendering backend. All operations act on the backend's single mutable
// current-target slot, set via SetTarget.
//
// The compositor redirects the target into offscreen buffers during cache
// and batch passes; every redirection saves and strictly nest-restores the
// slot. This is safe only because the tree is mutated and rendered from a
// single goroutine (the owning window's render loop).
//
// Backend calls are synchronous. CreateFramebuffer is the only operation
// that can fail; on failure the compositor drops the affected subtree for
// the current frame and retries on the next (the dirty flag stays set).
type Renderer interface {
	// CreateFramebuffer allocates an offscreen target of exactly (w, h) pixels.
	CreateFramebuffer(w, h int) (Framebuffer, error)
	// DestroyFramebuffer releases a framebuffer. No-op on nil.
	DestroyFramebuffer(fb Framebuffer)
	// SetTarget replaces the current-target slot.
	SetTarget(t Target)
	// Clear fills the current target with a solid color.
	Clear(c Color)
	// SetClipRect restricts subsequent draws to rect, in current-target
	// coordinates.
	SetClipRect(r Rect)
	// Blit copies srcRect from src into dstRect of the current target,
	// alpha-blending and scaling as needed.
	Blit(src Framebuffer, srcRect, dstRect Rect)
}
