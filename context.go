package linden

// identityTransform is the identity affine matrix {a, b, c, d, tx, ty}.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// RenderContext describes one rendering invocation: where pixels go, the
// clip bounds of this pass, and the capability flags paint hooks should
// honor. Contexts are constructed fresh per render call and passed by
// value; they are never persisted across frames.
type RenderContext struct {
	// Target is the destination this pass draws into.
	Target Target

	// Viewport is this pass's clip bounds in target coordinates.
	Viewport Rect

	// OpacityFactor is the accumulated opacity multiplier. Paint hooks
	// multiply it into everything they draw. Each traversal step folds the
	// item's own opacity in before invoking hooks.
	OpacityFactor float64

	// AllowCaching is false while this pass is itself populating a shared
	// batch buffer: a per-node cache built inside a batch pass would bake
	// in buffer-local coordinates and go stale with the batch.
	AllowCaching bool

	// RequiresAlphaBlending is true when OpacityFactor < 1, and always for
	// FBO targets (offscreen results are composited with blending later).
	RequiresAlphaBlending bool

	// Transform is the affine transform {a, b, c, d, tx, ty} from item-local
	// to target coordinates. Constructors initialize it to identity; the
	// traversal accumulates parent origins into the translation slots.
	Transform [6]float64
}

// NewWindowContext returns a context targeting the window surface.
// Caching is allowed: this is the outermost pass.
func NewWindowContext(win *Window, viewport Rect, opacityFactor float64) RenderContext {
	return RenderContext{
		Target:                WindowTarget(win),
		Viewport:              viewport,
		OpacityFactor:         opacityFactor,
		AllowCaching:          true,
		RequiresAlphaBlending: opacityFactor < 1.0,
		Transform:             identityTransform,
	}
}

// NewFBOContext returns a context targeting an offscreen framebuffer.
// isBatch marks a pass that populates a shared batch buffer, which
// disallows nested caching. FBO passes always require alpha blending.
func NewFBOContext(fb Framebuffer, viewport Rect, opacityFactor float64, isBatch bool) RenderContext {
	return RenderContext{
		Target:                FBOTarget(fb),
		Viewport:              viewport,
		OpacityFactor:         opacityFactor,
		AllowCaching:          !isBatch,
		RequiresAlphaBlending: true,
		Transform:             identityTransform,
	}
}
