package linden

import "math"

// RenderWindow composites the subtree rooted at root into its window
// surface, clipped to clip. This is the entry point the owning window's
// render loop calls once per frame (or per damaged area).
// No-op on nil root or renderer.
func RenderWindow(root *Item, r Renderer, clip Rect) {
	if root == nil || r == nil {
		return
	}
	ctx := NewWindowContext(root.window, clip, 1.0)
	r.SetTarget(ctx.Target)
	Render(root, r, ctx, clip)
}

// Render performs one compositor traversal step for n against the caller's
// current target. ctx describes that target; clip is the incoming clip
// rectangle in target coordinates. Hook owners that replace the standard
// per-child call use Render to invoke the default recursion.
//
// Invisible or fully transparent items are removed from the pass entirely,
// children included. An empty clip intersection stops traversal.
func Render(n *Item, r Renderer, ctx RenderContext, clip Rect) {
	if n == nil || r == nil || n.disposed {
		return
	}
	if !n.visible || n.opacity <= 0 {
		return
	}
	abs := n.geometry.Translate(ctx.Transform[4], ctx.Transform[5])
	clipped := abs.Intersect(clip)
	if clipped.Empty() {
		return
	}

	// Per-node caching: render into the item's own buffer only when dirty
	// or absent, then composite the buffer and stop. A cached item is
	// opaque to the outer caller, so this inner render is where a tree's
	// children are actually drawn.
	if n.offscreen && ctx.AllowCaching {
		renderCached(n, r, ctx, abs, clipped)
		return
	}

	cctx := ctx
	cctx.Viewport = clipped
	cctx.OpacityFactor *= n.opacity
	if cctx.OpacityFactor < 1.0 {
		cctx.RequiresAlphaBlending = true
	}
	paintAndDescend(n, r, cctx, abs, clipped)
}

// paintAndDescend invokes the paint hook against the current target, then
// descends into children for trees. ctx already has the item's opacity
// folded in; abs is the item's rectangle in target coordinates.
func paintAndDescend(n *Item, r Renderer, ctx RenderContext, abs, clipped Rect) {
	if n.hooks.OnPaint != nil {
		r.SetClipRect(clipped)
		n.hooks.OnPaint(n, r, ctx)
	}
	t := n.tree
	if t == nil {
		return
	}

	// Children are positioned in the tree's content space.
	childCtx := ctx
	childCtx.Transform[4] = abs.X
	childCtx.Transform[5] = abs.Y

	if t.childrenFBO && len(t.children) > 0 {
		renderBatchedChildren(t, r, childCtx, clipped)
		return
	}
	for _, c := range t.children {
		if shouldRenderToFBO(t, c, childCtx) {
			// No batch pass is active to pick this child up; it is
			// dropped for the frame. See ShouldRenderToFBO.
			debugWarnSkippedChild(t, c)
			continue
		}
		Render(c, r, childCtx, clipped)
	}
}

// renderCached implements the per-node offscreen path: lazily (re)render
// the item into its own buffer, then blit the buffer at the item's position
// into the caller's current target.
func renderCached(n *Item, r Renderer, ctx RenderContext, abs, clipped Rect) {
	w := int(math.Ceil(n.geometry.Width))
	h := int(math.Ceil(n.geometry.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if n.buffer != nil {
		bw, bh := n.buffer.Size()
		if bw != w || bh != h {
			n.releaseBuffer()
			n.bufferDirty = true
		}
	}
	// The buffer bakes in the accumulated opacity, so a change anywhere in
	// the ancestor chain invalidates it even though dirtiness only
	// propagates upward.
	factor := ctx.OpacityFactor * n.opacity
	if n.buffer == nil || n.bufferDirty || n.bufferFactor != factor {
		if n.buffer == nil {
			fb, err := r.CreateFramebuffer(w, h)
			if err != nil {
				// Dirty stays set; the subtree is absent this frame and
				// retried on the next.
				debugWarnAllocFailure(n, w, h, err)
				return
			}
			n.buffer = fb
			n.renderer = r
		}
		local := Rect{Width: n.geometry.Width, Height: n.geometry.Height}
		fctx := NewFBOContext(n.buffer, local, factor, false)
		// Rebase so the item's own origin lands at buffer pixel (0,0).
		fctx.Transform[4] = -n.geometry.X
		fctx.Transform[5] = -n.geometry.Y

		prev := ctx.Target
		r.SetTarget(fctx.Target)
		r.Clear(ColorTransparent)
		paintAndDescend(n, r, fctx, local, local)
		r.SetTarget(prev)

		n.bufferDirty = false
		n.bufferFactor = factor
		n.Damage.Clear()
	}
	r.SetClipRect(clipped)
	r.Blit(n.buffer, Rect{Width: float64(w), Height: float64(h)}, abs)
}

// renderBatchedChildren implements the subtree batching path: lazily
// repopulate the shared children buffer, then composite it in one step.
// ctx is the children's context (its translation is the tree's content
// origin in target coordinates).
func renderBatchedChildren(t *ItemTree, r Renderer, ctx RenderContext, clipped Rect) {
	// ctx carries the accumulated opacity (the tree's own included). The
	// composite blit cannot reapply it, so the batch buffer bakes it in and
	// a change anywhere in the chain forces a repopulate.
	if t.childrenDirty || t.childrenBuffer == nil || t.childrenFactor != ctx.OpacityFactor {
		t.UpdateChildrenBounds()
		w := int(math.Ceil(t.childrenBounds.Width))
		h := int(math.Ceil(t.childrenBounds.Height))
		if w <= 0 || h <= 0 {
			return
		}
		if t.childrenBuffer != nil {
			bw, bh := t.childrenBuffer.Size()
			if bw != w || bh != h {
				t.releaseChildrenBuffer()
			}
		}
		if t.childrenBuffer == nil {
			fb, err := r.CreateFramebuffer(w, h)
			if err != nil {
				debugWarnAllocFailure(&t.Item, w, h, err)
				return
			}
			t.childrenBuffer = fb
			t.renderer = r
		}
		bufRect := Rect{Width: float64(w), Height: float64(h)}
		bctx := NewFBOContext(t.childrenBuffer, bufRect, ctx.OpacityFactor, true)
		// Children render offset into buffer-local coordinates.
		bctx.Transform[4] = -t.childrenBounds.X
		bctx.Transform[5] = -t.childrenBounds.Y

		prev := ctx.Target
		r.SetTarget(bctx.Target)
		r.Clear(ColorTransparent)
		if t.treeHooks.OnChildrenBeginRender != nil {
			t.treeHooks.OnChildrenBeginRender(t, r, bctx)
		}
		for _, c := range t.children {
			if !c.visible {
				continue
			}
			if t.treeHooks.OnChildPaint != nil {
				t.treeHooks.OnChildPaint(t, c, r, bctx, bufRect)
			} else {
				Render(c, r, bctx, bufRect)
			}
		}
		if t.treeHooks.OnChildrenEndRender != nil {
			t.treeHooks.OnChildrenEndRender(t, r, bctx)
		}
		r.SetTarget(prev)
		t.childrenDirty = false
		t.childrenFactor = ctx.OpacityFactor
	}
	if t.childrenBuffer == nil {
		return
	}

	if t.customComposite && t.treeHooks.OnCompositeChildren != nil {
		t.treeHooks.OnCompositeChildren(t, r, t.childrenBuffer, ctx)
		return
	}
	w, h := t.childrenBuffer.Size()
	dst := Rect{
		X:      ctx.Transform[4] + t.childrenBounds.X,
		Y:      ctx.Transform[5] + t.childrenBounds.Y,
		Width:  float64(w),
		Height: float64(h),
	}
	r.SetClipRect(clipped)
	r.Blit(t.childrenBuffer, Rect{Width: float64(w), Height: float64(h)}, dst)
}

// shouldRenderToFBO evaluates the per-child offscreen policy, once per
// child per frame. The hook, when set, overrides the default
// (force-children-FBO or batching enabled).
//
// When this returns true outside an active batch pass, no documented path
// renders the child later; it is skipped for the frame. Debug mode warns
// about each skipped child so the dropped subtree is visible to
// integrators rather than silently absent.
func shouldRenderToFBO(t *ItemTree, c *Item, ctx RenderContext) bool {
	if t.treeHooks.ShouldRenderToFBO != nil {
		return t.treeHooks.ShouldRenderToFBO(t, c, ctx)
	}
	return t.forceChildrenFBO || t.childrenFBO
}
