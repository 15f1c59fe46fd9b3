package linden

// ItemHooks is the extension-point table for leaf items. Tables are
// installed by value via Item.SetHooks; a nil entry means default behavior
// (usually a no-op), so unused hooks cost nothing.
type ItemHooks struct {
	// OnPaint draws the item's own content into the context's target.
	// The context's Transform maps item-local to target coordinates and
	// its OpacityFactor already includes the item's own opacity.
	OnPaint func(item *Item, r Renderer, ctx RenderContext)

	// OnLayout runs after the item's geometry is replaced, before the
	// change is propagated as damage.
	OnLayout func(item *Item)

	// OnMouseEvent handles a button press/release. Return true to consume.
	OnMouseEvent func(item *Item, ev MouseEvent) bool

	// OnKeyEvent handles a key press/release. Return true to consume.
	OnKeyEvent func(item *Item, ev KeyEvent) bool

	// OnMouseMove handles pointer motion in parent coordinates.
	// Return true to consume.
	OnMouseMove func(item *Item, x, y float64) bool

	// OnParentAdded fires after the item is appended to a tree's children.
	OnParentAdded func(item *Item, parent *ItemTree)

	// OnParentRemoved fires before the item is detached from its parent.
	OnParentRemoved func(item *Item, parent *ItemTree)
}

// TreeHooks extends ItemHooks (installed separately on the embedded Item)
// with the container extension points governing child lifecycle, batched
// rendering, and custom composition.
type TreeHooks struct {
	// OnChildAdded fires after a child is appended, before the child's
	// own OnParentAdded.
	OnChildAdded func(tree *ItemTree, child *Item)

	// OnChildRemoved fires when a child is detached, after the child's
	// own OnParentRemoved (reverse order of add, intentionally symmetric).
	OnChildRemoved func(tree *ItemTree, child *Item)

	// OnChildrenBeginRender and OnChildrenEndRender bracket the batch pass
	// that populates the shared children buffer. The context's target is
	// the batch FBO throughout.
	OnChildrenBeginRender func(tree *ItemTree, r Renderer, ctx RenderContext)
	OnChildrenEndRender   func(tree *ItemTree, r Renderer, ctx RenderContext)

	// OnChildPaint, when set, fully replaces the standard per-child render
	// call during the batch pass. The owner must itself invoke Render if
	// the default recursion is still wanted.
	OnChildPaint func(tree *ItemTree, child *Item, r Renderer, ctx RenderContext, clip Rect)

	// ShouldRenderToFBO overrides the default per-child offscreen policy
	// (force-children-FBO or batching enabled). Evaluated once per child
	// per frame.
	ShouldRenderToFBO func(tree *ItemTree, child *Item, ctx RenderContext) bool

	// OnCompositeChildren, when custom composition is enabled, receives the
	// populated shared buffer instead of the default single blit and is
	// solely responsible for using it.
	OnCompositeChildren func(tree *ItemTree, r Renderer, buffer Framebuffer, ctx RenderContext)
}
