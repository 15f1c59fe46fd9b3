// Package linden is the retained-mode compositing core of a 2D windowing
// toolkit: a tree of drawable items attached to a window, repainted on
// demand through a pluggable rendering backend.
//
// Linden decides what to redraw, in what order, and into which target —
// the window surface directly, or an intermediate offscreen buffer — and
// composites the results back up the tree. It supports per-item caching,
// per-subtree batched caching, and backend-specific composition policies
// supplied via hook tables.
//
// # Scene graph
//
// Every drawable element is an [Item]; containers are [ItemTree]s, which
// embed an Item and own an ordered child list. Paint order is insertion
// order: later children paint over earlier ones.
//
//	win := linden.NewWindow(platformHandle)
//	root := linden.NewItemTree(win, "root")
//	root.SetGeometry(linden.Rect{Width: 640, Height: 480})
//
//	panel := linden.NewItem(win, "panel")
//	panel.SetGeometry(linden.Rect{X: 16, Y: 16, Width: 200, Height: 120})
//	panel.SetHooks(linden.ItemHooks{
//		OnPaint: func(item *linden.Item, r linden.Renderer, ctx linden.RenderContext) {
//			// draw into ctx.Target with the backend of your choice
//		},
//	})
//	root.AddChild(panel)
//
// State changes (geometry, visibility, opacity, or an explicit
// [Item.MarkDirty]) propagate dirtiness to the root; the owning window's
// render loop then composites damaged areas with [RenderWindow].
//
// # Rendering backends
//
// The compositor drives backends through the narrow [Renderer] interface:
// framebuffer allocation, a single current-target slot, clear, clip, and
// blit. [EbitenRenderer] implements it on [Ebitengine]; from an
// ebiten.Game's Draw:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.SetSurface(screen)
//		linden.RenderWindow(&g.root.Item, g.renderer, linden.Rect{Width: 640, Height: 480})
//	}
//
// # Caching and batching
//
// [Item.SetOffscreen] caches a single item (subtree included) in its own
// buffer, re-rendered only when dirty. [ItemTree.SetChildrenFBO] batches
// all of a tree's children into one shared buffer sized to their union
// bounds, composited in a single blit — or by a custom
// [TreeHooks.OnCompositeChildren] hook.
//
// # Concurrency
//
// Linden is single-threaded by design: the tree is mutated and rendered
// from the owning window's render loop. No locking exists anywhere.
//
// [Ebitengine]: https://ebitengine.org
package linden
