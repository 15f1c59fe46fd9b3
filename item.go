package linden

// ItemType is the closed kind tag distinguishing leaf items from trees.
type ItemType uint8

const (
	// ItemTypeLeaf is a plain drawable node with no children.
	ItemTypeLeaf ItemType = iota
	// ItemTypeTree is a drawable node that owns an ordered child list.
	ItemTypeTree
)

// Item is a single drawable node in the scene graph: geometry, visibility,
// opacity, an optional per-node offscreen buffer, and the paint/input hook
// table. Trees embed an Item; use Tree for the checked downcast.
//
// Geometry is expressed relative to the parent's content space (or the
// window for root items). The parent link is a non-owning back-reference;
// ownership runs parent to child only.
type Item struct {
	// Name is an optional label used in debug diagnostics.
	Name string

	// Parent is the owning tree, or nil for a root item. Parent and the
	// tree's child list are kept bidirectionally consistent by
	// AddChild/RemoveChild; never write it directly.
	Parent *ItemTree

	// UserData is an arbitrary application value carried by the item.
	UserData any

	id     uint64
	window *Window
	typ    ItemType
	tree   *ItemTree // non-nil iff typ == ItemTypeTree

	geometry    Rect
	contentRect Rect // equal to geometry at this layer (margins unimplemented)
	visible     bool
	enabled     bool
	opacity     float64
	zOrder      int

	// Transparent marks do-not-draw-behind areas, Input masks hit testing,
	// Damage accumulates pending-redraw areas. Each is owned by this item.
	Transparent *Region
	Input       *Region
	Damage      *Region

	offscreen    bool
	buffer       Framebuffer
	bufferDirty  bool
	bufferFactor float64  // accumulated opacity the buffer was rendered with
	renderer     Renderer // backend that allocated buffer; releases it too

	hooks    ItemHooks
	disposed bool
}

// itemDefaults sets the initial field values shared by both constructors.
func itemDefaults(n *Item, win *Window) {
	n.id = win.nextItemID()
	n.window = win
	n.visible = true
	n.enabled = true
	n.opacity = 1.0
	n.bufferDirty = true
	n.Transparent = NewRegion()
	n.Input = NewRegion()
	n.Damage = NewRegion()
}

// NewItem creates a leaf item bound to the given window.
// Returns nil if win is nil.
func NewItem(win *Window, name string) *Item {
	if win == nil {
		return nil
	}
	n := &Item{Name: name, typ: ItemTypeLeaf}
	itemDefaults(n, win)
	return n
}

// ID returns the item's window-unique, monotonically assigned id.
// Disposed items report 0.
func (n *Item) ID() uint64 {
	if n == nil {
		return 0
	}
	return n.id
}

// Window returns the window this item is bound to.
func (n *Item) Window() *Window {
	if n == nil {
		return nil
	}
	return n.window
}

// Type returns the item's kind tag.
func (n *Item) Type() ItemType {
	if n == nil {
		return ItemTypeLeaf
	}
	return n.typ
}

// Tree returns the item as an *ItemTree, or nil if it is a leaf.
// This is the only way to reach tree-specific state from an *Item.
func (n *Item) Tree() *ItemTree {
	if n == nil || n.typ != ItemTypeTree {
		return nil
	}
	return n.tree
}

// IsDisposed reports whether the item has been disposed.
func (n *Item) IsDisposed() bool { return n == nil || n.disposed }

// --- Geometry, visibility, opacity ---

// Geometry returns the item's rectangle in parent content space.
func (n *Item) Geometry() Rect {
	if n == nil {
		return Rect{}
	}
	return n.geometry
}

// ContentRect returns the area children and paint hooks draw into,
// relative to the item's own origin.
func (n *Item) ContentRect() Rect {
	if n == nil {
		return Rect{}
	}
	return n.contentRect
}

// SetGeometry replaces the item's geometry and content rect, fires the
// layout hook, and marks the item dirty. The content rect matches the
// geometry's size but lives in the item's own coordinate space, so its
// origin is zero. A per-node offscreen buffer whose size no longer matches
// is reallocated on the next traversal.
func (n *Item) SetGeometry(r Rect) {
	if n == nil || n.disposed {
		return
	}
	n.geometry = r
	n.contentRect = Rect{Width: r.Width, Height: r.Height}
	if n.hooks.OnLayout != nil {
		n.hooks.OnLayout(n)
	}
	n.MarkDirty()
}

// Visible reports whether the item participates in rendering.
func (n *Item) Visible() bool { return n != nil && n.visible }

// SetVisible shows or hides the item. An invisible item's whole subtree is
// skipped by the compositor. No-op if unchanged.
func (n *Item) SetVisible(visible bool) {
	if n == nil || n.disposed || n.visible == visible {
		return
	}
	n.visible = visible
	n.MarkDirty()
}

// Enabled reports whether the item receives input events.
func (n *Item) Enabled() bool { return n != nil && n.enabled }

// SetEnabled sets whether the item receives input events.
func (n *Item) SetEnabled(enabled bool) {
	if n == nil || n.disposed {
		return
	}
	n.enabled = enabled
}

// Opacity returns the item's own opacity in [0, 1].
func (n *Item) Opacity() float64 {
	if n == nil {
		return 0
	}
	return n.opacity
}

// SetOpacity sets the item's opacity, clamping to [0, 1].
// No-op if the clamped value is unchanged.
func (n *Item) SetOpacity(opacity float64) {
	if n == nil || n.disposed {
		return
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	if n.opacity == opacity {
		return
	}
	n.opacity = opacity
	n.MarkDirty()
}

// ZOrder returns the item's z-order value. Paint order is insertion order;
// z-order is carried for applications that maintain their own ordering.
func (n *Item) ZOrder() int {
	if n == nil {
		return 0
	}
	return n.zOrder
}

// SetZOrder stores a z-order value. The compositor does not sort by it.
func (n *Item) SetZOrder(z int) {
	if n == nil || n.disposed {
		return
	}
	n.zOrder = z
}

// --- Hooks ---

// SetHooks installs the item's hook table by value, replacing any previous
// table. Nil entries fall back to default behavior.
func (n *Item) SetHooks(hooks ItemHooks) {
	if n == nil || n.disposed {
		return
	}
	n.hooks = hooks
}

// Hooks returns the installed hook table.
func (n *Item) Hooks() ItemHooks {
	if n == nil {
		return ItemHooks{}
	}
	return n.hooks
}

// --- Dirtiness ---

// MarkDirty records the item's whole content as damaged and propagates
// dirtiness to the root. This is the only mechanism that signals "redraw
// needed" to the owning window's render loop.
func (n *Item) MarkDirty() {
	if n == nil || n.disposed {
		return
	}
	n.MarkDirtyRect(n.contentRect)
}

// MarkDirtyRect records damage in item-local coordinates, then walks the
// parent chain setting every ancestor's buffer-dirty flag and staling any
// batching ancestor's shared buffer.
func (n *Item) MarkDirtyRect(damage Rect) {
	if n == nil || n.disposed {
		return
	}
	n.Damage.AddRect(damage)
	n.bufferDirty = true
	for p := n; p.Parent != nil; p = &p.Parent.Item {
		t := p.Parent
		t.bufferDirty = true
		if t.childrenFBO {
			t.childrenDirty = true
		}
	}
}

// BufferDirty reports whether the item's content needs re-rendering.
func (n *Item) BufferDirty() bool { return n != nil && n.bufferDirty }

// --- Per-node offscreen caching ---

// OffscreenEnabled reports whether per-node offscreen caching is on.
func (n *Item) OffscreenEnabled() bool { return n != nil && n.offscreen }

// SetOffscreen enables or disables per-node offscreen caching. When
// enabled, the compositor lazily renders the item (and, for trees, its
// children) into a buffer sized exactly to the item's geometry and blits
// that buffer until the item is marked dirty again. Disabling releases any
// existing buffer. No-op if unchanged.
func (n *Item) SetOffscreen(enable bool) {
	if n == nil || n.disposed || n.offscreen == enable {
		return
	}
	n.offscreen = enable
	if enable {
		n.bufferDirty = true
		return
	}
	n.releaseBuffer()
}

// Buffer returns the item's offscreen buffer, or nil if none is allocated.
func (n *Item) Buffer() Framebuffer {
	if n == nil {
		return nil
	}
	return n.buffer
}

// releaseBuffer returns the offscreen buffer to the backend that allocated it.
func (n *Item) releaseBuffer() {
	if n.buffer != nil && n.renderer != nil {
		n.renderer.DestroyFramebuffer(n.buffer)
	}
	n.buffer = nil
}

// --- Disposal ---

// Dispose detaches the item from its parent (firing removal hooks),
// recursively disposes children for trees, and releases owned regions and
// buffers. Safe to call on nil or an already-disposed item.
func (n *Item) Dispose() {
	if n == nil || n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	n.dispose()
}

// dispose releases the item's resources without detaching from a parent.
// Callers must have cleared or be about to clear the parent link.
func (n *Item) dispose() {
	n.disposed = true
	if t := n.tree; t != nil {
		t.disposeChildren()
		t.releaseChildrenBuffer()
		t.treeHooks = TreeHooks{}
	}
	n.releaseBuffer()
	n.Transparent = nil
	n.Input = nil
	n.Damage = nil
	n.hooks = ItemHooks{}
	n.UserData = nil
	n.id = 0
}
