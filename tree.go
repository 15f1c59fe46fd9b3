package linden

// ItemTree is an Item that additionally owns an ordered list of child
// items. Paint order is insertion order: later children paint over earlier
// ones; no z-sort exists.
//
// A tree can batch its children into one shared offscreen buffer sized to
// the union bounding box of all visible children, repopulated lazily and
// composited in a single step (or by a custom composite hook).
type ItemTree struct {
	Item

	children []*Item

	childrenFBO      bool
	childrenBuffer   Framebuffer
	childrenBounds   Rect
	childrenDirty    bool
	childrenFactor   float64 // accumulated opacity the batch buffer was rendered with
	forceChildrenFBO bool
	customComposite  bool

	treeHooks TreeHooks
}

// initialChildCap is the child slice capacity allocated on first add.
// Growth beyond it doubles.
const initialChildCap = 4

// NewItemTree creates an empty container item bound to the given window.
// Returns nil if win is nil.
func NewItemTree(win *Window, name string) *ItemTree {
	if win == nil {
		return nil
	}
	t := &ItemTree{Item: Item{Name: name, typ: ItemTypeTree}}
	t.Item.tree = t
	itemDefaults(&t.Item, win)
	return t
}

// AsItem returns the tree's embedded Item, for passing a tree where an
// *Item is expected (AddChild, Render).
func (t *ItemTree) AsItem() *Item {
	if t == nil {
		return nil
	}
	return &t.Item
}

// SetTreeHooks installs the tree's hook table by value.
func (t *ItemTree) SetTreeHooks(hooks TreeHooks) {
	if t == nil || t.disposed {
		return
	}
	t.treeHooks = hooks
}

// TreeHooks returns the installed tree hook table.
func (t *ItemTree) TreeHooks() TreeHooks {
	if t == nil {
		return TreeHooks{}
	}
	return t.treeHooks
}

// --- Child management ---

// AddChild appends child to this tree's children. A child that already has
// a parent is detached from it first (re-parenting). Fires OnChildAdded
// then the child's OnParentAdded. No-op on nil child, a cycle, or a
// disposed participant.
func (t *ItemTree) AddChild(child *Item) {
	if t == nil || child == nil {
		return
	}
	if globalDebug {
		debugCheckDisposed(&t.Item, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if t.disposed || child.disposed {
		return
	}
	if isAncestor(child, &t.Item) {
		debugWarnCycle(t, child)
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	if t.children == nil {
		t.children = make([]*Item, 0, initialChildCap)
	}
	t.children = append(t.children, child)
	child.Parent = t
	if t.treeHooks.OnChildAdded != nil {
		t.treeHooks.OnChildAdded(t, child)
	}
	if child.hooks.OnParentAdded != nil {
		child.hooks.OnParentAdded(child, t)
	}
	if t.childrenFBO {
		t.childrenDirty = true
	}
	t.MarkDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(t)
	}
}

// RemoveChild detaches child from this tree, preserving the order of the
// remaining children. Fires the child's OnParentRemoved then OnChildRemoved
// (reverse order of add). No-op if child is nil or not a child of t.
func (t *ItemTree) RemoveChild(child *Item) {
	if t == nil || child == nil {
		return
	}
	idx := -1
	for i, c := range t.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if child.hooks.OnParentRemoved != nil {
		child.hooks.OnParentRemoved(child, t)
	}
	if t.treeHooks.OnChildRemoved != nil {
		t.treeHooks.OnChildRemoved(t, child)
	}
	copy(t.children[idx:], t.children[idx+1:])
	t.children[len(t.children)-1] = nil
	t.children = t.children[:len(t.children)-1]
	child.Parent = nil
	if t.childrenFBO {
		t.childrenDirty = true
	}
	t.MarkDirty()
}

// Children returns the child list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (t *ItemTree) Children() []*Item {
	if t == nil {
		return nil
	}
	return t.children
}

// NumChildren returns the number of children.
func (t *ItemTree) NumChildren() int {
	if t == nil {
		return 0
	}
	return len(t.children)
}

// ChildAt returns the child at the given index, or nil if out of range.
func (t *ItemTree) ChildAt(index int) *Item {
	if t == nil || index < 0 || index >= len(t.children) {
		return nil
	}
	return t.children[index]
}

// disposeChildren fires removal hooks and disposes every child. Parent
// links are cleared before recursing so children do not redundantly detach.
func (t *ItemTree) disposeChildren() {
	for _, c := range t.children {
		if c.hooks.OnParentRemoved != nil {
			c.hooks.OnParentRemoved(c, t)
		}
		if t.treeHooks.OnChildRemoved != nil {
			t.treeHooks.OnChildRemoved(t, c)
		}
		c.Parent = nil
		c.dispose()
	}
	t.children = nil
}

// --- Subtree batching ---

// ChildrenFBOEnabled reports whether subtree batching is on.
func (t *ItemTree) ChildrenFBOEnabled() bool { return t != nil && t.childrenFBO }

// SetChildrenFBO enables or disables rendering all children into one shared
// offscreen buffer. Enabling recomputes the children bounds and marks the
// buffer for repopulation; disabling releases it. No-op if unchanged.
func (t *ItemTree) SetChildrenFBO(enable bool) {
	if t == nil || t.disposed || t.childrenFBO == enable {
		return
	}
	t.childrenFBO = enable
	if enable {
		t.UpdateChildrenBounds()
		t.childrenDirty = true
	} else {
		t.releaseChildrenBuffer()
		t.childrenDirty = false
	}
	t.MarkDirty()
}

// ForceChildrenFBO reports whether children are forced through the shared
// buffer regardless of per-child policy.
func (t *ItemTree) ForceChildrenFBO() bool { return t != nil && t.forceChildrenFBO }

// SetForceChildrenFBO forces every child through the shared batch buffer.
// Enabling auto-enables batching if it is not already on.
func (t *ItemTree) SetForceChildrenFBO(force bool) {
	if t == nil || t.disposed {
		return
	}
	t.forceChildrenFBO = force
	if force && !t.childrenFBO {
		t.SetChildrenFBO(true)
	}
}

// CustomComposite reports whether the default composite blit is replaced by
// the OnCompositeChildren hook.
func (t *ItemTree) CustomComposite() bool { return t != nil && t.customComposite }

// SetCustomComposite toggles whether the default single-blit composite step
// is replaced by OnCompositeChildren.
func (t *ItemTree) SetCustomComposite(custom bool) {
	if t == nil || t.disposed {
		return
	}
	t.customComposite = custom
}

// ChildrenBounds returns the union bounding box of all visible children,
// in this tree's content space, as of the last recompute.
func (t *ItemTree) ChildrenBounds() Rect {
	if t == nil {
		return Rect{}
	}
	return t.childrenBounds
}

// UpdateChildrenBounds recomputes the axis-aligned union of all visible
// children's geometry. With zero visible children the bounds collapse to a
// zero-sized rectangle at the tree's own origin.
func (t *ItemTree) UpdateChildrenBounds() {
	if t == nil {
		return
	}
	first := true
	var bounds Rect
	for _, c := range t.children {
		if !c.visible {
			continue
		}
		if first {
			bounds = c.geometry
			first = false
			continue
		}
		bounds = bounds.Union(c.geometry)
	}
	t.childrenBounds = bounds
}

// ChildrenBuffer returns the shared batch buffer, or nil if none is
// allocated.
func (t *ItemTree) ChildrenBuffer() Framebuffer {
	if t == nil {
		return nil
	}
	return t.childrenBuffer
}

// releaseChildrenBuffer returns the shared batch buffer to its backend.
func (t *ItemTree) releaseChildrenBuffer() {
	if t.childrenBuffer != nil && t.renderer != nil {
		t.renderer.DestroyFramebuffer(t.childrenBuffer)
	}
	t.childrenBuffer = nil
}

// isAncestor reports whether candidate is item or an ancestor of item.
func isAncestor(candidate, item *Item) bool {
	for p := item; p != nil; {
		if p == candidate {
			return true
		}
		if p.Parent == nil {
			return false
		}
		p = &p.Parent.Item
	}
	return false
}
