package linden

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// MouseEvent carries a button press or release in the coordinate space the
// dispatch was invoked in (window space at the root).
type MouseEvent struct {
	X, Y    float64
	Button  MouseButton
	Pressed bool
}

// KeyEvent carries a key press or release. Key codes are platform-defined;
// linden only routes them.
type KeyEvent struct {
	Key     int
	Pressed bool
}

// hitTest reports whether (x, y), in n's parent space, hits the item.
// A non-empty input region masks the check in item-local coordinates;
// otherwise the item's geometry is used. This is the minimal region check;
// anything smarter belongs to the application.
func hitTest(n *Item, x, y float64) bool {
	if n == nil || n.disposed || !n.visible || !n.enabled {
		return false
	}
	if !n.Input.IsEmpty() {
		return n.Input.ContainsPoint(x-n.geometry.X, y-n.geometry.Y)
	}
	return n.geometry.Contains(x, y)
}

// DispatchMouseEvent routes a mouse event through the subtree rooted at n.
// Children are visited in reverse paint order (topmost first) with the
// event translated into their space; the first hook returning true consumes
// the event. The item's own hook runs after its children.
func DispatchMouseEvent(n *Item, ev MouseEvent) bool {
	if !hitTest(n, ev.X, ev.Y) {
		return false
	}
	if t := n.tree; t != nil {
		child := ev
		child.X -= n.geometry.X
		child.Y -= n.geometry.Y
		for i := len(t.children) - 1; i >= 0; i-- {
			if DispatchMouseEvent(t.children[i], child) {
				return true
			}
		}
	}
	if n.hooks.OnMouseEvent != nil {
		return n.hooks.OnMouseEvent(n, ev)
	}
	return false
}

// DispatchMouseMove routes pointer motion through the subtree rooted at n,
// with the same order and consumption rules as DispatchMouseEvent.
func DispatchMouseMove(n *Item, x, y float64) bool {
	if !hitTest(n, x, y) {
		return false
	}
	if t := n.tree; t != nil {
		cx := x - n.geometry.X
		cy := y - n.geometry.Y
		for i := len(t.children) - 1; i >= 0; i-- {
			if DispatchMouseMove(t.children[i], cx, cy) {
				return true
			}
		}
	}
	if n.hooks.OnMouseMove != nil {
		return n.hooks.OnMouseMove(n, x, y)
	}
	return false
}

// DispatchKeyEvent routes a key event through the subtree rooted at n in
// reverse paint order. Key events are not positional: every enabled,
// visible item is offered the event until one consumes it.
func DispatchKeyEvent(n *Item, ev KeyEvent) bool {
	if n == nil || n.disposed || !n.visible || !n.enabled {
		return false
	}
	if t := n.tree; t != nil {
		for i := len(t.children) - 1; i >= 0; i-- {
			if DispatchKeyEvent(t.children[i], ev) {
				return true
			}
		}
	}
	if n.hooks.OnKeyEvent != nil {
		return n.hooks.OnKeyEvent(n, ev)
	}
	return false
}
