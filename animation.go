package linden

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 scalar properties of an Item simultaneously.
// Create one via the convenience constructors (TweenOpacity, TweenPosition,
// TweenSize, TweenGeometry) and call Update(dt) each frame. Values are
// applied through the item's setters, so clamping and dirty propagation
// behave exactly as for direct calls. If the target item is disposed, the
// group stops immediately.
//
// There is no global animation manager; callers drive Update themselves
// from the window's render loop.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(n *Item, vals [4]float64)
	target *Item
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target item. If the item has been disposed, Done is set and no writes
// occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, vals)
	g.Done = allDone
}

// TweenOpacity animates the item's opacity to the target value over the
// given duration using the easing function.
func TweenOpacity(item *Item, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: item}
	g.tweens[0] = gween.New(float32(item.Opacity()), float32(to), duration, fn)
	g.apply = func(n *Item, vals [4]float64) {
		n.SetOpacity(vals[0])
	}
	return g
}

// TweenPosition animates the item's geometry origin to (toX, toY), keeping
// its size.
func TweenPosition(item *Item, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	geo := item.Geometry()
	g := &TweenGroup{count: 2, target: item}
	g.tweens[0] = gween.New(float32(geo.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(geo.Y), float32(toY), duration, fn)
	g.apply = func(n *Item, vals [4]float64) {
		r := n.Geometry()
		r.X, r.Y = vals[0], vals[1]
		n.SetGeometry(r)
	}
	return g
}

// TweenSize animates the item's geometry size to (toW, toH), keeping its
// origin. A per-node offscreen buffer follows the size on the next
// traversal.
func TweenSize(item *Item, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	geo := item.Geometry()
	g := &TweenGroup{count: 2, target: item}
	g.tweens[0] = gween.New(float32(geo.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(geo.Height), float32(toH), duration, fn)
	g.apply = func(n *Item, vals [4]float64) {
		r := n.Geometry()
		r.Width, r.Height = vals[0], vals[1]
		n.SetGeometry(r)
	}
	return g
}

// TweenGeometry animates all four components of the item's geometry to the
// target rectangle.
func TweenGeometry(item *Item, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	geo := item.Geometry()
	g := &TweenGroup{count: 4, target: item}
	g.tweens[0] = gween.New(float32(geo.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(geo.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(geo.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(geo.Height), float32(to.Height), duration, fn)
	g.apply = func(n *Item, vals [4]float64) {
		n.SetGeometry(Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]})
	}
	return g
}
