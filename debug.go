package linden

import (
	"fmt"
	"os"
)

// globalDebug enables validation checks and stderr warnings for tree
// operations and the compositor. Off by default; toggle via SetDebug.
var globalDebug bool

// SetDebug enables or disables debug validation and diagnostics.
// Debug mode panics on use of disposed items and warns on stderr about
// suspicious trees and children dropped by the composition policy.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed item
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Item, op string) {
	if n.disposed {
		panic(fmt.Sprintf("linden debug: %s on disposed item %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Item) {
	depth := 0
	for p := n; p != nil; {
		depth++
		if p.Parent == nil {
			break
		}
		p = &p.Parent.Item
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: tree depth %d exceeds %d (item %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a tree has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(t *ItemTree) {
	if len(t.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: tree %q has %d children (threshold %d)\n",
			t.Name, len(t.children), debugMaxChildCount)
	}
}

// debugWarnCycle reports a rejected AddChild that would have created a cycle.
func debugWarnCycle(t *ItemTree, child *Item) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: AddChild of %q to %q would create a cycle; ignored\n",
		child.Name, t.Name)
}

// debugWarnSkippedChild reports a child dropped by the should-render-to-FBO
// policy outside an active batch pass. There is no later path that renders
// such a child this frame.
func debugWarnSkippedChild(t *ItemTree, child *Item) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: child %q of %q wants FBO rendering outside a batch pass; dropped this frame\n",
		child.Name, t.Name)
}

// debugWarnAllocFailure reports a framebuffer allocation failure. The
// affected subtree is absent for the frame and retried on the next.
func debugWarnAllocFailure(n *Item, w, h int, err error) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: framebuffer %dx%d for item %q failed: %v\n",
		w, h, n.Name, err)
}
