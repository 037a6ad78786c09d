package tree

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/atikulmunna/depthtree/internal/model"
)

// Node is one entry in a reconstructed call tree. Children are owned
// by their parent and ordered by first arrival. Count is how many
// consecutive identical events were collapsed into this node.
type Node struct {
	Label    string
	Count    int
	Children []*Node
	Events   []model.Event
}

// frame is one open call on a thread's active path.
type frame struct {
	depth int
	node  *Node
}

// Builder reconstructs one call tree per thread from a chronological
// stream of events. Each thread gets a virtual root (never rendered)
// and a stack of currently open frames; an incoming event closes every
// frame at its own depth or deeper, then attaches under whatever
// remains open. No explicit return/exit lines are needed.
type Builder struct {
	showMsg  bool
	collapse bool
	roots    map[string]*Node
	stacks   map[string][]frame
}

// NewBuilder creates a Builder. When showMsg is set, event messages
// become part of node labels. When collapse is set, an event whose
// label matches the parent's most recent child is merged into it
// instead of creating a sibling.
func NewBuilder(showMsg, collapse bool) *Builder {
	return &Builder{
		showMsg:  showMsg,
		collapse: collapse,
		roots:    make(map[string]*Node),
		stacks:   make(map[string][]frame),
	}
}

// Label renders the display label for an event: "func (file:line)",
// with " :: msg" appended when messages are shown and non-empty.
func Label(ev model.Event, showMsg bool) string {
	base := fmt.Sprintf("%s (%s:%s)", ev.Func, ev.File, ev.Line)
	if showMsg && ev.Msg != "" {
		return base + " :: " + ev.Msg
	}
	return base
}

// Insert places one event into its thread's tree. Thread state is
// created lazily on first sight of a tid.
func (b *Builder) Insert(ev model.Event) {
	root, ok := b.roots[ev.TID]
	if !ok {
		root = &Node{Label: "tid=" + ev.TID}
		b.roots[ev.TID] = root
	}

	// Close every open frame at this depth or deeper. Depth alone
	// determines structural closure; jumps of arbitrary size are
	// accepted as-is.
	stack := b.stacks[ev.TID]
	for len(stack) > 0 && stack[len(stack)-1].depth >= ev.Depth {
		stack = stack[:len(stack)-1]
	}

	parent := root
	if len(stack) > 0 {
		parent = stack[len(stack)-1].node
	}

	lbl := Label(ev, b.showMsg)

	var cur *Node
	if last := lastChild(parent); b.collapse && last != nil && last.Label == lbl {
		// Repetition of the immediately preceding sibling: merge.
		last.Count++
		last.Events = append(last.Events, ev)
		cur = last
	} else {
		cur = &Node{Label: lbl, Count: 1, Events: []model.Event{ev}}
		parent.Children = append(parent.Children, cur)
	}

	b.stacks[ev.TID] = append(stack, frame{depth: ev.Depth, node: cur})
}

// Root returns the virtual root for a thread, or nil if the thread was
// never seen.
func (b *Builder) Root(tid string) *Node {
	return b.roots[tid]
}

// TIDs returns all seen thread ids in display order: numeric when both
// ids are composed entirely of decimal digits, lexicographic otherwise.
func (b *Builder) TIDs() []string {
	tids := make([]string, 0, len(b.roots))
	for tid := range b.roots {
		tids = append(tids, tid)
	}
	sort.Slice(tids, func(i, j int) bool {
		return lessTID(tids[i], tids[j])
	})
	return tids
}

func lessTID(a, b string) bool {
	if isDigits(a) && isDigits(b) {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		if aerr == nil && berr == nil {
			return ai < bi
		}
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func lastChild(n *Node) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}
