package ir

import "sort"

// MaxDepth bounds how deeply nodes may nest.
const MaxDepth = 64

// Tree is an immutable snapshot of a component tree. Nodes are deep copies
// of the editor's nodes, indexed by id, so later edits on the canvas never
// leak into an export in progress.
type Tree struct {
	root    *Node
	order   []*Node          // pre-order, including duplicates
	byID    map[string]*Node // first occurrence wins
	parents map[*Node]*Node
	depths  map[*Node]int
	defects []Issue // structural problems found while copying
}

// Snapshot deep-copies root into a Tree. It never fails: cycles and shared
// children in the source graph are cut and recorded, and Validate reports
// them together with every other problem.
func Snapshot(root *Node) *Tree {
	t := &Tree{
		byID:    make(map[string]*Node),
		parents: make(map[*Node]*Node),
		depths:  make(map[*Node]int),
	}
	if root == nil {
		return t
	}
	onStack := make(map[*Node]bool)
	copied := make(map[*Node]bool)
	t.root = t.copyNode(root, nil, 0, onStack, copied)
	return t
}

func (t *Tree) copyNode(src, parent *Node, depth int, onStack, copied map[*Node]bool) *Node {
	n := &Node{
		ID:       src.ID,
		Kind:     src.Kind,
		Bindings: src.Bindings.clone(),
	}
	if src.Props != nil {
		n.Props = make(map[string]any, len(src.Props))
		for k, v := range src.Props {
			n.Props[k] = v
		}
	}
	if src.Styles != nil {
		n.Styles = make(map[Breakpoint]StyleMap, len(src.Styles))
		for bp, m := range src.Styles {
			if m == nil {
				n.Styles[bp] = StyleMap{}
				continue
			}
			n.Styles[bp] = m.Clone()
		}
	}
	if src.Accessibility != nil {
		a := &Accessibility{}
		if src.Accessibility.Attributes != nil {
			a.Attributes = make(map[string]string, len(src.Accessibility.Attributes))
			for k, v := range src.Accessibility.Attributes {
				a.Attributes[k] = v
			}
		}
		if src.Accessibility.Labels != nil {
			a.Labels = make(map[string]string, len(src.Accessibility.Labels))
			for k, v := range src.Accessibility.Labels {
				a.Labels[k] = v
			}
		}
		n.Accessibility = a
	}

	t.order = append(t.order, n)
	if _, dup := t.byID[n.ID]; !dup {
		t.byID[n.ID] = n
	}
	if parent != nil {
		t.parents[n] = parent
	}
	t.depths[n] = depth

	onStack[src] = true
	copied[src] = true
	for _, child := range src.Children {
		switch {
		case child == nil:
			t.defects = append(t.defects, Issue{NodeID: src.ID, Message: "nil child"})
		case onStack[child]:
			t.defects = append(t.defects, Issue{NodeID: src.ID, Message: "cycle: child " + quote(child.ID) + " is an ancestor"})
		case copied[child]:
			t.defects = append(t.defects, Issue{NodeID: src.ID, Message: "child " + quote(child.ID) + " is shared with another parent"})
		case depth+1 >= MaxDepth:
			t.defects = append(t.defects, Issue{NodeID: src.ID, Message: "tree exceeds maximum depth"})
		default:
			n.Children = append(n.Children, t.copyNode(child, n, depth+1, onStack, copied))
		}
	}
	delete(onStack, src)
	return n
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Node returns the node with the given id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// Parent returns the parent of n, or nil for the root.
func (t *Tree) Parent(n *Node) *Node { return t.parents[n] }

// Depth returns the depth of n, the root being at depth 0.
func (t *Tree) Depth(n *Node) int { return t.depths[n] }

// Len returns the number of nodes in the snapshot.
func (t *Tree) Len() int { return len(t.order) }

// IDs returns every node id in pre-order.
func (t *Tree) IDs() []string {
	ids := make([]string, len(t.order))
	for i, n := range t.order {
		ids[i] = n.ID
	}
	return ids
}

// Walk visits nodes depth-first in pre-order. Returning false from fn skips
// the node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quote(s string) string { return "\"" + s + "\"" }
