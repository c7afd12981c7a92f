package ir

// ResolveStyle returns the style map in effect for a node at a breakpoint.
//
// Breakpoints cascade mobile → tablet → desktop. A missing entry inherits
// the resolved map of the next smaller breakpoint; a present entry replaces
// it wholesale, so an explicit empty map means "no styling here".
//
// When responsive is false the node's own desktop map is returned whatever
// bp is requested, and nothing is inherited from smaller breakpoints.
// The result is always a fresh, non-nil map.
func ResolveStyle(n *Node, bp Breakpoint, responsive bool) StyleMap {
	if n == nil {
		return StyleMap{}
	}
	if !responsive {
		return n.Styles[Desktop].Clone()
	}

	resolved := StyleMap{}
	for _, tier := range Breakpoints {
		if m, ok := n.Styles[tier]; ok {
			resolved = m
		}
		if tier == bp {
			break
		}
	}
	return resolved.Clone()
}
