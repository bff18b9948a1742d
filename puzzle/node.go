package puzzle

/*

Search nodes: a board plus its search metadata.  Nodes form a tree
through parent links; only the child→parent direction is ever
walked, to reconstruct the solution once a solved node pops.

*/

// A SearchNode is one unit of the search: a board it exclusively
// owns, its depth from the root (the g-value), a back-reference to
// the node that generated it, and the cached composite cost
// f = depth + heuristic that orders the frontier.
type SearchNode struct {
	*Board
	depth  int
	parent *SearchNode
	cost   int
}

// NewSearchNode wraps a board as a search node at the given depth
// with the given parent, computing the composite cost.  The root of
// a search has depth 0 and a nil parent.
func NewSearchNode(b *Board, depth int, parent *SearchNode) *SearchNode {
	return &SearchNode{
		Board:  b,
		depth:  depth,
		parent: parent,
		cost:   depth + b.Heuristic(),
	}
}

// Depth returns the node's move count from the root.
func (n *SearchNode) Depth() int {
	return n.depth
}

// Parent returns the node that generated this one, or nil for the
// root.
func (n *SearchNode) Parent() *SearchNode {
	return n.parent
}

// Cost returns the cached composite cost f = g + h.
func (n *SearchNode) Cost() int {
	return n.cost
}

// Copy returns a node with its own tile storage.  Depth, parent,
// cost, blank index, and last direction are preserved exactly;
// mutating the copy leaves the original untouched.  The solved
// reference is shared, never copied.
func (n *SearchNode) Copy() *SearchNode {
	tiles := make([]Tile, len(n.Board.tiles))
	copy(tiles, n.Board.tiles)
	board := &Board{
		size:          n.Board.size,
		count:         n.Board.count,
		tiles:         tiles,
		blankIndex:    n.Board.blankIndex,
		lastDirection: n.Board.lastDirection,
		solved:        n.Board.solved,
	}
	return &SearchNode{Board: board, depth: n.depth, parent: n.parent, cost: n.cost}
}

// MoveChildren expands the node: for each legal move it derives a
// copy with that move applied, filters it against the closed set,
// and stamps surviving children into the set at enqueue time.  Each
// child's depth, parent, and cost are updated before it is returned.
func (n *SearchNode) MoveChildren(seen *ClosedSet) []*SearchNode {
	var children []*SearchNode
	for _, move := range n.Moves() {
		child := n.Copy()
		child.MoveBlank(move)
		key := child.fingerprint()
		if seen.Contains(key) {
			continue
		}
		seen.Insert(key)
		child.parent = n
		child.depth = n.depth + 1
		child.cost = child.depth + child.Heuristic()
		children = append(children, child)
	}
	return children
}
