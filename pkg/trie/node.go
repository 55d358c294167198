package trie

// Node is a single character-keyed vertex of a Tree.
// Children are owned exclusively by their parent and kept in insertion order.
type Node struct {
	char     rune
	terminal bool
	index    map[rune]int
	children []*Node
}

// NewNode creates a detached node for ch.
func NewNode(ch rune) *Node {
	return &Node{char: ch}
}

// Char returns the character this node represents. The root holds 0 and
// a byte of invalid UTF-8 is held as its negated value.
func (n *Node) Char() rune {
	return n.char
}

// IsTerminal reports whether a stored string ends at this node.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// NumChildren returns the number of immediate children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// HasChild reports whether an immediate child keyed by ch exists.
func (n *Node) HasChild(ch rune) bool {
	_, ok := n.index[ch]
	return ok
}

// Child returns the child keyed by ch. A miss is (nil, false), not an error.
func (n *Node) Child(ch rune) (*Node, bool) {
	i, ok := n.index[ch]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// AddChild attaches child under ch.
// It returns false and leaves n untouched if ch is already taken,
// so an existing subtree is never orphaned.
func (n *Node) AddChild(ch rune, child *Node) bool {
	if n.HasChild(ch) {
		return false
	}
	if n.index == nil {
		n.index = make(map[rune]int, 1)
	}
	n.index[ch] = len(n.children)
	n.children = append(n.children, child)
	return true
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
