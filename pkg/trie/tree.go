/*
Package trie implements an in-memory prefix tree over strings.

A Tree stores a set of strings and answers three questions about it:
whether a string was inserted, which stored strings start with a prefix,
and what the whole stored set is. Characters are Unicode code points;
strings are stored exactly as given, with no case folding or normalization.
A byte that is not part of valid UTF-8 counts as one character of its own
and comes back out unchanged, so "\xff" and "\ufffd" are distinct strings.

	t := trie.New("cat", "car", "dog")
	t.Contains("cat")  // true
	t.Contains("ca")   // false
	t.Complete("ca")   // [cat car]
	t.Complete("")     // []

Completion results come back in depth-first order, with a string listed
before any longer string that extends it and siblings in the order their
first character was inserted. Nothing is ranked.

A Tree is not safe for concurrent use. Callers that share one across
goroutines must serialize access themselves, see suggest.Completer.
*/
package trie

import (
	"unicode/utf8"
)

// Tree is a set of strings stored as a prefix tree.
type Tree struct {
	root *Node
	size int
}

// New creates a Tree seeded with the given strings, inserted in order.
// Duplicates are ignored.
func New(seed ...string) *Tree {
	t := &Tree{root: NewNode(0)}
	for _, s := range seed {
		t.Insert(s)
	}
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of distinct strings stored.
func (t *Tree) Len() int {
	return t.size
}

// IsEmpty reports whether no string is stored.
func (t *Tree) IsEmpty() bool {
	return t.size == 0
}

// FindNode walks s from the root along existing edges and returns the
// deepest node reached together with the number of runes of s matched.
// It never allocates nodes.
func (t *Tree) FindNode(s string) (*Node, int) {
	node, depth := t.root, 0
	for i := 0; i < len(s); {
		key, width := nextKey(s, i)
		next, ok := node.Child(key)
		if !ok {
			break
		}
		node = next
		depth++
		i += width
	}
	return node, depth
}

// nextKey decodes the character of s starting at byte i. An invalid byte is
// keyed as its negated value, which no rune decoded from valid UTF-8 can take.
func nextKey(s string, i int) (rune, int) {
	r, width := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && width == 1 {
		return -rune(s[i]), 1
	}
	return r, width
}

// appendKey writes the bytes a key was decoded from.
func appendKey(buf []byte, key rune) []byte {
	if key < 0 {
		return append(buf, byte(-key))
	}
	return utf8.AppendRune(buf, key)
}

// Insert adds s. Inserting a string that is already stored changes nothing.
func (t *Tree) Insert(s string) {
	node := t.root
	for i := 0; i < len(s); {
		key, width := nextKey(s, i)
		next, ok := node.Child(key)
		if !ok {
			next = NewNode(key)
			node.AddChild(key, next)
		}
		node = next
		i += width
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Contains reports whether s was inserted.
func (t *Tree) Contains(s string) bool {
	node, depth := t.FindNode(s)
	// a partial walk may stop on a terminal node of a shorter string
	if depth != utf8.RuneCountInString(s) {
		return false
	}
	return node.IsTerminal()
}

// Traverse visits every stored string in the subtree rooted at n, depth first.
// prefix is the string spelled by the path to n. A node's own string is visited
// before those of its children, and children in insertion order.
func (t *Tree) Traverse(n *Node, prefix string, visit func(string)) {
	buf := make([]byte, len(prefix), len(prefix)+32)
	copy(buf, prefix)
	walk(n, buf, visit)
}

func walk(n *Node, buf []byte, visit func(string)) {
	if n.terminal {
		visit(string(buf))
	}
	for _, child := range n.children {
		walk(child, appendKey(buf, child.char), visit)
	}
}

// Complete returns every stored string that starts with prefix.
// An empty prefix always yields an empty result, whatever is stored.
func (t *Tree) Complete(prefix string) []string {
	out := []string{}
	if prefix == "" {
		return out
	}
	node, depth := t.FindNode(prefix)
	if depth != utf8.RuneCountInString(prefix) {
		return out
	}
	t.Traverse(node, prefix, func(s string) {
		out = append(out, s)
	})
	return out
}

// All returns every stored string.
func (t *Tree) All() []string {
	out := make([]string, 0, t.size)
	t.Traverse(t.root, "", func(s string) {
		out = append(out, s)
	})
	return out
}
