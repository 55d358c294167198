package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeChildren(t *testing.T) {
	n := NewNode(0)
	assert.Equal(t, 0, n.NumChildren())
	assert.False(t, n.HasChild('a'))

	got, ok := n.Child('a')
	assert.False(t, ok)
	assert.Nil(t, got)

	a := NewNode('a')
	require.True(t, n.AddChild('a', a))
	require.True(t, n.AddChild('b', NewNode('b')))

	assert.True(t, n.HasChild('a'))
	assert.Equal(t, 2, n.NumChildren())

	got, ok = n.Child('a')
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 'a', got.Char())
}

func TestNodeAddChildKeepsExisting(t *testing.T) {
	n := NewNode(0)
	first := NewNode('x')
	first.terminal = true
	require.True(t, n.AddChild('x', first))

	assert.False(t, n.AddChild('x', NewNode('x')))
	assert.Equal(t, 1, n.NumChildren())

	got, _ := n.Child('x')
	assert.Same(t, first, got)
	assert.True(t, got.IsTerminal())
}

func TestNodeChildrenOrder(t *testing.T) {
	n := NewNode(0)
	for _, r := range "zamé" {
		n.AddChild(r, NewNode(r))
	}

	var chars []rune
	for _, c := range n.Children() {
		chars = append(chars, c.Char())
	}
	assert.Equal(t, []rune("zamé"), chars)

	// the returned slice is a copy
	kids := n.Children()
	kids[0] = nil
	assert.NotNil(t, n.Children()[0])
}
