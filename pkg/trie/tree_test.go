package trie

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeScenarios(t *testing.T) {
	t.Run("cat car dog", func(t *testing.T) {
		tr := New("cat", "car", "dog")

		assert.True(t, tr.Contains("cat"))
		assert.False(t, tr.Contains("ca"))
		assert.Equal(t, []string{"cat", "car"}, tr.Complete("ca"))
		assert.Equal(t, []string{"dog"}, tr.Complete("d"))
		assert.Equal(t, []string{}, tr.Complete(""))
	})

	t.Run("duplicate insert", func(t *testing.T) {
		tr := New()
		tr.Insert("cat")
		tr.Insert("cat")
		assert.Equal(t, 1, tr.Len())
	})

	t.Run("empty tree", func(t *testing.T) {
		tr := New()
		assert.True(t, tr.IsEmpty())
		assert.Equal(t, []string{}, tr.Complete("x"))
		assert.False(t, tr.Contains("x"))
		assert.Equal(t, []string{}, tr.All())
	})

	t.Run("empty string", func(t *testing.T) {
		tr := New()
		tr.Insert("")
		assert.True(t, tr.Contains(""))
		assert.True(t, tr.Root().IsTerminal())
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, []string{""}, tr.All())
		assert.Equal(t, []string{}, tr.Complete(""))
	})

	t.Run("prefix off the edges", func(t *testing.T) {
		tr := New("apple")
		assert.Equal(t, []string{"apple"}, tr.Complete("app"))
		assert.Equal(t, []string{}, tr.Complete("appz"))
	})
}

func TestTreeFindNode(t *testing.T) {
	tr := New("cat", "car")

	tests := []struct {
		in    string
		depth int
		char  rune
	}{
		{"", 0, 0},
		{"c", 1, 'c'},
		{"ca", 2, 'a'},
		{"cat", 3, 't'},
		{"catalog", 3, 't'},
		{"x", 0, 0},
		{"cx", 1, 'c'},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, depth := tr.FindNode(tt.in)
			assert.Equal(t, tt.depth, depth)
			assert.Equal(t, tt.char, n.Char())
		})
	}

	n, _ := tr.FindNode("")
	assert.Same(t, tr.Root(), n)
}

func TestTreeContainsRequiresFullWalk(t *testing.T) {
	tr := New("car")

	// "cart" stops on the terminal node for "car"
	n, depth := tr.FindNode("cart")
	require.True(t, n.IsTerminal())
	require.Equal(t, 3, depth)

	assert.False(t, tr.Contains("cart"))
	assert.Equal(t, []string{}, tr.Complete("cart"))
	assert.True(t, tr.Contains("car"))
}

func TestTreeInsertIdempotent(t *testing.T) {
	tr := New("tea", "ten", "inn")
	before := tr.All()
	children := tr.Root().NumChildren()

	tr.Insert("ten")
	tr.Insert("inn")

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, before, tr.All())
	assert.Equal(t, children, tr.Root().NumChildren())

	n, _ := tr.FindNode("te")
	assert.Equal(t, 2, n.NumChildren())
}

func TestTreeInsertPrefixOfExisting(t *testing.T) {
	tr := New("there")
	tr.Insert("the")

	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Contains("the"))
	assert.Equal(t, []string{"the", "there"}, tr.Complete("th"))
}

func TestTreeCompleteOrder(t *testing.T) {
	dataSet := []struct {
		prefix   string
		keys     []string
		expected []string
	}{
		{
			"api",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api", "api.foo", "api.foo.bar", "api.foo.baz", "api.foe.fum"},
		},
		{
			"a",
			[]string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"},
			[]string{"api", "api.foo", "api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456"},
		},
		{
			"b",
			[]string{"api.foo.bar", "abc.123.456"},
			[]string{},
		},
		{
			"api.foo.bar",
			[]string{"api.foo.bar", "api.foo.baz", "api.foo"},
			[]string{"api.foo.bar"},
		},
		{
			"api.end",
			[]string{"api.foo.bar", "api.foo"},
			[]string{},
		},
	}

	for _, d := range dataSet {
		tr := New(d.keys...)
		assert.Equal(t, d.expected, tr.Complete(d.prefix), d.prefix)
	}
}

func TestTreeRunes(t *testing.T) {
	tr := New("ñandú", "ñame", "日本語", "日本")

	assert.True(t, tr.Contains("日本"))
	assert.False(t, tr.Contains("日"))
	assert.Equal(t, []string{"日本", "日本語"}, tr.Complete("日"))
	assert.Equal(t, []string{"ñandú", "ñame"}, tr.Complete("ña"))

	_, depth := tr.FindNode("日本人")
	assert.Equal(t, 2, depth)
	assert.Equal(t, []string{}, tr.Complete("日本人"))
}

func TestTreeInvalidUTF8(t *testing.T) {
	tr := New("\xff", "\xfe", "a\xffb", "a\xe6\x97")

	require.Equal(t, 4, tr.Len())
	assert.Equal(t, []string{"\xff", "\xfe", "a\xffb", "a\xe6\x97"}, tr.All())

	assert.True(t, tr.Contains("\xff"))
	assert.True(t, tr.Contains("a\xe6\x97"))
	assert.False(t, tr.Contains("�"))
	assert.False(t, tr.Contains("a�b"))
	assert.False(t, tr.Contains("a\xe6"))

	assert.Equal(t, []string{"\xff"}, tr.Complete("\xff"))
	assert.Equal(t, []string{"a\xffb"}, tr.Complete("a\xff"))
	assert.Equal(t, []string{}, tr.Complete("�"))

	// a real U+FFFD is its own key
	tr.Insert("�")
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, []string{"�"}, tr.Complete("�"))
	assert.Equal(t, []string{"\xff"}, tr.Complete("\xff"))

	_, depth := tr.FindNode("a\xe6\x97x")
	assert.Equal(t, 3, depth)
}

func TestTreeTraverse(t *testing.T) {
	tr := New("bar", "baz", "bat")
	n, _ := tr.FindNode("ba")

	var got []string
	tr.Traverse(n, "ba", func(s string) { got = append(got, s) })
	assert.Equal(t, []string{"bar", "baz", "bat"}, got)

	// restartable
	var again []string
	tr.Traverse(n, "ba", func(s string) { again = append(again, s) })
	assert.Equal(t, got, again)

	// prefix is only the label the caller assigns to n
	var relabeled []string
	tr.Traverse(n, "", func(s string) { relabeled = append(relabeled, s) })
	assert.Equal(t, []string{"r", "z", "t"}, relabeled)
}

func TestTreeProperties(t *testing.T) {
	words := []string{
		"a", "an", "and", "ant", "anthem", "be", "bee", "been", "beer",
		"ant", "cat", "", "catalog", "cat", "dog", "do", "d",
	}
	distinct := map[string]bool{}
	tr := New()
	for _, w := range words {
		tr.Insert(w)
		distinct[w] = true
	}

	assert.Equal(t, len(distinct), tr.Len())
	assert.False(t, tr.IsEmpty())
	assert.Len(t, tr.All(), tr.Len())

	for w := range distinct {
		assert.True(t, tr.Contains(w), w)
		for i := 1; i <= len(w); i++ {
			assert.Contains(t, tr.Complete(w[:i]), w, "prefix %q of %q", w[:i], w)
		}
	}

	for _, p := range []string{"x", "anx", "beers", "caz", "dogs"} {
		assert.Empty(t, tr.Complete(p), p)
	}
	assert.Empty(t, tr.Complete(""))

	var all []string
	for w := range distinct {
		all = append(all, w)
	}
	assert.ElementsMatch(t, all, tr.All())
}

func TestBigKeySetRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping big key set in short mode")
	}

	keys := getKeys("1mvl5_10")
	if len(keys) > 20000 {
		keys = keys[:20000]
	}

	distinct := map[string]bool{}
	tr := New()
	for _, k := range keys {
		tr.Insert(k)
		distinct[k] = true
	}
	require.Equal(t, len(distinct), tr.Len())

	got := tr.All()
	require.Len(t, got, len(distinct))
	for _, k := range got {
		assert.True(t, distinct[k], k)
	}

	prefix := keys[0][:2]
	var want []string
	for k := range distinct {
		if strings.HasPrefix(k, prefix) {
			want = append(want, k)
		}
	}
	completed := tr.Complete(prefix)
	sort.Strings(want)
	sort.Strings(completed)
	assert.Equal(t, want, completed)
}

var cache = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

func BenchmarkTreeInsert(b *testing.B) {
	keys := getKeys("1mvl5_10")[:50000]
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := New()
		for _, k := range keys {
			tr.Insert(k)
		}
	}
}

func BenchmarkTreeComplete(b *testing.B) {
	keys := getKeys("1mvl5_10")[:50000]
	tr := New(keys...)

	for _, n := range []int{1, 2, 3} {
		prefix := keys[len(keys)/2][:n]
		b.Run(fmt.Sprintf("prefix_len_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tr.Complete(prefix)
			}
		})
	}
}
