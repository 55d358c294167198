package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentCacheOrder(t *testing.T) {
	rc := NewRecentCache(10)
	rc.Add("alpha")
	rc.Add("beta")
	rc.Add("alps")
	rc.Add("alpha")

	assert.Equal(t, []string{"alpha", "alps"}, rc.Search("al", 0))
	assert.Equal(t, []string{"alpha"}, rc.Search("al", 1))
	assert.Equal(t, []string{"alpha", "alps", "beta"}, rc.Search("", 0))
	assert.Empty(t, rc.Search("z", 0))
	assert.Equal(t, 3, rc.Len())
}

func TestRecentCacheEviction(t *testing.T) {
	rc := NewRecentCache(2)
	rc.Add("one")
	rc.Add("two")
	rc.Add("one")
	rc.Add("three")

	assert.Equal(t, 2, rc.Len())
	assert.Equal(t, []string{"three", "one"}, rc.Search("", 0))
	assert.Empty(t, rc.Search("tw", 0))

	stats := rc.Stats()
	assert.Equal(t, 2, stats["recentWords"])
	assert.Equal(t, 2, stats["maxRecentWords"])
}

func TestRecentCacheIgnoresEmpty(t *testing.T) {
	rc := NewRecentCache(2)
	rc.Add("")
	assert.Equal(t, 0, rc.Len())

	off := NewRecentCache(0)
	off.Add("x")
	assert.Equal(t, 0, off.Len())
}
