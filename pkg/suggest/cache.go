package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// RecentCache keeps the most recently submitted terms in a patricia trie,
// evicting the least recently submitted one when full.
type RecentCache struct {
	trie       *patricia.Trie
	accessTime map[string]int64
	clock      int64
	maxWords   int
	mu         sync.RWMutex
}

// NewRecentCache creates a cache holding at most maxWords terms.
func NewRecentCache(maxWords int) *RecentCache {
	return &RecentCache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Add marks term as the most recent submission.
func (rc *RecentCache) Add(term string) {
	if rc.maxWords <= 0 || term == "" {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, ok := rc.accessTime[term]; !ok && len(rc.accessTime) >= rc.maxWords {
		rc.evictLRU()
	}
	rc.clock++
	rc.accessTime[term] = rc.clock
	rc.trie.Set(patricia.Prefix(term), rc.clock)
}

// Search returns up to limit cached terms starting with prefix, newest first.
// A limit below 1 returns them all.
func (rc *RecentCache) Search(prefix string, limit int) []string {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	type hit struct {
		word string
		at   int64
	}
	var hits []hit

	err := rc.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		hits = append(hits, hit{word: string(p), at: item.(int64)})
		return nil
	})
	if err != nil {
		log.Errorf("Error searching recent cache: %v", err)
		return []string{}
	}

	// insertion sort, the cache is small
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].at > hits[j-1].at; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	words := make([]string, len(hits))
	for i, h := range hits {
		words[i] = h.word
	}
	return words
}

// Len returns the number of cached terms.
func (rc *RecentCache) Len() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.accessTime)
}

// Stats reports cache occupancy.
func (rc *RecentCache) Stats() map[string]int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return map[string]int{
		"recentWords":    len(rc.accessTime),
		"maxRecentWords": rc.maxWords,
	}
}

func (rc *RecentCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, at := range rc.accessTime {
		if at < oldestTime {
			oldestTime = at
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(rc.accessTime, oldestWord)
		rc.trie.Delete(patricia.Prefix(oldestWord))
		log.Debugf("Evicted word '%s' from recent cache", oldestWord)
	}
}
