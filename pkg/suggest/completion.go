package suggest

import (
	"sync"
	"unicode/utf8"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// Suggestion is one completion. Rank is the 1-based position in
// traversal order, not a score.
type Suggestion struct {
	Word string
	Rank uint16
}

// Options controls how a Completer validates and learns input.
type Options struct {
	// MinPrefix and MaxPrefix bound the prefix length in characters; 0 disables a bound.
	MinPrefix int
	MaxPrefix int
	// MaxWords caps the dictionary size; 0 means unbounded.
	MaxWords int
	// RecentSize is the capacity of the recent submissions cache; 0 disables it.
	RecentSize int
	// LearnOnSubmit inserts submitted terms into the dictionary.
	LearnOnSubmit bool
	// EnableFilter rejects prefixes utils.IsValidInput refuses.
	EnableFilter bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinPrefix:     1,
		MaxPrefix:     60,
		RecentSize:    256,
		LearnOnSubmit: true,
	}
}

// Completer guards a trie.Tree so it can be shared between callers.
// Writers (AddWord, Submit) exclude readers.
type Completer struct {
	mu          sync.RWMutex
	tree        *trie.Tree
	recent      *RecentCache
	opts        Options
	submissions int
	learned     int
	rejected    int
}

// NewCompleter creates a Completer seeded with words, in order.
func NewCompleter(opts Options, words ...string) *Completer {
	c := &Completer{
		tree: trie.New(),
		opts: opts,
	}
	if opts.RecentSize > 0 {
		c.recent = NewRecentCache(opts.RecentSize)
	}
	for _, w := range words {
		c.AddWord(w)
	}
	return c
}

// AddWord inserts word and reports whether it was not stored before.
// Once MaxWords is reached new words are dropped.
func (c *Completer) AddWord(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(word)
}

func (c *Completer) addLocked(word string) bool {
	if c.tree.Contains(word) {
		return false
	}
	if c.opts.MaxWords > 0 && c.tree.Len() >= c.opts.MaxWords {
		c.rejected++
		log.Debugf("Dictionary full (%d words), dropping '%s'", c.opts.MaxWords, word)
		return false
	}
	c.tree.Insert(word)
	return true
}

// Complete returns up to limit stored words starting with prefix.
// A limit below 1 returns every match.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if !c.acceptPrefix(prefix) {
		return []Suggestion{}
	}

	c.mu.RLock()
	words := c.tree.Complete(prefix)
	c.mu.RUnlock()

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	ranks := utils.CreateRankList(len(words))
	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: ranks[i]}
	}
	return suggestions
}

func (c *Completer) acceptPrefix(prefix string) bool {
	n := utf8.RuneCountInString(prefix)
	if c.opts.MinPrefix > 0 && n < c.opts.MinPrefix {
		log.Debugf("Prefix too short: '%s'", prefix)
		return false
	}
	if c.opts.MaxPrefix > 0 && n > c.opts.MaxPrefix {
		log.Debugf("Prefix too long: '%s'", prefix)
		return false
	}
	if c.opts.EnableFilter && !utils.IsValidInput(prefix) {
		log.Debugf("Prefix filtered out: '%s'", prefix)
		return false
	}
	return true
}

// Submit records a term the user accepted. The term goes to the recent
// cache, and into the dictionary when LearnOnSubmit is set. It reports
// whether the dictionary learned a new word. Empty terms are ignored.
func (c *Completer) Submit(term string) bool {
	if term == "" {
		return false
	}

	c.mu.Lock()
	c.submissions++
	learned := false
	if c.opts.LearnOnSubmit {
		learned = c.addLocked(term)
		if learned {
			c.learned++
		}
	}
	c.mu.Unlock()

	if c.recent != nil {
		c.recent.Add(term)
	}
	if learned {
		log.Debugf("Learned '%s'", term)
	}
	return learned
}

// SetLearnOnSubmit toggles whether Submit inserts terms.
func (c *Completer) SetLearnOnSubmit(on bool) {
	c.mu.Lock()
	c.opts.LearnOnSubmit = on
	c.mu.Unlock()
}

// Contains reports whether word is stored.
func (c *Completer) Contains(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Contains(word)
}

// Words returns every stored word in traversal order.
func (c *Completer) Words() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.All()
}

// Recent returns recently submitted terms starting with prefix, newest first.
func (c *Completer) Recent(prefix string, limit int) []string {
	if c.recent == nil {
		return []string{}
	}
	return c.recent.Search(prefix, limit)
}

// Stats returns counters about the dictionary and submissions.
func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	stats := map[string]int{
		"totalWords":    c.tree.Len(),
		"maxWords":      c.opts.MaxWords,
		"submissions":   c.submissions,
		"learnedWords":  c.learned,
		"rejectedWords": c.rejected,
	}
	c.mu.RUnlock()

	if c.recent != nil {
		for k, v := range c.recent.Stats() {
			stats[k] = v
		}
	}
	return stats
}
