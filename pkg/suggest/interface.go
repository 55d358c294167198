// Package suggest serves completions from a trie.Tree shared between callers.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns up to limit stored words starting with prefix
	Complete(prefix string, limit int) []Suggestion

	// Submit records a term the user accepted, learning it when enabled
	Submit(term string) bool

	// AddWord adds a word to the dictionary, reporting whether it was new
	AddWord(word string) bool

	// Contains reports whether word is stored
	Contains(word string) bool

	// Words returns every stored word
	Words() []string

	// Recent returns recently submitted terms starting with prefix
	Recent(prefix string, limit int) []string

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
