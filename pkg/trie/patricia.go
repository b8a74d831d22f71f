package trie

import (
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PatriciaTrie implements Trie on top of a compressed patricia tree.
// Items stored in the tree are the word lengths.
type PatriciaTrie struct {
	trie *patricia.Trie
	size int
}

// NewPatriciaTrie creates an empty patricia backed trie
func NewPatriciaTrie() *PatriciaTrie {
	return &PatriciaTrie{trie: patricia.NewTrie()}
}

// Add stores the entry, overwriting the length of an existing word.
// Like RWayTrie, the counter grows on every call.
func (t *PatriciaTrie) Add(entry Entry) error {
	if err := validate(entry); err != nil {
		return fmt.Errorf("add %q: %w", entry.Word, err)
	}
	t.trie.Set(patricia.Prefix(entry.Word), entry.Length)
	t.size++
	return nil
}

// Delete removes the word; the patricia tree compacts itself.
// Keys that only exist as a path to longer words are left alone.
func (t *PatriciaTrie) Delete(word string) bool {
	if word == "" || !isAlphabetic(word) {
		return false
	}
	key := patricia.Prefix(word)
	if t.trie.Get(key) == nil {
		return false
	}
	if !t.trie.Delete(key) {
		return false
	}
	t.size--
	return true
}

// Contains reports whether the word is stored
func (t *PatriciaTrie) Contains(word string) bool {
	if word == "" || !isAlphabetic(word) {
		return false
	}
	return t.trie.Get(patricia.Prefix(word)) != nil
}

// Words yields all stored words.
func (t *PatriciaTrie) Words() iter.Seq[string] {
	return t.WordsWithPrefix("")
}

// WordsWithPrefix collects the subtree and yields it sorted.
// The patricia tree does not visit children in key order, and lexicographic
// order is exactly pre-order with children 'a' to 'z'.
func (t *PatriciaTrie) WordsWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !isAlphabetic(prefix) {
			return
		}

		var words []string
		err := t.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
			words = append(words, string(p))
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting patricia subtree: %v", err)
			return
		}

		slices.Sort(words)
		for _, w := range words {
			if !yield(w) {
				return
			}
		}
	}
}

// Size returns the word counter
func (t *PatriciaTrie) Size() int {
	return t.size
}
