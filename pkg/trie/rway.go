package trie

import (
	"fmt"
	"iter"
)

// Alphabet is the number of child slots per node, one per lowercase letter.
const Alphabet = 26

// node holds the length of the word ending here (0 when none) and one child slot per letter.
type node struct {
	wordLength int
	next       [Alphabet]*node
}

// useless reports whether the node ends no word and has no children.
func (n *node) useless() bool {
	if n.wordLength != 0 {
		return false
	}
	for _, child := range n.next {
		if child != nil {
			return false
		}
	}
	return true
}

// RWayTrie is a 26-way trie over 'a'..'z'.
// Not safe for concurrent use.
type RWayTrie struct {
	root *node
	size int
}

// NewRWayTrie creates an empty trie
func NewRWayTrie() *RWayTrie {
	return &RWayTrie{root: &node{}}
}

// Add walks the word from the root, creating missing nodes, and marks the last one.
// The counter is bumped even when the word already existed; callers that care
// about duplicates check Contains first.
func (t *RWayTrie) Add(entry Entry) error {
	if err := validate(entry); err != nil {
		return fmt.Errorf("add %q: %w", entry.Word, err)
	}

	n := t.root
	for i := 0; i < len(entry.Word); i++ {
		c := entry.Word[i] - 'a'
		if n.next[c] == nil {
			n.next[c] = &node{}
		}
		n = n.next[c]
	}
	n.wordLength = entry.Length
	t.size++
	return nil
}

// Delete clears the word's marker and unlinks every ancestor left without
// a word or children. The root always stays.
func (t *RWayTrie) Delete(word string) bool {
	if word == "" || !isAlphabetic(word) {
		return false
	}

	path := make([]*node, 0, len(word)+1)
	n := t.root
	path = append(path, n)
	for i := 0; i < len(word); i++ {
		n = n.next[word[i]-'a']
		if n == nil {
			return false
		}
		path = append(path, n)
	}

	if n.wordLength == 0 {
		return false
	}
	n.wordLength = 0
	t.size--

	// path[i] is reached through word[i-1]
	for i := len(path) - 1; i > 0; i-- {
		if !path[i].useless() {
			break
		}
		path[i-1].next[word[i-1]-'a'] = nil
	}
	return true
}

// Contains reports whether word ends at an existing node
func (t *RWayTrie) Contains(word string) bool {
	n := t.get(word)
	return n != nil && n.wordLength != 0
}

// get returns the node spelled by key, or nil when the path is missing.
func (t *RWayTrie) get(key string) *node {
	n := t.root
	for i := 0; i < len(key); i++ {
		if !inAlphabet(key[i]) {
			return nil
		}
		n = n.next[key[i]-'a']
		if n == nil {
			return nil
		}
	}
	return n
}

// Words yields all stored words.
func (t *RWayTrie) Words() iter.Seq[string] {
	return t.WordsWithPrefix("")
}

// frame is a pending node on the traversal stack along with the word spelled to reach it.
type frame struct {
	n      *node
	prefix string
}

// WordsWithPrefix walks the subtree under prefix depth-first.
// A node's own word is yielded before its children, children go 'a' to 'z'.
// The trie must not be modified while the sequence is being consumed.
func (t *RWayTrie) WordsWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := t.get(prefix)
		if start == nil {
			return
		}

		stack := []frame{{n: start, prefix: prefix}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.n.wordLength != 0 {
				if !yield(top.prefix) {
					return
				}
			}

			// pushed in reverse so 'a' pops first
			for c := Alphabet - 1; c >= 0; c-- {
				if child := top.n.next[c]; child != nil {
					stack = append(stack, frame{n: child, prefix: top.prefix + string(rune('a'+c))})
				}
			}
		}
	}
}

// Size returns the word counter
func (t *RWayTrie) Size() int {
	return t.size
}
