/*
Package vocabulary implements a word vocabulary with prefix search on top of a trie.

Words shorter than two letters are ignored and duplicates are skipped when
adding through Add. Bulk loading from a word list inserts every line longer
than one letter without checking for duplicates.

Prefix search narrows results by length: WordsWithPrefixK keeps only words
whose length is at most k+2, preserving the trie's letter order.

	v := vocabulary.New()
	v.Add("anton", "ant", "babak", "back")
	for w := range v.WordsWithPrefixK("an", 5) {
		fmt.Println(w) // ant, anton
	}
*/
package vocabulary

import (
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/bastiangx/wordvocab/pkg/dictionary"
	"github.com/bastiangx/wordvocab/pkg/trie"
	"github.com/charmbracelet/log"
)

const (
	// MinWordLength is the shortest word the vocabulary accepts
	MinWordLength = 2
	// DefaultBuckets is the k used by WordsWithPrefix
	DefaultBuckets = 3
)

// Vocabulary is a set of lowercase words backed by a swappable trie.
// Not safe for concurrent use.
type Vocabulary struct {
	trie trie.Trie
}

// New creates an empty vocabulary over an RWayTrie
func New() *Vocabulary {
	return &Vocabulary{trie: trie.NewRWayTrie()}
}

// NewWithTrie creates a vocabulary that takes ownership of t
func NewWithTrie(t trie.Trie) *Vocabulary {
	return &Vocabulary{trie: t}
}

// Add inserts each word that is long enough and not yet present.
// Returns how many were inserted; on a trie error the count so far is returned with it.
func (v *Vocabulary) Add(words ...string) (int, error) {
	added := 0
	for _, word := range words {
		if len(word) < MinWordLength || v.trie.Contains(word) {
			continue
		}
		if err := v.trie.Add(trie.NewEntry(word)); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Contains reports whether word is in the vocabulary
func (v *Vocabulary) Contains(word string) bool {
	return v.trie.Contains(word)
}

// Delete removes word, reporting whether it was present
func (v *Vocabulary) Delete(word string) bool {
	return v.trie.Delete(word)
}

// Size returns the number of words tracked by the trie
func (v *Vocabulary) Size() int {
	return v.trie.Size()
}

// WordsWithPrefix is WordsWithPrefixK with DefaultBuckets
func (v *Vocabulary) WordsWithPrefix(prefix string) iter.Seq[string] {
	return v.WordsWithPrefixK(prefix, DefaultBuckets)
}

// WordsWithPrefixK yields the words under prefix whose length is at most k+2,
// in the trie's order. The filter is evaluated lazily.
func (v *Vocabulary) WordsWithPrefixK(prefix string, k int) iter.Seq[string] {
	maxLen := k + 2
	words := v.trie.WordsWithPrefix(prefix)
	return func(yield func(string) bool) {
		for w := range words {
			if len(w) > maxLen {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Trie returns the backing trie
func (v *Vocabulary) Trie() trie.Trie {
	return v.trie
}

// SetTrie replaces the backing trie. The old one is dropped, not copied.
func (v *Vocabulary) SetTrie(t trie.Trie) {
	v.trie = t
}

// LoadFrom reads the named list from src and inserts every line longer than one letter.
func (v *Vocabulary) LoadFrom(src dictionary.Source, name string) (int, error) {
	start := time.Now()
	rc, err := src.Open(name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	added, err := v.LoadReader(rc)
	if err != nil {
		return added, fmt.Errorf("load %s: %w", name, err)
	}
	log.Debugf("Loaded %d words from %s in %v", added, name, time.Since(start))
	return added, nil
}

// LoadReader inserts every line of r longer than one letter, without a duplicate check.
func (v *Vocabulary) LoadReader(r io.Reader) (int, error) {
	added := 0
	lineNo := 0
	err := dictionary.ScanLines(r, func(line string) error {
		lineNo++
		if len(line) < MinWordLength {
			return nil
		}
		if err := v.trie.Add(trie.NewEntry(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		added++
		return nil
	})
	return added, err
}
