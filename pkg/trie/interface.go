// Package trie is the core of the vocabulary, storing lowercase words in a prefix tree and
// enumerating them by prefix in letter order.
package trie

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidEntry is returned for an empty word or a non-positive length.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrOutOfAlphabet is returned when a word holds a byte outside 'a'..'z'.
	ErrOutOfAlphabet = errors.New("character out of alphabet")
)

// Entry pairs a word with its length, which is stored as the terminal marker.
type Entry struct {
	Word   string
	Length int
}

// NewEntry builds an Entry whose length is len(word).
func NewEntry(word string) Entry {
	return Entry{Word: word, Length: len(word)}
}

// Trie defines the contract shared by every word store used by the vocabulary
type Trie interface {
	// Add inserts the entry. Size grows on every successful call, duplicates included.
	Add(entry Entry) error

	// Delete removes the word and prunes empty branches. Reports whether a word was removed.
	Delete(word string) bool

	// Contains reports whether the word is stored
	Contains(word string) bool

	// Words yields every stored word in pre-order, children a to z
	Words() iter.Seq[string]

	// WordsWithPrefix yields the words under prefix in the same order as Words.
	// Unknown prefixes yield nothing.
	WordsWithPrefix(prefix string) iter.Seq[string]

	// Size returns the tracked word counter
	Size() int
}

// validate checks an entry before any node is touched, so a rejected
// entry never leaves partial paths behind.
func validate(entry Entry) error {
	if entry.Word == "" || entry.Length <= 0 {
		return ErrInvalidEntry
	}
	for i := 0; i < len(entry.Word); i++ {
		if !inAlphabet(entry.Word[i]) {
			return ErrOutOfAlphabet
		}
	}
	return nil
}

func inAlphabet(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if !inAlphabet(s[i]) {
			return false
		}
	}
	return true
}
