package trie

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// implementations lists every Trie the contract tests run against
var implementations = []struct {
	name string
	new  func() Trie
}{
	{"rway", func() Trie { return NewRWayTrie() }},
	{"patricia", func() Trie { return NewPatriciaTrie() }},
}

// seeded returns a trie holding anton, ant and babak.
func seeded(t *testing.T, newTrie func() Trie) Trie {
	t.Helper()
	tr := newTrie()
	for _, e := range []Entry{{"anton", 5}, {"ant", 3}, {"babak", 5}} {
		if err := tr.Add(e); err != nil {
			t.Fatalf("Add(%q) failed: %v", e.Word, err)
		}
	}
	if tr.Size() != 3 {
		t.Fatalf("expected size 3 after seeding, got %d", tr.Size())
	}
	return tr
}

func TestDeleteWord(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := seeded(t, impl.new)
			if !tr.Delete("anton") {
				t.Errorf("expected Delete(anton) to report removal")
			}
			if tr.Size() != 2 {
				t.Errorf("expected size 2, got %d", tr.Size())
			}
			if tr.Contains("anton") {
				t.Errorf("anton still present after delete")
			}
			if !tr.Contains("ant") {
				t.Errorf("ant lost after deleting anton")
			}
			if diff := cmp.Diff([]string{"ant", "babak"}, slices.Collect(tr.Words())); diff != "" {
				t.Errorf("Words() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteAbsentWord(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := seeded(t, impl.new)
			for _, w := range []string{"an", "antons", "zebra", "", "Ant"} {
				if tr.Delete(w) {
					t.Errorf("Delete(%q) reported removal of absent word", w)
				}
			}
			if tr.Size() != 3 {
				t.Errorf("expected size 3, got %d", tr.Size())
			}
		})
	}
}

func TestDeleteInnerPathKeepsWords(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := seeded(t, impl.new)
			for _, w := range []string{"an", "anto", "ba", "bab"} {
				if tr.Delete(w) {
					t.Errorf("Delete(%q) removed a path that is not a word", w)
				}
			}
			if tr.Size() != 3 {
				t.Errorf("expected size 3, got %d", tr.Size())
			}
			if diff := cmp.Diff([]string{"ant", "anton", "babak"}, slices.Collect(tr.Words())); diff != "" {
				t.Errorf("Words() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContains(t *testing.T) {
	testCases := []struct {
		word     string
		expected bool
	}{
		{"ant", true},
		{"anton", true},
		{"babak", true},
		{"an", false},
		{"antonio", false},
		{"b", false},
		{"", false},
		{"ANT", false},
		{"an-t", false},
	}

	for _, impl := range implementations {
		tr := seeded(t, impl.new)
		for _, tc := range testCases {
			t.Run(impl.name+"/"+tc.word, func(t *testing.T) {
				if got := tr.Contains(tc.word); got != tc.expected {
					t.Errorf("Contains(%q): expected %v, got %v", tc.word, tc.expected, got)
				}
			})
		}
	}
}

func TestWordsPreOrder(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := seeded(t, impl.new)
			got := slices.Collect(tr.Words())
			if diff := cmp.Diff([]string{"ant", "anton", "babak"}, got); diff != "" {
				t.Errorf("Words() mismatch (-want +got):\n%s", diff)
			}
			if len(got) != tr.Size() {
				t.Errorf("expected %d words, got %d", tr.Size(), len(got))
			}
		})
	}
}

func TestWordsWithPrefix(t *testing.T) {
	words := []string{"go", "gone", "goal", "good", "gopher", "got", "going", "gnu", "a", "ab"}

	testCases := []struct {
		prefix   string
		expected []string
	}{
		{"go", []string{"go", "goal", "going", "gone", "good", "gopher", "got"}},
		{"goo", []string{"good"}},
		{"g", []string{"gnu", "go", "goal", "going", "gone", "good", "gopher", "got"}},
		{"gopher", []string{"gopher"}},
		{"gophers", nil},
		{"x", nil},
		{"Go", nil},
		{"", []string{"a", "ab", "gnu", "go", "goal", "going", "gone", "good", "gopher", "got"}},
	}

	for _, impl := range implementations {
		tr := impl.new()
		for _, w := range words {
			if err := tr.Add(NewEntry(w)); err != nil {
				t.Fatalf("Add(%q) failed: %v", w, err)
			}
		}
		for _, tc := range testCases {
			t.Run(impl.name+"/"+tc.prefix, func(t *testing.T) {
				got := slices.Collect(tr.WordsWithPrefix(tc.prefix))
				if diff := cmp.Diff(tc.expected, got); diff != "" {
					t.Errorf("WordsWithPrefix(%q) mismatch (-want +got):\n%s", tc.prefix, diff)
				}
			})
		}
	}
}

func TestWordsWithPrefixEarlyStop(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := seeded(t, impl.new)
			var got []string
			for w := range tr.Words() {
				got = append(got, w)
				if len(got) == 2 {
					break
				}
			}
			if diff := cmp.Diff([]string{"ant", "anton"}, got); diff != "" {
				t.Errorf("early stop mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	testCases := []struct {
		entry       Entry
		expected    error
		description string
	}{
		{Entry{"", 0}, ErrInvalidEntry, "Empty word"},
		{Entry{"word", 0}, ErrInvalidEntry, "Zero length"},
		{Entry{"word", -1}, ErrInvalidEntry, "Negative length"},
		{Entry{"Word", 4}, ErrOutOfAlphabet, "Uppercase letter"},
		{Entry{"wo rd", 5}, ErrOutOfAlphabet, "Space"},
		{Entry{"café", 5}, ErrOutOfAlphabet, "Non ASCII"},
		{Entry{"word2", 5}, ErrOutOfAlphabet, "Digit at end"},
	}

	for _, impl := range implementations {
		for _, tc := range testCases {
			t.Run(impl.name+"/"+tc.description, func(t *testing.T) {
				tr := seeded(t, impl.new)
				err := tr.Add(tc.entry)
				if !errors.Is(err, tc.expected) {
					t.Errorf("Add(%q): expected %v, got %v", tc.entry.Word, tc.expected, err)
				}
				if tr.Size() != 3 {
					t.Errorf("rejected entry changed size to %d", tr.Size())
				}
				if diff := cmp.Diff([]string{"ant", "anton", "babak"}, slices.Collect(tr.Words())); diff != "" {
					t.Errorf("rejected entry changed contents (-want +got):\n%s", diff)
				}
			})
		}
	}
}

// Raw Add counts every call, even for words that are already stored.
func TestAddCountsDuplicates(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := impl.new()
			for i := 0; i < 3; i++ {
				if err := tr.Add(NewEntry("anton")); err != nil {
					t.Fatalf("Add failed: %v", err)
				}
			}
			if tr.Size() != 3 {
				t.Errorf("expected size 3, got %d", tr.Size())
			}
			if n := len(slices.Collect(tr.Words())); n != 1 {
				t.Errorf("expected 1 distinct word, got %d", n)
			}
			tr.Delete("anton")
			if tr.Size() != 2 {
				t.Errorf("expected a single decrement, got size %d", tr.Size())
			}
		})
	}
}

func TestRWayDeletePrunes(t *testing.T) {
	tr := NewRWayTrie()
	for _, w := range []string{"anton", "ant", "babak"} {
		if err := tr.Add(NewEntry(w)); err != nil {
			t.Fatalf("Add(%q) failed: %v", w, err)
		}
	}

	tr.Delete("anton")
	if n := tr.get("ant"); n == nil || n.next['o'-'a'] != nil {
		t.Errorf("expected the 'on' branch under ant to be pruned")
	}
	assertNoUselessNodes(t, tr)

	tr.Delete("babak")
	if tr.root.next['b'-'a'] != nil {
		t.Errorf("expected the whole 'b' branch to be pruned")
	}
	assertNoUselessNodes(t, tr)

	tr.Delete("ant")
	if !tr.root.useless() {
		t.Errorf("expected an empty root after deleting every word")
	}
	if tr.root == nil {
		t.Errorf("root must never be removed")
	}
	if tr.Size() != 0 {
		t.Errorf("expected size 0, got %d", tr.Size())
	}
}

// Deleting a word that is only a path prefix must leave the path alone.
func TestRWayDeleteInnerPath(t *testing.T) {
	tr := NewRWayTrie()
	if err := tr.Add(NewEntry("anton")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if tr.Delete("ant") {
		t.Errorf("Delete(ant) reported removal of a non-terminal path")
	}
	if !tr.Contains("anton") {
		t.Errorf("anton lost after deleting its prefix")
	}
	assertNoUselessNodes(t, tr)
}

// assertNoUselessNodes checks every non-root node ends a word or has a child.
func assertNoUselessNodes(t *testing.T, tr *RWayTrie) {
	t.Helper()
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if depth > 0 && n.useless() {
			t.Errorf("found dangling node at depth %d", depth)
		}
		for _, child := range n.next {
			if child != nil {
				walk(child, depth+1)
			}
		}
	}
	walk(tr.root, 0)
}

func TestLongWord(t *testing.T) {
	long := make([]byte, 100000)
	for i := range long {
		long[i] = byte('a' + i%26)
	}
	word := string(long)

	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			tr := impl.new()
			if err := tr.Add(NewEntry(word)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if !tr.Contains(word) {
				t.Errorf("long word not found")
			}
			if !tr.Delete(word) {
				t.Errorf("long word not deleted")
			}
			if tr.Size() != 0 {
				t.Errorf("expected size 0, got %d", tr.Size())
			}
		})
	}
}

func BenchmarkWordsWithPrefix(b *testing.B) {
	tr := NewRWayTrie()
	for i := 0; i < 10000; i++ {
		w := []byte{byte('a' + i%26), byte('a' + (i/26)%26), byte('a' + (i/676)%26), 'x'}
		tr.Add(NewEntry(string(w)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tr.WordsWithPrefix("a") {
		}
	}
}
