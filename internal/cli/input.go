// Package cli handles cmd line input for querying and editing the vocabulary interactively.
package cli

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordvocab/internal/utils"
	"github.com/bastiangx/wordvocab/pkg/vocabulary"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines from stdin. A bare line is a prefix query,
// lines starting with ':' are commands:
//
//	:add w...   add words (deduplicated)
//	:del w      delete a word
//	:has w      membership test
//	:size       word count
//	:k N        change the bucket width
type InputHandler struct {
	vocab           *vocabulary.Vocabulary
	reader          *bufio.Reader
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	buckets         int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(vocab *vocabulary.Vocabulary, minLength, maxLength, limit, k int, noFilter bool) *InputHandler {
	return &InputHandler{
		vocab:           vocab,
		reader:          bufio.NewReader(os.Stdin),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		buckets:         k,
		noFilter:        noFilter,
	}
}

// Start begins the interface loop and returns nil once stdin is closed.
func (h *InputHandler) Start() error {
	log.Print("wordvocab CLI")
	log.Printf("%s words loaded. type a prefix and press Enter (Ctrl+C to exit):", utils.FormatWithCommas(h.vocab.Size()))

	for {
		log.Print("> ")
		line, err := h.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput routes a line to a command or a prefix query
func (h *InputHandler) handleInput(line string) {
	if strings.HasPrefix(line, ":") {
		h.handleCommand(strings.Fields(line[1:]))
		return
	}
	h.handlePrefix(line)
}

func (h *InputHandler) handleCommand(args []string) {
	if len(args) == 0 {
		log.Errorf("Empty command")
		return
	}

	switch args[0] {
	case "add":
		added, err := h.vocab.Add(args[1:]...)
		if err != nil {
			log.Errorf("Added %d words before failing: %v", added, err)
			return
		}
		log.Printf("Added %d of %d words", added, len(args)-1)
	case "del":
		if len(args) != 2 {
			log.Errorf("usage: :del word")
			return
		}
		if h.vocab.Delete(args[1]) {
			log.Printf("Deleted '%s'", args[1])
		} else {
			log.Warnf("'%s' is not in the vocabulary", args[1])
		}
	case "has":
		if len(args) != 2 {
			log.Errorf("usage: :has word")
			return
		}
		log.Printf("%s: %v", args[1], h.vocab.Contains(args[1]))
	case "size":
		log.Printf("%s words", utils.FormatWithCommas(h.vocab.Size()))
	case "k":
		if len(args) != 2 {
			log.Errorf("usage: :k N")
			return
		}
		k, err := strconv.Atoi(args[1])
		if err != nil || k < 0 {
			log.Errorf("Invalid bucket width: %s", args[1])
			return
		}
		h.buckets = k
		log.Printf("Bucket width set to %d (max word length %d)", k, k+2)
	default:
		log.Errorf("Unknown command: %s", args[0])
	}
}

// handlePrefix validates the prefix and prints up to suggestLimit matches
func (h *InputHandler) handlePrefix(prefix string) {
	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter {
		if !utils.IsValidInput(prefix) {
			log.Warnf("No words found for prefix: '%s' (filtered out)", prefix)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	matches := h.collect(prefix)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(matches) == 0 {
		log.Warnf("No words found for prefix: '%s'", prefix)
		return
	}

	log.Printf("Found %d words for prefix '%s' (k=%d):", len(matches), prefix, h.buckets)
	for i, w := range matches {
		log.Printf("%2d. \033[38;5;75m%s\033[0m", i+1, w)
	}
}

// collect returns at most suggestLimit words for prefix
func (h *InputHandler) collect(prefix string) []string {
	var matches []string
	for w := range h.vocab.WordsWithPrefixK(prefix, h.buckets) {
		matches = append(matches, w)
		if h.suggestLimit > 0 && len(matches) >= h.suggestLimit {
			break
		}
	}
	return matches
}
