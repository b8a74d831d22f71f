package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordvocab/internal/logger"
	"github.com/bastiangx/wordvocab/internal/utils"
	"github.com/bastiangx/wordvocab/pkg/config"
	"github.com/bastiangx/wordvocab/pkg/vocabulary"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for a single vocabulary
type Server struct {
	vocab        *vocabulary.Vocabulary
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(vocab *vocabulary.Vocabulary, cfg *config.Config) *Server {
	return NewServerWithIO(vocab, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(vocab *vocabulary.Vocabulary, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		vocab:   vocab,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		logger:  logger.New("server"),
	}
}

// Start sends a ready status and serves requests until the input ends.
// A malformed message stops the loop since the stream cannot be resynced.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", ActionComplete:
		s.handleComplete(req)
	case ActionContains:
		word, ok := s.singleWord(req)
		if !ok {
			return
		}
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Found: s.vocab.Contains(word)})
	case ActionDelete:
		word, ok := s.singleWord(req)
		if !ok {
			return
		}
		found := s.vocab.Delete(word)
		s.logger.Debug("Deleted word", "word", word, "found", found)
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Found: found})
	case ActionAdd:
		s.handleAdd(req)
	case ActionSize:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Count: s.vocab.Size()})
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 404)
	}
}

// singleWord extracts the one word required by contains and delete
func (s *Server) singleWord(req Request) (string, bool) {
	if len(req.Words) != 1 {
		s.sendError(req.ID, fmt.Sprintf("Action %s takes exactly one word, got %d", req.Action, len(req.Words)), 400)
		return "", false
	}
	return utils.NormalizeWord(req.Words[0]), true
}

// handleAdd inserts through the deduplicating path and reports the count.
// On an invalid word the words before it stay added and the count says how many.
func (s *Server) handleAdd(req Request) {
	words := make([]string, len(req.Words))
	for i, w := range req.Words {
		words[i] = utils.NormalizeWord(w)
	}

	added, err := s.vocab.Add(words...)
	if err != nil {
		s.logger.Debugf("Add failed after %d words: %v", added, err)
		s.sendResponse(StatusResponse{ID: req.ID, Status: "error", Count: added, Error: err.Error()})
		return
	}
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Count: added})
}

// handleComplete validates the prefix, then returns up to limit words from the
// bucket filtered prefix search.
func (s *Server) handleComplete(req Request) {
	cfg := s.config.Server
	prefix := utils.NormalizeWord(req.Prefix)

	if prefix == "" {
		s.sendError(req.ID, "Missing 'p' parameter", 400)
		return
	}
	if len(prefix) < cfg.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix must be at least %d characters", cfg.MinPrefix), 400)
		return
	}
	if len(prefix) > cfg.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", cfg.MaxPrefix), 400)
		return
	}
	if cfg.EnableFilter && !utils.IsValidInput(prefix) {
		s.sendError(req.ID, "Prefix may only contain letters a-z", 400)
		return
	}

	k := cfg.DefaultK
	if req.K != nil {
		k = *req.K
	}
	if k < 0 {
		s.sendError(req.ID, "k must not be negative", 400)
		return
	}

	limit := cfg.Limit(req.Limit)

	start := time.Now()
	words := make([]string, 0, limit)
	for w := range s.vocab.WordsWithPrefixK(prefix, k) {
		words = append(words, w)
		if len(words) >= limit {
			break
		}
	}
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(words))
	suggestions := make([]CompletionSuggestion, len(words))
	for i, w := range words {
		suggestions[i] = CompletionSuggestion{Word: w, Rank: ranks[i]}
	}

	s.logger.Debugf("Took [ %v ] for prefix '%s' (k=%d, %d results)", elapsed, prefix, k, len(words))
	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// sendResponse encodes one message and flushes it to the client
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{ID: id, Error: message, Code: code})
}
