package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word completions
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
		logger:    logger.New("server"),
	}
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

// Start serves requests until the input is exhausted.
// It returns nil on EOF and the read error otherwise.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}
		s.requestCount++

		if err := s.handleRaw(raw); err != nil {
			return err
		}
	}
}

func (s *Server) handleRaw(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Warnf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}
	return s.handleRequest(req)
}

func (s *Server) handleRequest(req Request) error {
	s.logger.Debug("Request", "id", req.ID, "op", req.Op, "prefix", req.Prefix)

	switch req.Op {
	case "", OpComplete:
		return s.handleComplete(req)
	case OpSubmit:
		return s.handleSubmit(req)
	case OpContains:
		return s.send(ContainsResponse{ID: req.ID, Found: s.completer.Contains(req.Prefix)})
	case OpRecent:
		return s.sendWords(req.ID, s.completer.Recent(req.Prefix, s.clampLimit(req.Limit)))
	case OpAll:
		return s.sendWords(req.ID, s.completer.Words())
	case OpStats:
		return s.send(StatsResponse{ID: req.ID, Stats: s.completer.Stats()})
	case OpHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

// clampLimit applies the configured default and ceiling to a requested limit.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}
	if ceiling := s.config.Server.MaxLimit; ceiling > 0 && limit > ceiling {
		limit = ceiling
	}
	return limit
}

func (s *Server) handleComplete(req Request) error {
	start := time.Now()
	suggestions := s.completer.Complete(req.Prefix, s.clampLimit(req.Limit))
	elapsed := time.Since(start)

	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{Word: sg.Word, Rank: sg.Rank}
	}

	s.logger.Debugf("Took [ %v ] for prefix '%s', %d results", elapsed, req.Prefix, len(out))
	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleSubmit(req Request) error {
	if req.Prefix == "" {
		return s.sendError(req.ID, "missing 'p' parameter", 400)
	}
	learned := s.completer.Submit(req.Prefix)
	return s.send(SubmitResponse{ID: req.ID, Status: "ok", Learned: learned})
}

func (s *Server) sendWords(id string, words []string) error {
	if words == nil {
		words = []string{}
	}
	return s.send(WordsResponse{ID: id, Words: words, Count: len(words)})
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(CompletionError{ID: id, Error: message, Code: code})
}

// send encodes one response and flushes it.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}
	return nil
}
