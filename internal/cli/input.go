// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	learnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
)

// InputHandler reads lines and answers each one. Plain lines are completed;
// a leading + submits the rest of the line, ? tests membership, and
// :all, :recent and :stats inspect the dictionary.
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	requestCount    int
	noFilter        bool
	in              io.Reader
	out             *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
		in:              os.Stdin,
		out:             log.NewWithOptions(os.Stdout, log.Options{}),
	}
}

// SetIO redirects input and output, mostly for tests.
func (h *InputHandler) SetIO(r io.Reader, w io.Writer) {
	h.in = r
	h.out = log.NewWithOptions(w, log.Options{})
}

// Start begins the interface loop. It returns nil when input ends.
func (h *InputHandler) Start() error {
	h.out.Print("WordTrie CLI [BETA]")
	h.out.Print("type a prefix and press Enter (+term submits, ?term checks, :all lists, Ctrl+C exits):")

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

func (h *InputHandler) handleLine(line string) {
	h.requestCount++

	switch {
	case strings.HasPrefix(line, "+"):
		h.handleSubmit(strings.TrimSpace(line[1:]))
	case strings.HasPrefix(line, "?"):
		h.handleContains(strings.TrimSpace(line[1:]))
	case line == ":all":
		h.printWords(h.completer.Words())
	case line == ":stats":
		h.handleStats()
	case strings.HasPrefix(line, ":recent"):
		h.printWords(h.completer.Recent(strings.TrimSpace(strings.TrimPrefix(line, ":recent")), h.suggestLimit))
	default:
		h.handleInput(line)
	}
}

func (h *InputHandler) handleSubmit(term string) {
	if term == "" {
		h.out.Error("Nothing to submit")
		return
	}
	if h.completer.Submit(term) {
		h.out.Printf("Learned %s", learnStyle.Render(term))
		return
	}
	h.out.Printf("Submitted '%s'", term)
}

func (h *InputHandler) handleContains(term string) {
	if h.completer.Contains(term) {
		h.out.Printf("'%s' is stored", term)
		return
	}
	h.out.Printf("'%s' is not stored", term)
}

func (h *InputHandler) handleStats() {
	stats := h.completer.Stats()
	for _, key := range []string{"totalWords", "learnedWords", "submissions", "recentWords"} {
		if v, ok := stats[key]; ok {
			h.out.Printf("%-14s %s", key, utils.FormatWithCommas(v))
		}
	}
}

// handleInput validates a prefix and prints its completions.
func (h *InputHandler) handleInput(prefix string) {
	n := utf8.RuneCountInString(prefix)
	if n < h.minPrefixLength {
		h.out.Errorf("Prefix too short: %s", prefix)
		return
	}
	if h.maxPrefixLength > 0 && n > h.maxPrefixLength {
		h.out.Errorf("Prefix too long: %s", prefix)
		return
	}
	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.out.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for _, s := range suggestions {
		h.out.Printf("%2d. %s", s.Rank, wordStyle.Render(s.Word))
	}
}

func (h *InputHandler) printWords(words []string) {
	if len(words) == 0 {
		h.out.Warn("Nothing stored")
		return
	}
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}
