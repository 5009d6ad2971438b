package watermark

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/getmockd/invisink/pkg/logging"
	"github.com/getmockd/invisink/pkg/util"
)

// ctxCheckInterval is how many runes ScanReader consumes between context checks.
const ctxCheckInterval = 4096

// Match is one watermark located by a Scanner. Start and End are byte offsets
// into the scanned text, so text[Start:End] is the watermark itself.
type Match struct {
	ID    uuid.UUID
	Start int
	End   int
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithLogger sets the logger used for debug output about skipped content.
func WithLogger(l *slog.Logger) ScanOption {
	return func(s *Scanner) {
		s.logger = logging.Component(l, "scanner")
	}
}

// Scanner finds every watermark embedded in a text.
type Scanner struct {
	codec  *Codec
	logger *slog.Logger
}

// NewScanner returns a Scanner over c, or over the default codec when c is nil.
func NewScanner(c *Codec, opts ...ScanOption) *Scanner {
	if c == nil {
		c = Default()
	}
	s := &Scanner{codec: c, logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns every watermark in text in order of appearance.
func (s *Scanner) Scan(text string) []Match {
	st := s.newState()
	for off, r := range text {
		st.feed(r, off, utf8.RuneLen(r))
	}
	st.endRun()
	return st.matches
}

// FindAll returns the identifiers of every watermark in text, in order.
func (s *Scanner) FindAll(text string) []uuid.UUID {
	return identifiers(s.Scan(text))
}

// Contains reports whether text carries at least one valid watermark.
func (s *Scanner) Contains(text string) bool {
	return len(s.Scan(text)) > 0
}

// ScanReader scans a stream with the same rules as Scan. Offsets are byte
// offsets from the start of the stream.
func (s *Scanner) ScanReader(ctx context.Context, r io.Reader) ([]Match, error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	st := s.newState()
	off := 0
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return st.matches, err
			}
		}
		ch, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st.matches, fmt.Errorf("read text: %w", err)
		}
		st.feed(ch, off, size)
		off += size
	}
	st.endRun()
	return st.matches, nil
}

func (s *Scanner) newState() *scanState {
	return &scanState{codec: s.codec, logger: s.logger}
}

// scanState tracks the current run of alphabet runes and the window being
// filled inside it. Windows are aligned to the first rune of the run.
type scanState struct {
	codec  *Codec
	logger *slog.Logger

	inRun    bool
	runStart int
	window   [WatermarkLen]rune
	filled   int
	winStart int

	matches []Match
}

func (st *scanState) feed(r rune, off, size int) {
	if !st.codec.alphabet.Contains(r) {
		st.endRun()
		return
	}
	if !st.inRun {
		st.inRun = true
		st.runStart = off
	}
	if st.filled == 0 {
		st.winStart = off
	}
	st.window[st.filled] = r
	st.filled++
	if st.filled < WatermarkLen {
		return
	}

	st.filled = 0
	u, err := st.codec.decodeWindow(&st.window)
	if err != nil {
		st.logger.Debug("skipping malformed window",
			"offset", st.winStart, "error", err)
		return
	}
	st.matches = append(st.matches, Match{ID: u, Start: st.winStart, End: off + size})
}

func (st *scanState) endRun() {
	if st.inRun && st.filled > 0 {
		st.logger.Debug("discarding partial window",
			"offset", st.winStart,
			"run_start", st.runStart,
			"runes", st.filled,
			"fragment", util.Truncate(util.Visible(string(st.window[:st.filled])), 0))
	}
	st.inRun = false
	st.filled = 0
}

func identifiers(matches []Match) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}
