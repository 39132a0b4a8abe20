// Package solver finds every lexicon word that can be traced on a Boggle
// board through adjacent, non-repeating cells.
//
// Control flow: the board is validated, the lexicon is obtained, each cell
// is searched as a starting point, and the per-cell results are unioned and
// ordered.
package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
)

// Options tune a single solve.
type Options struct {
	// Order of the returned words.
	Order Order
	// MinLength drops words shorter than this many letters. Zero keeps all.
	MinLength int
}

// Option mutates Options.
type Option func(*Options)

// WithOrder sets the result order.
func WithOrder(o Order) Option { return func(opts *Options) { opts.Order = o } }

// WithMinLength drops words shorter than n letters.
func WithMinLength(n int) Option { return func(opts *Options) { opts.MinLength = n } }

// DefaultOptions returns lexicographic order with no length floor.
func DefaultOptions() Options {
	return Options{Order: OrderLexicographic}
}

// Solver pairs the search with an injected lexicon source.
type Solver struct {
	src lexicon.Source
}

// New returns a Solver reading its lexicon from src.
func New(src lexicon.Source) *Solver {
	return &Solver{src: src}
}

// Lexicon exposes the underlying lexicon, loading it if needed.
func (s *Solver) Lexicon() (*lexicon.Lexicon, error) {
	return s.src.Lexicon()
}

// Solve validates b, loads the lexicon and returns the words on b.
// It fails with board.ErrInvalidBoard or lexicon.ErrDictionaryUnavailable.
func (s *Solver) Solve(b board.Board, opts ...Option) ([]string, error) {
	if err := board.Validate(b); err != nil {
		solveTotal.WithLabelValues("bad_board").Inc()
		return nil, err
	}
	lex, err := s.src.Lexicon()
	if err != nil {
		solveTotal.WithLabelValues("no_dictionary").Inc()
		return nil, err
	}
	return solve(lex, b, opts), nil
}

// Solve searches b against lex. A nil lex is reported as
// lexicon.ErrDictionaryUnavailable.
func Solve(lex *lexicon.Lexicon, b board.Board, opts ...Option) ([]string, error) {
	if err := board.Validate(b); err != nil {
		solveTotal.WithLabelValues("bad_board").Inc()
		return nil, err
	}
	if lex == nil {
		solveTotal.WithLabelValues("no_dictionary").Inc()
		return nil, lexicon.ErrDictionaryUnavailable
	}
	return solve(lex, b, opts), nil
}

// solve runs the search on an already validated board.
func solve(lex *lexicon.Lexicon, b board.Board, opts []Option) []string {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := time.Now()
	w := newWalker(lex, b)
	sets := make([]map[string]struct{}, 0, w.rows*w.cols)
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			found, err := w.wordsFrom(r, c)
			if err != nil {
				// Nothing the caller can do; drop this start cell.
				branchAnomalies.Inc()
				log.Debug().Err(err).Int("row", r).Int("col", c).Msg("search branch abandoned")
				continue
			}
			sets = append(sets, found)
		}
	}

	if o.MinLength > 0 {
		for _, s := range sets {
			for word := range s {
				if len(word) < o.MinLength {
					delete(s, word)
				}
			}
		}
	}
	words := Aggregate(o.Order, sets...)

	elapsed := time.Since(start)
	solveTotal.WithLabelValues("ok").Inc()
	solveDuration.Observe(elapsed.Seconds())
	solveWords.Observe(float64(len(words)))
	log.Debug().Int("words", len(words)).Dur("elapsed", elapsed).Msg("board solved")
	return words
}
