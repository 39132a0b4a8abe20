// apps/go-server/internal/lexicon/load.go
//
// Loading the lexicon from its backing store.
//
// Initialization behavior:
//   1. If a word list path is configured (WORDLIST_FILE), read that file.
//   2. Otherwise fall back to the word list embedded in the assets package.
//
// The Provider loads lazily on first use. A successful load is kept for the
// life of the process; a failed load is not cached, so the next Get retries
// once the file has been fixed.

package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/assets"
)

// ErrDictionaryUnavailable is returned when the word list cannot be read.
var ErrDictionaryUnavailable = errors.New("no dictionary found")

// Source yields the process lexicon. Implementations must be safe for
// concurrent use.
type Source interface {
	Lexicon() (*Lexicon, error)
}

// LoadFunc reads a word list from wherever it lives.
type LoadFunc func() (*Lexicon, error)

// Read parses a whitespace-delimited word list.
func Read(r io.Reader) (*Lexicon, error) {
	var list []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(list), nil
}

// ReadFile loads a word list from path.
func ReadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Embedded loads the default list bundled with the binary.
func Embedded() (*Lexicon, error) {
	list, err := assets.Wordlist()
	if err != nil {
		return nil, err
	}
	return New(list), nil
}

// Provider lazily loads a lexicon exactly once per successful load.
type Provider struct {
	mu   sync.Mutex
	load LoadFunc
	lex  *Lexicon
}

// NewProvider wraps load in a lazy, retry-on-failure Provider.
func NewProvider(load LoadFunc) *Provider {
	return &Provider{load: load}
}

// FromPath returns a Provider reading path, or the embedded list when path is empty.
func FromPath(path string) *Provider {
	if path == "" {
		return NewProvider(Embedded)
	}
	return NewProvider(func() (*Lexicon, error) { return ReadFile(path) })
}

// Static returns a Provider that always yields lex. Handy for tests.
func Static(lex *Lexicon) *Provider {
	return &Provider{lex: lex}
}

// Lexicon returns the loaded lexicon, loading it on first call.
// Load failures and empty lists are reported as ErrDictionaryUnavailable.
func (p *Provider) Lexicon() (*Lexicon, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lex != nil {
		return p.lex, nil
	}
	if p.load == nil {
		return nil, ErrDictionaryUnavailable
	}
	lex, err := p.load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}
	if lex.Len() == 0 {
		return nil, fmt.Errorf("%w: word list is empty", ErrDictionaryUnavailable)
	}
	log.Debug().Int("words", lex.Len()).Msg("lexicon loaded")
	p.lex = lex
	return lex, nil
}
