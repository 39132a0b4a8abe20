// apps/go-server/internal/lexicon/lexicon.go
//
// Sorted, read-only word set used by the solver.
//
// Responsibilities:
//   - Normalize a raw word list (trim, lowercase, drop non a–z entries).
//   - Keep the words sorted and unique so lookups are binary searches.
//   - Answer exact membership and lower-bound ("first word >= s") queries.
//
// A Lexicon is never mutated after New returns and may be shared freely
// between goroutines.

package lexicon

import (
	"sort"
	"strings"
)

// Lexicon is an immutable, lexicographically sorted set of lowercase words.
type Lexicon struct {
	words []string
}

// New builds a Lexicon from list. Entries are trimmed and lowercased;
// anything that is not purely a–z afterwards is dropped, as are duplicates.
func New(list []string) *Lexicon {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	sort.Strings(out)

	// compact in place
	n := 0
	for i, w := range out {
		if i > 0 && w == out[n-1] {
			continue
		}
		out[n] = w
		n++
	}
	return &Lexicon{words: out[:n]}
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

// LowerBound returns the smallest word that sorts at or after s.
// ok is false when s sorts after every word in the lexicon.
func (l *Lexicon) LowerBound(s string) (word string, ok bool) {
	i := sort.SearchStrings(l.words, s)
	if i == len(l.words) {
		return "", false
	}
	return l.words[i], true
}

// Lookup answers both search questions with one lower-bound probe:
// word reports whether s is in the lexicon, prefix whether some word
// starts with s (a word is its own prefix).
func (l *Lexicon) Lookup(s string) (word, prefix bool) {
	lb, ok := l.LowerBound(s)
	if !ok || !strings.HasPrefix(lb, s) {
		return false, false
	}
	return lb == s, true
}

// Contains reports whether w is in the lexicon.
func (l *Lexicon) Contains(w string) bool {
	word, _ := l.Lookup(w)
	return word
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
