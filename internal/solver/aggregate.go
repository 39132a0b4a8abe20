// apps/go-server/internal/solver/aggregate.go
//
// Result aggregation: union the per-cell discovery sets and order them.
//
// Orders:
//   - OrderLexicographic: ascending string order.
//   - OrderScore:         descending Score, ties in ascending string order.

package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Order selects how Solve sorts its result.
type Order int

const (
	OrderLexicographic Order = iota
	OrderScore
)

// String returns the canonical flag value for o.
func (o Order) String() string {
	switch o {
	case OrderLexicographic:
		return "lex"
	case OrderScore:
		return "score"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a user-supplied name onto an Order. Empty means lexicographic.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lex", "alpha", "lexicographic":
		return OrderLexicographic, nil
	case "score", "points":
		return OrderScore, nil
	}
	return 0, fmt.Errorf("unknown order %q (want lex or score)", s)
}

// Aggregate unions sets and returns the distinct words sorted per order.
func Aggregate(order Order, sets ...map[string]struct{}) []string {
	union := make(map[string]struct{})
	for _, s := range sets {
		for w := range s {
			union[w] = struct{}{}
		}
	}
	out := make([]string, 0, len(union))
	for w := range union {
		out = append(out, w)
	}
	Sort(out, order)
	return out
}

// Sort orders words in place.
func Sort(words []string, order Order) {
	if order != OrderScore {
		sort.Strings(words)
		return
	}
	sort.Slice(words, func(i, j int) bool {
		si, sj := Score(words[i]), Score(words[j])
		if si != sj {
			return si > sj
		}
		return words[i] < words[j]
	})
}
