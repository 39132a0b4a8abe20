package solver

// Score returns the Boggle point value of word:
//
//	length < 3   → 0
//	length 3     → 1
//	length 4..6  → length − 3
//	length 7     → 5
//	length ≥ 8   → 11
//
// Length counts letters, so a "qu" tile contributes two.
func Score(word string) int {
	n := len(word)
	switch {
	case n < 3:
		return 0
	case n == 3:
		return 1
	case n <= 6:
		return n - 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// Total sums Score over words.
func Total(words []string) int {
	sum := 0
	for _, w := range words {
		sum += Score(w)
	}
	return sum
}
