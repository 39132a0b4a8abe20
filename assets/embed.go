// Package assets bundles the default word list so the solver runs even when
// no WORDLIST_FILE is configured.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed wordlist.txt
var FS embed.FS

// readWords splits an embedded file on whitespace, skipping comment lines.
func readWords(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.Fields(line)...)
	}
	return out, sc.Err()
}

// Wordlist returns the embedded default lexicon, in file order.
func Wordlist() ([]string, error) {
	return readWords("wordlist.txt")
}
