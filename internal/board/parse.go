// apps/go-server/internal/board/parse.go
//
// Reading boards from text, JSON and YAML.
//
// Text format:
//   - one row per non-blank line; lines starting with '#' are comments;
//   - if a line contains whitespace, each field is a cell ("qu e s t");
//   - otherwise each letter is its own cell ("cats").
//
// JSON and YAML carry a plain array of arrays of strings.
// Parsing does not validate; callers run Validate (the solver does).

package board

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a board serialization.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format from a file extension, defaulting to text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Parse reads the text format.
func Parse(r io.Reader) (Board, error) {
	var b Board
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var row []string
		if strings.ContainsAny(line, " \t") {
			row = strings.Fields(line)
		} else {
			for _, ch := range line {
				row = append(row, string(ch))
			}
		}
		b = append(b, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (Board, error) {
	var b Board
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode json board: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode yaml board: %w", err)
		}
	case FormatText, "":
		return Parse(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown board format %q", f)
	}
	return b, nil
}

// ReadFile loads a board from path, choosing the format by extension.
func ReadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatFromPath(path))
}
