package dataset

import (
	"fmt"
	"strings"
)

var headerReplacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"é", "e",
	"è", "e",
	"ê", "e",
	"à", "a",
)

// NormalizeHeader maps a raw header token to its column name.
func NormalizeHeader(token string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(token)))
}

// NormalizeHeaders normalizes every token of a header row. Two tokens that
// normalize to the same name, or a token that normalizes to nothing, make
// the schema ambiguous and yield ErrSchema.
func NormalizeHeaders(tokens []string) ([]string, error) {
	out := make([]string, len(tokens))
	seen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		name := NormalizeHeader(tok)
		if name == "" {
			return nil, fmt.Errorf("%w: header column %d is blank", ErrSchema, i+1)
		}
		if j, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: header columns %q and %q both normalize to %q",
				ErrSchema, strings.TrimSpace(tokens[j]), strings.TrimSpace(tok), name)
		}
		seen[name] = i
		out[i] = name
	}
	return out, nil
}

// Index maps column names to their position.
func Index(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return idx
}
