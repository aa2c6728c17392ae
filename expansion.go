package assetpack

import (
	"fmt"
	"strings"
)

// symbolPrefix marks a source token as an expansion key.
const symbolPrefix = ":"

// All is the sentinel source that enumerates every asset of a category.
const All = symbolPrefix + "all"

// Sym returns the source token referring to the expansion key name.
func Sym(name string) string {
	return symbolPrefix + name
}

// IsSymbol reports whether a source token refers to an expansion key.
func IsSymbol(token string) bool {
	return strings.HasPrefix(token, symbolPrefix) && len(token) > len(symbolPrefix)
}

// ExpansionTable maps expansion keys (without the leading colon) to the
// ordered literal sources they stand for.
type ExpansionTable map[string][]string

// clone returns a deep copy so later changes by the caller are not observed.
func (t ExpansionTable) clone() ExpansionTable {
	out := make(ExpansionTable, len(t))
	for k, v := range t {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Expand replaces each symbolic token with its mapped sources in place and
// passes literal tokens through. Expansion is single-level: symbolic tokens
// inside a mapping are returned unchanged.
// Returns ErrUnknownExpansion if a symbolic token has no entry.
func (t ExpansionTable) Expand(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !IsSymbol(token) {
			out = append(out, token)
			continue
		}

		key := strings.TrimPrefix(token, symbolPrefix)
		mapped, ok := t[key]
		if !ok {
			return nil, fmt.Errorf("%w for %q", ErrUnknownExpansion, token)
		}
		out = append(out, mapped...)
	}
	return out, nil
}
