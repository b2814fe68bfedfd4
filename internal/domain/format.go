package domain

import (
	"strconv"
	"strings"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// uniqueStrings remove espaços e valores repetidos mantendo a ordem
func uniqueStrings(values []string) []string {

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// orEmpty troca nil por lista vazia, para as coleções persistirem sempre como arrays
func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
