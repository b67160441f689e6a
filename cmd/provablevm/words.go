package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

// parseWords parses a comma-separated list of unsigned 32-bit decimal
// integers, e.g. "1,2,3". An empty string yields an empty (nil) slice.
func parseWords(s string) ([]provablevm.Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	words := make([]provablevm.Word, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing word %q: %w", p, err)
		}
		words[i] = provablevm.Word(v)
	}
	return words, nil
}
