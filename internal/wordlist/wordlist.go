// Package wordlist provides the fixed word pools.
package wordlist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/hackertype/internal/model"
)

//go:embed pools/*.txt
var poolFS embed.FS

var poolFiles = map[model.Difficulty]string{
	model.Basic:    "pools/basic.txt",
	model.Advanced: "pools/advanced.txt",
}

// Pools maps a difficulty to its vocabulary.
type Pools map[model.Difficulty][]string

// Words returns a copy of the pool for d, or nil when d has no pool.
func (p Pools) Words(d model.Difficulty) []string {
	words, ok := p[d]
	if !ok {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// DefaultPools loads the embedded basic and advanced pools.
func DefaultPools() (Pools, error) {
	pools := make(Pools, len(poolFiles))
	for d, name := range poolFiles {
		file, err := poolFS.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s pool: %w", d, err)
		}
		words, err := ParseWords(file, FilterDelimiterFree)
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for embedded file.
			_ = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s pool: %w", d, err)
		}
		pools[d] = words
	}
	return pools, nil
}

// MustDefaultPools is DefaultPools for callers that cannot recover from a
// broken build.
func MustDefaultPools() Pools {
	pools, err := DefaultPools()
	if err != nil {
		panic(err)
	}
	return pools
}

// ParseWords reads one word per line, keeping words accepted by keep and
// dropping duplicates after their first occurrence.
func ParseWords(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if keep != nil && !keep(line) {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
