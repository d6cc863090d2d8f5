// Package generator builds randomized word lists for typing sessions.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/hackertype/internal/model"
	"github.com/verte-zerg/hackertype/internal/wordlist"
)

var (
	// ErrInsufficientPoolSize reports a pool smaller than the requested count.
	ErrInsufficientPoolSize = errors.New("insufficient pool size")
	// ErrUnknownDifficulty reports a difficulty without a pool.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// InsufficientPoolError carries the counts behind ErrInsufficientPoolSize.
type InsufficientPoolError struct {
	Difficulty model.Difficulty
	Requested  int
	Available  int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("%s pool has %d words, requested %d", e.Difficulty, e.Available, e.Requested)
}

// Unwrap makes errors.Is match ErrInsufficientPoolSize.
func (e *InsufficientPoolError) Unwrap() error {
	return ErrInsufficientPoolSize
}

// Generator produces shuffled word selections.
type Generator struct {
	rnd   *rand.Rand
	pools wordlist.Pools
}

// New returns a Generator seeded with the current time.
func New(pools wordlist.Pools) *Generator {
	return NewSeeded(pools, time.Now().UnixNano())
}

// NewSeeded returns a Generator whose output is fixed by seed.
func NewSeeded(pools wordlist.Pools, seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), pools: pools}
}

// Shuffle permutes words in place using Fisher-Yates.
func (g *Generator) Shuffle(words []string) {
	for i := len(words) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

// SelectWords returns n shuffled words from the pool for d, each followed by
// model.Delimiter. When the pool is too small every available word is returned
// along with an *InsufficientPoolError.
func (g *Generator) SelectWords(d model.Difficulty, n int) ([]string, error) {
	pool := g.pools.Words(d)
	if pool == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
	}
	if n < 0 {
		n = 0
	}
	g.Shuffle(pool)

	var err error
	if len(pool) < n {
		err = &InsufficientPoolError{Difficulty: d, Requested: n, Available: len(pool)}
		n = len(pool)
	}
	result := make([]string, 0, n)
	for _, word := range pool[:n] {
		result = append(result, word+model.Delimiter)
	}
	return result, err
}
