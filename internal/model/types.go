// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Default session settings.
const (
	DefaultDuration   = 15
	DefaultDifficulty = Basic
)

// WordsPerList is the number of words drawn for one word list.
const WordsPerList = 40

// Delimiter terminates every word in a word list. Typing whitespace submits
// the pending text followed by Delimiter.
const Delimiter = " "

// Durations lists the allowed session lengths in seconds.
var Durations = []int{15, 30, 60}

// ErrInvalidDifficulty is returned for unknown difficulty names.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty selects the word pool.
type Difficulty int

// Difficulty values.
const (
	Basic Difficulty = iota + 1
	Advanced
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{Basic, Advanced}

func (d Difficulty) String() string {
	switch d {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == Basic || d == Advanced
}

// ParseDifficulty maps a name such as "basic" or "advanced" to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic", "easy":
		return Basic, nil
	case "advanced", "hard":
		return Advanced, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected basic or advanced)", ErrInvalidDifficulty, name)
	}
}

// ValidDuration reports whether seconds is one of Durations.
func ValidDuration(seconds int) bool {
	for _, d := range Durations {
		if d == seconds {
			return true
		}
	}
	return false
}

// Config defines practice settings.
type Config struct {
	DurationSeconds int
	Difficulty      Difficulty
}

// DefaultConfig returns the startup settings.
func DefaultConfig() Config {
	return Config{DurationSeconds: DefaultDuration, Difficulty: DefaultDifficulty}
}

// Phase is the lifecycle stage of a session.
type Phase int

// Phase values.
const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// WordStatus is the presentation class of a single word.
type WordStatus int

// WordStatus values.
const (
	Neutral WordStatus = iota
	Current
	Correct
	Incorrect
	LiveCorrect
	LiveIncorrect
)

func (s WordStatus) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case Current:
		return "current"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case LiveCorrect:
		return "live-correct"
	case LiveIncorrect:
		return "live-incorrect"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Score is the result of a finished session.
type Score struct {
	AccuracyPercent int
	WPM             int
}

// SessionResult captures a finished session for reporting.
type SessionResult struct {
	Config    Config
	Submitted int
	Correct   int
	Score     Score
}
