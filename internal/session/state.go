// Package session implements the typing-session engine.
package session

import (
	"github.com/verte-zerg/hackertype/internal/model"
)

// State is the progress of one session. It is owned by an Engine; values
// returned from Engine.State are copies.
type State struct {
	ID     string
	Config model.Config
	Phase  model.Phase

	// Words holds the current word list, each word ending in model.Delimiter.
	Words []string
	// CurrentWordIndex is 1-based.
	CurrentWordIndex int

	Submitted int
	Correct   int

	// RemainingSeconds reaches -1 only when the session finishes.
	RemainingSeconds int
	TimerArmed       bool

	Pending string
	Score   model.Score
}

func newState(id string, cfg model.Config, words []string) State {
	return State{
		ID:               id,
		Config:           cfg,
		Phase:            model.Idle,
		Words:            words,
		CurrentWordIndex: 1,
		RemainingSeconds: cfg.DurationSeconds,
	}
}

func (s State) clone() State {
	out := s
	out.Words = append([]string(nil), s.Words...)
	return out
}

func (s *State) currentWord() (string, bool) {
	if s.CurrentWordIndex < 1 || s.CurrentWordIndex > len(s.Words) {
		return "", false
	}
	return s.Words[s.CurrentWordIndex-1], true
}

func (s *State) appendPending(r rune) {
	s.Pending += string(r)
}

func (s *State) popPending() bool {
	if s.Pending == "" {
		return false
	}
	runes := []rune(s.Pending)
	s.Pending = string(runes[:len(runes)-1])
	return true
}

func (s *State) takePending() string {
	pending := s.Pending
	s.Pending = ""
	return pending
}

// recordSubmission counts a submitted word. Counters only move while
// Running.
func (s *State) recordSubmission(correct bool) {
	if s.Phase != model.Running {
		return
	}
	s.Submitted++
	if correct {
		s.Correct++
	}
}

// advance moves to the next word and reports whether the list is exhausted.
func (s *State) advance() bool {
	s.CurrentWordIndex++
	return s.CurrentWordIndex > len(s.Words)
}

// replaceWords swaps in a new word list without touching counters or timer.
func (s *State) replaceWords(words []string) {
	s.Words = words
	s.CurrentWordIndex = 1
	s.Pending = ""
}

func (s *State) setRemaining(seconds int) {
	if seconds < -1 {
		seconds = -1
	}
	s.RemainingSeconds = seconds
}

func (s *State) finish(score model.Score) bool {
	if s.Phase != model.Running {
		return false
	}
	s.Phase = model.Finished
	s.Score = score
	return true
}
