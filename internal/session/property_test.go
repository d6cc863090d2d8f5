package session

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/verte-zerg/hackertype/internal/model"
	"github.com/verte-zerg/hackertype/internal/timer"
)

func TestCountersInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := &timer.Countdown{}
		cfg := model.Config{
			DurationSeconds: rapid.SampledFrom(model.Durations).Draw(t, "duration"),
			Difficulty:      rapid.SampledFrom(model.Difficulties).Draw(t, "difficulty"),
		}
		e, err := NewEngine(cfg, &listSource{size: rapid.IntRange(1, 45).Draw(t, "poolSize")}, clock, nil, Options{Strict: true})
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}

		prev := e.State()
		steps := rapid.IntRange(0, 300).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 9).Draw(t, "action") {
			case 0:
				clock.Tick()
			case 1:
				_ = e.Backspace()
			case 2:
				if rapid.IntRange(0, 20).Draw(t, "restart") == 0 {
					e.Restart()
				}
			case 3:
				st := e.State()
				for _, r := range st.Words[st.CurrentWordIndex-1] {
					_ = e.SubmitCharacter(r)
				}
			default:
				_ = e.SubmitCharacter(rapid.SampledFrom([]rune("basic1-2 \t")).Draw(t, "char"))
			}

			st := e.State()
			if st.Correct > st.Submitted || st.Correct < 0 {
				t.Fatalf("correct %d > submitted %d", st.Correct, st.Submitted)
			}
			if st.RemainingSeconds < -1 {
				t.Fatalf("remaining below -1: %d", st.RemainingSeconds)
			}
			if st.CurrentWordIndex < 1 || st.CurrentWordIndex > len(st.Words) {
				t.Fatalf("index %d out of range for %d words", st.CurrentWordIndex, len(st.Words))
			}
			if st.ID == prev.ID {
				if st.Submitted < prev.Submitted || st.Correct < prev.Correct {
					t.Fatalf("counters decreased within a session")
				}
				if prev.Phase == model.Finished && (st.Submitted != prev.Submitted || st.Correct != prev.Correct) {
					t.Fatalf("counters changed after finish")
				}
			}
			if st.Phase == model.Finished {
				score := st.Score
				if score.AccuracyPercent < 0 || score.AccuracyPercent > 100 || score.WPM < 0 {
					t.Fatalf("score out of range: %+v", score)
				}
			}
			prev = st
		}
	})
}
