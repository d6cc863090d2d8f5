package stats

import (
	"bytes"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/verte-zerg/hackertype/internal/model"
)

func TestComputeTenSubmittedEightCorrect(t *testing.T) {
	score := Compute(10, 8, 15)
	if score.AccuracyPercent != 80 {
		t.Fatalf("expected accuracy 80, got %d", score.AccuracyPercent)
	}
	if score.WPM != 32 {
		t.Fatalf("expected wpm 32, got %d", score.WPM)
	}
}

func TestComputeNoSubmissions(t *testing.T) {
	score := Compute(0, 0, 30)
	if score.AccuracyPercent != 0 || score.WPM != 0 {
		t.Fatalf("expected zero score, got %+v", score)
	}
}

func TestComputeFloorsAccuracy(t *testing.T) {
	if got := Compute(3, 2, 60).AccuracyPercent; got != 66 {
		t.Fatalf("expected floor(66.6)=66, got %d", got)
	}
	if got := Compute(100, 29, 60).AccuracyPercent; got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
}

func TestComputeRoundsWPM(t *testing.T) {
	if got := Compute(7, 7, 45).WPM; got != 9 {
		t.Fatalf("expected round(9.33)=9, got %d", got)
	}
	if got := Compute(5, 5, 40).WPM; got != 8 {
		t.Fatalf("expected round(7.5)=8, got %d", got)
	}
}

func TestComputeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		submitted := rapid.IntRange(0, 500).Draw(t, "submitted")
		correct := rapid.IntRange(0, submitted).Draw(t, "correct")
		duration := rapid.SampledFrom(model.Durations).Draw(t, "duration")

		score := Compute(submitted, correct, duration)
		if score.AccuracyPercent < 0 || score.AccuracyPercent > 100 {
			t.Fatalf("accuracy out of range: %d", score.AccuracyPercent)
		}
		if score.WPM < 0 {
			t.Fatalf("negative wpm: %d", score.WPM)
		}
		if submitted > 0 && correct == submitted && score.AccuracyPercent != 100 {
			t.Fatalf("expected 100%% for all-correct, got %d", score.AccuracyPercent)
		}
	})
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResult(&buf, model.SessionResult{
		Config:    model.Config{DurationSeconds: 15, Difficulty: model.Basic},
		Submitted: 10,
		Correct:   8,
		Score:     model.Score{AccuracyPercent: 80, WPM: 32},
	})
	if err != nil {
		t.Fatalf("render result: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Result", "Metric", "Accuracy     80%", "WPM           32", "Difficulty basic"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
