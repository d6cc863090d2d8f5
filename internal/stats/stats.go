// Package stats contains score calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/hackertype/internal/model"
)

// Compute derives accuracy and WPM from final word counts. WPM is based on
// the configured duration, not on elapsed time.
func Compute(submitted, correct, durationSeconds int) model.Score {
	if correct < 0 {
		correct = 0
	}
	if submitted < correct {
		submitted = correct
	}
	var score model.Score
	if submitted > 0 {
		score.AccuracyPercent = correct * 100 / submitted
	}
	if durationSeconds > 0 {
		score.WPM = int(math.Round(float64(correct*60) / float64(durationSeconds)))
	}
	return score
}

// RenderResult prints a finished session as an aligned table.
func RenderResult(w io.Writer, result model.SessionResult) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Duration", fmt.Sprintf("%ds", result.Config.DurationSeconds)},
		{"Difficulty", result.Config.Difficulty.String()},
		{"Words", fmt.Sprintf("%d", result.Submitted)},
		{"Correct", fmt.Sprintf("%d", result.Correct)},
		{"Accuracy", fmt.Sprintf("%d%%", result.Score.AccuracyPercent)},
		{"WPM", fmt.Sprintf("%d", result.Score.WPM)},
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
