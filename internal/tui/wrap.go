// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hackertype/internal/model"
)

type styledWord struct {
	s     string
	width int
}

func styleFor(status model.WordStatus) lipgloss.Style {
	switch status {
	case model.Current:
		return currentWordStyle
	case model.Correct:
		return correctStyle
	case model.Incorrect:
		return incorrectStyle
	case model.LiveCorrect:
		return liveCorrectStyle
	case model.LiveIncorrect:
		return liveIncorrectStyle
	default:
		return pendingStyle
	}
}

func buildStyledWords(words []string, statuses []model.WordStatus) []styledWord {
	out := make([]styledWord, 0, len(words))
	for i, word := range words {
		text := strings.TrimSuffix(word, model.Delimiter)
		status := model.Neutral
		if i < len(statuses) {
			status = statuses[i]
		}
		out = append(out, styledWord{
			s:     styleFor(status).Render(text),
			width: runewidth.StringWidth(text),
		})
	}
	return out
}

func renderStyledWords(words []styledWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.s
	}
	return strings.Join(parts, " ")
}

// wrapStyledWords breaks words into lines no wider than width. A word wider
// than width gets a line of its own.
func wrapStyledWords(words []styledWord, width int) string {
	if width <= 0 {
		return renderStyledWords(words)
	}
	var out strings.Builder
	line := make([]styledWord, 0, len(words))
	lineWidth := 0

	for _, item := range words {
		sep := 0
		if len(line) > 0 {
			sep = 1
		}
		if lineWidth+sep+item.width > width && len(line) > 0 {
			out.WriteString(renderStyledWords(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			sep = 0
		}
		line = append(line, item)
		lineWidth += sep + item.width
	}
	out.WriteString(renderStyledWords(line))
	return out.String()
}
