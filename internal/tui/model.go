// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hackertype/internal/model"
	"github.com/verte-zerg/hackertype/internal/session"
	"github.com/verte-zerg/hackertype/internal/timer"
)

// Model implements the Bubble Tea typing UI and renders engine updates.
type Model struct {
	engine *session.Engine
	sched  *timer.TeaScheduler
	keys   KeyMap
	help   help.Model
	input  textinput.Model

	width  int
	height int

	words     []string
	statuses  []model.WordStatus
	remaining int
	phase     model.Phase
	locked    bool
	score     model.Score
	notice    string
}

var (
	correctStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	liveCorrectStyle   = currentWordStyle.Underline(true)
	liveIncorrectStyle = incorrectStyle.Underline(true)
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	optionStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model driving a new engine.
func NewModel(cfg model.Config, words session.WordSource, opts session.Options) (*Model, error) {
	m := &Model{
		sched: timer.NewTeaScheduler(time.Second),
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: newInput(),
	}
	engine, err := session.NewEngine(cfg, words, m.sched, m, opts)
	if err != nil {
		return nil, err
	}
	m.engine = engine
	return m, nil
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "start typing"
	in.Focus()
	return in
}

// Result returns the last finished session, if the current one finished.
func (m *Model) Result() (model.SessionResult, bool) {
	return m.engine.Result()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timer.TickMsg:
		m.sched.Handle(msg)
		return m, m.sched.Flush()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.engine.Restart()
		case key.Matches(msg, m.keys.Duration):
			m.cycleDuration()
		case key.Matches(msg, m.keys.Difficulty):
			m.toggleDifficulty()
		default:
			m.handleKey(msg)
		}
		m.input.SetValue(m.engine.Pending())
		m.input.CursorEnd()
		return m, m.sched.Flush()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.ignoreSpurious(m.engine.Backspace())
	case tea.KeySpace:
		m.ignoreSpurious(m.engine.SubmitCharacter(' '))
	case tea.KeyEnter:
		m.ignoreSpurious(m.engine.SubmitCharacter('\n'))
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.ignoreSpurious(m.engine.SubmitCharacter(r))
		}
	}
}

// ignoreSpurious drops input rejected after finish. Other engine errors are
// already logged by the engine.
func (m *Model) ignoreSpurious(err error) {
	if err == nil || errors.Is(err, session.ErrInputAfterFinish) {
		return
	}
	m.notice = err.Error()
}

func (m *Model) cycleDuration() {
	current := m.engine.Config().DurationSeconds
	next := model.Durations[0]
	for i, d := range model.Durations {
		if d == current {
			next = model.Durations[(i+1)%len(model.Durations)]
			break
		}
	}
	if err := m.engine.SetDuration(next); err == nil {
		m.notice = ""
	}
}

func (m *Model) toggleDifficulty() {
	next := model.Advanced
	if m.engine.Config().Difficulty == model.Advanced {
		next = model.Basic
	}
	if err := m.engine.SetDifficulty(next); err == nil {
		m.notice = ""
	}
}

// OnWordListChanged implements session.Renderer.
func (m *Model) OnWordListChanged(words []string) {
	m.words = words
	m.statuses = make([]model.WordStatus, len(words))
}

// OnWordClassified implements session.Renderer.
func (m *Model) OnWordClassified(index int, status model.WordStatus) {
	if index < 1 || index > len(m.statuses) {
		return
	}
	m.statuses[index-1] = status
}

// OnTimeChanged implements session.Renderer.
func (m *Model) OnTimeChanged(remaining int) {
	m.remaining = remaining
}

// OnSessionFinished implements session.Renderer.
func (m *Model) OnSessionFinished(score model.Score) {
	m.score = score
}

// OnInputLockChanged implements session.Renderer.
func (m *Model) OnInputLockChanged(locked bool) {
	m.locked = locked
	if locked {
		m.input.Blur()
		return
	}
	m.input.Focus()
}

// OnPhaseChanged implements session.Renderer.
func (m *Model) OnPhaseChanged(phase model.Phase) {
	m.phase = phase
	configurable := phase == model.Idle
	m.keys.Duration.SetEnabled(configurable)
	m.keys.Difficulty.SetEnabled(configurable)
	if phase == model.Idle {
		m.notice = ""
		m.score = model.Score{}
	}
}

// OnConfigRejected implements session.Renderer.
func (m *Model) OnConfigRejected(err error) {
	m.notice = err.Error()
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{}
	if header := m.renderHeader(); header != "" {
		sections = append(sections, header)
	}
	sections = append(sections, m.renderFooter())

	contentWidth := 0
	if m.width > 0 {
		contentWidth = int(float64(m.width) * 0.70)
		if contentWidth < 1 {
			contentWidth = 1
		}
	}
	text := wrapStyledWords(buildStyledWords(m.words, m.statuses), contentWidth)
	if contentWidth > 0 {
		text = lipgloss.NewStyle().Width(contentWidth).Render(text)
	}
	sections = append(sections, "", text, "")

	if m.locked {
		sections = append(sections, footerStyle.Render("Time is up. Press tab to restart."))
	} else {
		sections = append(sections, m.input.View())
	}
	if m.notice != "" {
		sections = append(sections, incorrectStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHeader lists the config options. They are hidden while running.
func (m *Model) renderHeader() string {
	if m.phase == model.Running {
		return ""
	}
	cfg := m.engine.Config()
	segments := make([]string, 0, len(model.Durations)+len(model.Difficulties))
	for _, d := range model.Durations {
		label := fmt.Sprintf("%ds", d)
		if d == cfg.DurationSeconds {
			segments = append(segments, selectedStyle.Render(label))
		} else {
			segments = append(segments, optionStyle.Render(label))
		}
	}
	for _, d := range model.Difficulties {
		if d == cfg.Difficulty {
			segments = append(segments, selectedStyle.Render(d.String()))
		} else {
			segments = append(segments, optionStyle.Render(d.String()))
		}
	}
	return strings.Join(segments, "  ")
}

// renderFooter shows time and correct words, or accuracy and WPM once the
// session finished.
func (m *Model) renderFooter() string {
	if m.phase == model.Finished {
		return labelStyle.Render("PA ") + valueStyle.Render(fmt.Sprintf("%d%%", m.score.AccuracyPercent)) +
			"  " + labelStyle.Render("WPM ") + valueStyle.Render(fmt.Sprintf("%d", m.score.WPM))
	}
	_, correct := m.engine.Counts()
	return labelStyle.Render("Time ") + valueStyle.Render(fmt.Sprintf("%d", m.remaining)) +
		"  " + labelStyle.Render("CW ") + valueStyle.Render(fmt.Sprintf("%d", correct))
}
