package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/hackertype/internal/generator"
	"github.com/verte-zerg/hackertype/internal/model"
	"github.com/verte-zerg/hackertype/internal/stats"
	"github.com/verte-zerg/hackertype/internal/timer"
)

var (
	// ErrInvalidConfigChange is returned when config changes outside Idle.
	ErrInvalidConfigChange = errors.New("config can only change while idle")
	// ErrInvalidDuration is returned for durations outside model.Durations.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInputAfterFinish is returned for input once the session finished.
	ErrInputAfterFinish = errors.New("input after session finished")
	// ErrMalformedEvent is returned when an event cannot apply to the state.
	ErrMalformedEvent = errors.New("malformed event")
)

// WordSource supplies word lists.
type WordSource interface {
	SelectWords(d model.Difficulty, n int) ([]string, error)
}

// Options tunes an Engine.
type Options struct {
	// Logger defaults to a logger that discards output.
	Logger logrus.FieldLogger
	// Strict panics on malformed events instead of logging them.
	Strict bool
	// NewID generates session IDs. Defaults to uuid.NewString.
	NewID func() string
}

// Engine is the typing state machine. It owns a single State and is the only
// thing that mutates it. An Engine is not safe for concurrent use; drive it
// from one event loop.
type Engine struct {
	state    State
	words    WordSource
	sched    timer.Scheduler
	renderer Renderer

	baseLog logrus.FieldLogger
	log     logrus.FieldLogger
	strict  bool
	newID   func() string
}

// NewEngine validates cfg and returns an Engine in the Idle phase with a
// fresh word list.
func NewEngine(cfg model.Config, words WordSource, sched timer.Scheduler, renderer Renderer, opts Options) (*Engine, error) {
	if !model.ValidDuration(cfg.DurationSeconds) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, cfg.DurationSeconds)
	}
	if !cfg.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidDifficulty, cfg.Difficulty)
	}
	if words == nil {
		return nil, fmt.Errorf("word source is nil")
	}
	if sched == nil {
		sched = &timer.Countdown{}
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	e := &Engine{
		words:    words,
		sched:    sched,
		renderer: renderer,
		baseLog:  logger,
		strict:   opts.Strict,
		newID:    newID,
	}
	e.reset(cfg)
	return e, nil
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Config returns the active config.
func (e *Engine) Config() model.Config {
	return e.state.Config
}

// Phase returns the current phase.
func (e *Engine) Phase() model.Phase {
	return e.state.Phase
}

// Pending returns the text typed for the current word.
func (e *Engine) Pending() string {
	return e.state.Pending
}

// Counts returns the submitted and correct word counts.
func (e *Engine) Counts() (submitted, correct int) {
	return e.state.Submitted, e.state.Correct
}

// Result returns the finished session, if any.
func (e *Engine) Result() (model.SessionResult, bool) {
	if e.state.Phase != model.Finished {
		return model.SessionResult{}, false
	}
	return model.SessionResult{
		Config:    e.state.Config,
		Submitted: e.state.Submitted,
		Correct:   e.state.Correct,
		Score:     e.state.Score,
	}, true
}

// SubmitCharacter handles one typed character. Whitespace submits the current
// word; anything else extends it. The first character of a session starts
// the timer.
func (e *Engine) SubmitCharacter(ch rune) error {
	if e.state.Phase == model.Finished {
		e.log.WithField("char", string(ch)).Debug("ignoring input after finish")
		return ErrInputAfterFinish
	}
	if _, ok := e.state.currentWord(); !ok {
		return e.malformed("character typed at word %d of %d", e.state.CurrentWordIndex, len(e.state.Words))
	}
	e.start()
	if unicode.IsSpace(ch) {
		e.submitWord()
		return nil
	}
	e.state.appendPending(ch)
	e.classifyLive()
	return nil
}

// Backspace removes the last pending character.
func (e *Engine) Backspace() error {
	switch e.state.Phase {
	case model.Finished:
		return ErrInputAfterFinish
	case model.Idle:
		return nil
	}
	if !e.state.popPending() {
		return nil
	}
	if _, ok := e.state.currentWord(); !ok {
		return e.malformed("backspace at word %d of %d", e.state.CurrentWordIndex, len(e.state.Words))
	}
	e.classifyLive()
	return nil
}

// SetDuration changes the session length. Only allowed while Idle.
func (e *Engine) SetDuration(seconds int) error {
	if e.state.Phase != model.Idle {
		return e.reject(fmt.Errorf("%w: cannot set duration while %s", ErrInvalidConfigChange, e.state.Phase))
	}
	if !model.ValidDuration(seconds) {
		return e.reject(fmt.Errorf("%w: %d", ErrInvalidDuration, seconds))
	}
	e.state.Config.DurationSeconds = seconds
	e.state.setRemaining(seconds)
	e.log.WithField("duration", seconds).Debug("duration changed")
	e.renderer.OnTimeChanged(seconds)
	return nil
}

// SetDifficulty changes the word pool and draws a new word list. Only
// allowed while Idle.
func (e *Engine) SetDifficulty(d model.Difficulty) error {
	if e.state.Phase != model.Idle {
		return e.reject(fmt.Errorf("%w: cannot set difficulty while %s", ErrInvalidConfigChange, e.state.Phase))
	}
	if !d.Valid() {
		return e.reject(fmt.Errorf("%w: %s", model.ErrInvalidDifficulty, d))
	}
	e.state.Config.Difficulty = d
	e.state.replaceWords(e.selectWords(d))
	e.log.WithField("difficulty", d.String()).Debug("difficulty changed")
	e.announceWords()
	return nil
}

// Restart abandons the current session and returns to Idle with a new word
// list under the current config.
func (e *Engine) Restart() {
	e.sched.Disarm()
	e.reset(e.state.Config)
}

// Expire finishes a running session. The scheduler calls it when time runs
// out.
func (e *Engine) Expire() {
	if e.state.Phase != model.Running {
		return
	}
	e.sched.Disarm()
	score := stats.Compute(e.state.Submitted, e.state.Correct, e.state.Config.DurationSeconds)
	if !e.state.finish(score) {
		return
	}
	e.log.WithFields(logrus.Fields{
		"phase":     e.state.Phase.String(),
		"submitted": e.state.Submitted,
		"correct":   e.state.Correct,
		"accuracy":  score.AccuracyPercent,
		"wpm":       score.WPM,
	}).Info("session finished")
	e.renderer.OnInputLockChanged(true)
	e.renderer.OnPhaseChanged(model.Finished)
	e.renderer.OnSessionFinished(score)
}

func (e *Engine) reset(cfg model.Config) {
	id := e.newID()
	e.log = e.baseLog.WithField("session", id)
	e.state = newState(id, cfg, e.selectWords(cfg.Difficulty))
	e.log.WithFields(logrus.Fields{
		"phase":      e.state.Phase.String(),
		"duration":   cfg.DurationSeconds,
		"difficulty": cfg.Difficulty.String(),
	}).Debug("session reset")
	e.renderer.OnPhaseChanged(model.Idle)
	e.announceWords()
	e.renderer.OnTimeChanged(e.state.RemainingSeconds)
	e.renderer.OnInputLockChanged(false)
}

func (e *Engine) start() {
	if e.state.TimerArmed {
		return
	}
	e.state.TimerArmed = true
	e.state.Phase = model.Running
	e.sched.Arm(e.state.RemainingSeconds, e.tick, e.Expire)
	e.log.WithField("phase", e.state.Phase.String()).Debug("session started")
	e.renderer.OnPhaseChanged(model.Running)
}

func (e *Engine) tick(remaining int) {
	if e.state.Phase != model.Running {
		return
	}
	e.state.setRemaining(remaining)
	if remaining >= 0 {
		e.renderer.OnTimeChanged(remaining)
	}
}

func (e *Engine) submitWord() {
	typed := e.state.takePending() + model.Delimiter
	index := e.state.CurrentWordIndex
	target, _ := e.state.currentWord()
	correct := typed == target
	e.state.recordSubmission(correct)

	status := model.Incorrect
	if correct {
		status = model.Correct
	}
	e.renderer.OnWordClassified(index, status)

	if e.state.advance() {
		e.wrap()
		return
	}
	e.renderer.OnWordClassified(e.state.CurrentWordIndex, model.Current)
}

// wrap replaces an exhausted word list mid-session. Counters and timer carry
// over.
func (e *Engine) wrap() {
	e.log.WithFields(logrus.Fields{
		"submitted": e.state.Submitted,
		"remaining": e.state.RemainingSeconds,
	}).Debug("word list exhausted, drawing a new one")
	e.state.replaceWords(e.selectWords(e.state.Config.Difficulty))
	e.announceWords()
}

func (e *Engine) classifyLive() {
	target, _ := e.state.currentWord()
	status := model.LiveIncorrect
	switch {
	case e.state.Pending == "":
		status = model.Current
	case strings.HasPrefix(target, e.state.Pending):
		status = model.LiveCorrect
	}
	e.renderer.OnWordClassified(e.state.CurrentWordIndex, status)
}

func (e *Engine) announceWords() {
	e.renderer.OnWordListChanged(append([]string(nil), e.state.Words...))
	if len(e.state.Words) > 0 {
		e.renderer.OnWordClassified(e.state.CurrentWordIndex, model.Current)
	}
}

func (e *Engine) selectWords(d model.Difficulty) []string {
	words, err := e.words.SelectWords(d, model.WordsPerList)
	if err != nil {
		entry := e.log.WithError(err).WithField("difficulty", d.String())
		if errors.Is(err, generator.ErrInsufficientPoolSize) {
			entry.WithField("available", len(words)).Warn("word pool smaller than word list")
		} else {
			entry.Error("failed to select words")
		}
	}
	return words
}

func (e *Engine) reject(err error) error {
	e.log.WithError(err).WithField("phase", e.state.Phase.String()).Warn("config change rejected")
	e.renderer.OnConfigRejected(err)
	return err
}

func (e *Engine) malformed(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if e.strict {
		panic(fmt.Sprintf("session: %s", msg))
	}
	e.log.WithField("phase", e.state.Phase.String()).Error(msg)
	return fmt.Errorf("%w: %s", ErrMalformedEvent, msg)
}
