package session

import "github.com/verte-zerg/hackertype/internal/model"

// Renderer receives presentation updates from an Engine. Calls are made
// synchronously from the Engine method that caused them.
type Renderer interface {
	OnWordListChanged(words []string)
	// OnWordClassified reports a status for the 1-based word index.
	OnWordClassified(index int, status model.WordStatus)
	OnTimeChanged(remainingSeconds int)
	OnSessionFinished(score model.Score)
	OnInputLockChanged(locked bool)
	OnPhaseChanged(phase model.Phase)
	OnConfigRejected(err error)
}

// NopRenderer ignores every update. Embed it to implement a subset.
type NopRenderer struct{}

// OnWordListChanged implements Renderer.
func (NopRenderer) OnWordListChanged([]string) {}

// OnWordClassified implements Renderer.
func (NopRenderer) OnWordClassified(int, model.WordStatus) {}

// OnTimeChanged implements Renderer.
func (NopRenderer) OnTimeChanged(int) {}

// OnSessionFinished implements Renderer.
func (NopRenderer) OnSessionFinished(model.Score) {}

// OnInputLockChanged implements Renderer.
func (NopRenderer) OnInputLockChanged(bool) {}

// OnPhaseChanged implements Renderer.
func (NopRenderer) OnPhaseChanged(model.Phase) {}

// OnConfigRejected implements Renderer.
func (NopRenderer) OnConfigRejected(error) {}
