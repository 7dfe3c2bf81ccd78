package sim

import (
	"github.com/milk9111/middlechamber/dialogue"
	"github.com/milk9111/middlechamber/sim/component"
)

type Cue string

const (
	CueJump    Cue = "jump"
	CueCollect Cue = "collect"
	CueError   Cue = "error"
	CueWin     Cue = "win"
	CueLore    Cue = "lore"
)

// AudioSink plays fire-and-forget cues.
type AudioSink interface {
	Play(cue Cue)
}

// Result is a finished playthrough handed to a ScoreSink.
type Result struct {
	Name      string
	UserID    string
	Score     int
	Completed bool
}

// ScoreSink receives one Result per victory or game over. Submit must not block.
type ScoreSink interface {
	Submit(r Result)
}

// InputSource is polled once per tick.
type InputSource interface {
	Poll() component.Intents
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Intents

func (f InputFunc) Poll() component.Intents {
	if f == nil {
		return component.Intents{}
	}
	return f()
}

// ScriptedInput replays recorded frames and then reports no input.
type ScriptedInput struct {
	Frames []component.Intents
	pos    int
}

func (s *ScriptedInput) Poll() component.Intents {
	if s == nil || s.pos >= len(s.Frames) {
		return component.Intents{}
	}
	frame := s.Frames[s.pos]
	s.pos++
	return frame
}

// Narrator produces NPC and notice text.
type Narrator interface {
	Greeting(id component.Identity) string
	Investiture() string
	StaircasePrompt(progress, total int) string
	VirtueIntro(name, blurb string, first bool) string
	GoalWarning(collected, total int) string
	CheckpointReached(index, total int) string
}

var _ Narrator = dialogue.Plain{}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopScores struct{}

func (nopScores) Submit(Result) {}
