package assets

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/middlechamber/sim"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// CuePlayer plays the synthesized cues through ebiten's audio context.
type CuePlayer struct {
	pcm    map[sim.Cue][]byte
	muted  bool
	volume float64
	logger *log.Logger
}

// NewCuePlayer renders every cue in cues.yaml up front.
func NewCuePlayer(logger *log.Logger) (*CuePlayer, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tones, err := LoadTones()
	if err != nil {
		return nil, err
	}

	p := &CuePlayer{pcm: make(map[sim.Cue][]byte, len(tones)), volume: 1, logger: logger}
	for name, t := range tones {
		p.pcm[sim.Cue(name)] = Render(t, sampleRate)
	}
	return p, nil
}

// Play starts cue on a fresh player so overlapping cues mix.
func (p *CuePlayer) Play(cue sim.Cue) {
	if p == nil || p.muted {
		return
	}
	pcm, ok := p.pcm[cue]
	if !ok {
		p.logger.Debug("unknown cue", "cue", cue)
		return
	}
	player := audioCtx().NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}

// ToggleMute flips muting and returns the new state.
func (p *CuePlayer) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	return p.muted
}

func (p *CuePlayer) Muted() bool {
	return p == nil || p.muted
}

var _ sim.AudioSink = (*CuePlayer)(nil)
