package assets

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Tone describes one synthesized cue: one or more oscillators sharing a
// waveform, an optional pitch sweep and a gain envelope.
type Tone struct {
	Wave         string    `yaml:"wave"`
	Freqs        []float64 `yaml:"freqs"`
	SweepTo      float64   `yaml:"sweep_to"`
	Sweep        string    `yaml:"sweep"`
	SweepSeconds float64   `yaml:"sweep_seconds"`
	Gain         float64   `yaml:"gain"`
	GainTo       float64   `yaml:"gain_to"`
	Fade         string    `yaml:"fade"`
	Seconds      float64   `yaml:"seconds"`
}

func (t Tone) Validate() error {
	switch t.Wave {
	case "sine", "square", "sawtooth", "triangle":
	default:
		return fmt.Errorf("unknown wave %q", t.Wave)
	}
	if len(t.Freqs) == 0 {
		return fmt.Errorf("no frequencies")
	}
	if t.Seconds <= 0 {
		return fmt.Errorf("non-positive duration %v", t.Seconds)
	}
	return nil
}

// Render produces signed 16-bit little-endian stereo PCM at sampleRate.
func Render(t Tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 || len(t.Freqs) == 0 {
		return nil
	}

	sweepSeconds := t.SweepSeconds
	if sweepSeconds <= 0 {
		sweepSeconds = t.Seconds
	}

	out := make([]byte, n*4)
	phases := make([]float64, len(t.Freqs))
	dt := 1 / float64(sampleRate)
	for i := 0; i < n; i++ {
		at := float64(i) * dt
		gain := ramp(t.Fade, t.Gain, t.GainTo, at/t.Seconds)

		var v float64
		for j, base := range t.Freqs {
			freq := base
			if t.SweepTo > 0 {
				target := t.SweepTo * base / t.Freqs[0]
				freq = ramp(t.Sweep, base, target, math.Min(at/sweepSeconds, 1))
			}
			phases[j] = math.Mod(phases[j]+freq*dt, 1)
			v += oscillate(t.Wave, phases[j])
		}
		v *= gain

		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// ramp interpolates from a to b at progress p in [0, 1].
func ramp(kind string, a, b, p float64) float64 {
	if p <= 0 {
		return a
	}
	if p >= 1 {
		return b
	}
	if kind == "exponential" && a > 0 && b > 0 {
		return a * math.Pow(b/a, p)
	}
	return a + (b-a)*p
}

func oscillate(wave string, phase float64) float64 {
	switch wave {
	case "square":
		if phase < 0.5 {
			return 1
		}
		return -1
	case "sawtooth":
		return 2*phase - 1
	case "triangle":
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
