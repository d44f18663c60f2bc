package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-raycaster/parameter"
)

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope limits s to duration and ramps its amplitude in and out
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       beep.Take(rate.N(duration), s),
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone builds one shaped note from a beep generator
func tone(gen func(beep.SampleRate, float64) (beep.Streamer, error), rate beep.SampleRate, freq float64, duration, attack, release time.Duration) (beep.Streamer, error) {
	osc, err := gen(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(osc, duration, attack, release, rate), nil
}

// CreateCue synthesizes the finite stream for a cue at the given volume
func CreateCue(c Cue, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)

	switch c {
	case CueSpotted:
		s, err = createSpotted(rate)
	case CueCaught:
		s, err = tone(generators.SawtoothTone, rate, parameter.CaughtSoundFreq,
			parameter.CaughtSoundDuration, parameter.CaughtSoundAttack, parameter.CaughtSoundRelease)
	case CueBump:
		s, err = tone(generators.SquareTone, rate, parameter.BumpSoundFreq,
			parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease)
	default:
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	if err != nil {
		return nil, fmt.Errorf("synthesize %s cue: %w", c, err)
	}
	return newVolume(s, vol), nil
}

// createSpotted plays two sine notes in sequence
func createSpotted(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(generators.SineTone, rate, parameter.SpottedSoundLowFreq,
		parameter.SpottedSoundNote, parameter.SpottedSoundAttack, parameter.SpottedSoundRelease)
	if err != nil {
		return nil, err
	}
	high, err := tone(generators.SineTone, rate, parameter.SpottedSoundHighFreq,
		parameter.SpottedSoundNote, parameter.SpottedSoundAttack, parameter.SpottedSoundRelease)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}
