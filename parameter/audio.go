package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioDefaultVolume  = 0.6
)

// Spotted cue: rising two-note chime when the enemy comes into view
const (
	SpottedSoundNote     = 90 * time.Millisecond
	SpottedSoundAttack   = 5 * time.Millisecond
	SpottedSoundRelease  = 40 * time.Millisecond
	SpottedSoundLowFreq  = 660.0
	SpottedSoundHighFreq = 990.0
)

// Caught cue: low saw sting
const (
	CaughtSoundDuration = 400 * time.Millisecond
	CaughtSoundAttack   = 10 * time.Millisecond
	CaughtSoundRelease  = 200 * time.Millisecond
	CaughtSoundFreq     = 110.0
)

// Bump cue: short square thud when a move is rejected
const (
	BumpSoundDuration = 60 * time.Millisecond
	BumpSoundAttack   = 2 * time.Millisecond
	BumpSoundRelease  = 30 * time.Millisecond
	BumpSoundFreq     = 80.0
)
