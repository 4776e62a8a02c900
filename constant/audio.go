package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the default master volume in [0, 1]
	AudioVolume = 0.5
)

// Cycle chime, played when a cycle completes
const (
	ChimeDuration        = 400 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeFundamentalFreq = 880.0
	ChimeOvertoneFreq    = 1320.0
	ChimeRelease         = 350 * time.Millisecond
	ChimeOvertoneRelease = 150 * time.Millisecond
)

// Finish tone, played when the last repeat completes
const (
	FinishDuration = 700 * time.Millisecond
	FinishAttack   = 10 * time.Millisecond
	FinishRelease  = 500 * time.Millisecond
	FinishFreqLow  = 440.0
	FinishFreqHigh = 660.0
)
