package audio

import "github.com/lixenwraith/tile-duel/constant"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns audible defaults at the hardware sample rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEliminate: 0.6,
			SoundGameOver:  0.8,
		},
	}
}

// clampVolume keeps v within [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
