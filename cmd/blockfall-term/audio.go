package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// clearTones holds one pitch per cleared line count, index 0 unused.
var clearTones = [...]float64{0, 440, 554.37, 659.25, 880}

// Audio plays short tones for game events. The zero value is silent.
type Audio struct {
	enabled bool
}

func NewAudio() (*Audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Audio{}, err
	}
	return &Audio{enabled: true}, nil
}

// Clear plays a tone that rises with the number of lines cleared.
func (a *Audio) Clear(lines int) {
	if lines <= 0 || lines >= len(clearTones) {
		return
	}
	a.tone(clearTones[lines], 80*time.Millisecond)
}

// GameOver plays a low tone.
func (a *Audio) GameOver() {
	a.tone(220, 400*time.Millisecond)
}

func (a *Audio) tone(freq float64, d time.Duration) {
	if a == nil || !a.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (a *Audio) Close() {
	if a != nil && a.enabled {
		speaker.Close()
	}
}
