// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"raydemos/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueVolume  = 0.3
)

type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[game.Event][]note{
	game.EventStarted: {{freq: 660, duration: 40 * time.Millisecond}},
	game.EventAte:     {{freq: 880, duration: 60 * time.Millisecond}},
	game.EventDied: {
		{freq: 220, duration: 100 * time.Millisecond},
		{freq: 160, duration: 200 * time.Millisecond},
	},
	game.EventWon: {
		{freq: 523, duration: 90 * time.Millisecond},
		{freq: 659, duration: 90 * time.Millisecond},
		{freq: 784, duration: 180 * time.Millisecond},
	},
}

// Cue builds the streamer for an event at the given sample rate. Events
// without a cue yield a nil streamer.
func Cue(rate beep.SampleRate, e game.Event) (beep.Streamer, error) {
	notes, ok := cues[e]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(rate.N(n.duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(cueVolume),
	}, nil
}

// Player sends cues to the speaker. A Player whose audio device failed to open
// stays silent.
type Player struct {
	enabled bool
	log     zerolog.Logger
}

// NewPlayer opens the default audio device. Failure is logged and leaves the
// player disabled.
func NewPlayer(logger zerolog.Logger) *Player {
	p := &Player{log: logger.With().Str("component", "sound").Logger()}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		return p
	}
	p.enabled = true
	return p
}

// Handle plays the cue of every event that has one.
func (p *Player) Handle(events []game.Event) {
	if !p.enabled {
		return
	}
	for _, e := range events {
		s, err := Cue(sampleRate, e)
		if err != nil {
			p.log.Err(err).Int("event", int(e)).Msg("Build cue")
			continue
		}
		if s != nil {
			speaker.Play(s)
		}
	}
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
