// Package anim wraps gween tweens for the small looping and one-shot effects
// used by the renderers.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse swings a value between low and high and back, forever.
type Pulse struct {
	tween     *gween.Tween
	low, high float32
	half      float32
	rising    bool
	value     float32
}

// NewPulse returns a Pulse starting at low that completes one full swing in
// period seconds.
func NewPulse(low, high, period float32) *Pulse {
	p := &Pulse{low: low, high: high, half: period / 2}
	p.Reset()
	return p
}

// Reset restarts the pulse at low.
func (p *Pulse) Reset() {
	p.rising = true
	p.value = p.low
	p.tween = gween.New(p.low, p.high, p.half, ease.InOutSine)
}

// Update advances the pulse by dt seconds and returns the current value.
func (p *Pulse) Update(dt float32) float32 {
	v, done := p.tween.Update(dt)
	p.value = v
	if done {
		p.rising = !p.rising
		if p.rising {
			p.tween = gween.New(p.low, p.high, p.half, ease.InOutSine)
		} else {
			p.tween = gween.New(p.high, p.low, p.half, ease.InOutSine)
		}
	}
	return p.value
}

func (p *Pulse) Value() float32 {
	return p.value
}

// Fade runs once from 0 to 1 and then holds.
type Fade struct {
	tween *gween.Tween
	value float32
	done  bool
}

func NewFade(duration float32) *Fade {
	return &Fade{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// Restart rewinds the fade to 0.
func (f *Fade) Restart() {
	f.tween.Reset()
	f.value = 0
	f.done = false
}

func (f *Fade) Update(dt float32) float32 {
	if f.done {
		return f.value
	}
	f.value, f.done = f.tween.Update(dt)
	return f.value
}

func (f *Fade) Value() float32 {
	return f.value
}

func (f *Fade) Done() bool {
	return f.done
}
