package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player plays chimes through the system speaker
// A player whose speaker failed to open stays silent; callers need not check
type Player struct {
	mu      sync.Mutex
	ready   bool
	failed  bool
	muted   bool
	gain    float64
	last    time.Time
	now     func() time.Time
	open    func() error
	playing func(beep.Streamer)
}

// NewPlayer opens the speaker unless muted, in which case the first unmute
// opens it. A speaker error is returned alongside a usable silent player
func NewPlayer(gain float64, muted bool) (*Player, error) {
	p := &Player{gain: gain, muted: muted, now: time.Now, open: openSpeaker, playing: speaker.Play}
	if muted {
		return p, nil
	}
	return p, p.start()
}

func openSpeaker() error {
	return speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
}

// start opens the speaker once; a failure is not retried
func (p *Player) start() error {
	if p.ready || p.failed || p.open == nil {
		return nil
	}
	if err := p.open(); err != nil {
		p.failed = true
		return fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return nil
}

// Chime plays the landing chime unless muted or rate limited
func (p *Player) Chime() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted {
		return
	}
	now := p.now()
	if now.Sub(p.last) < parameter.MinChimeGap {
		return
	}
	p.last = now
	p.playing(Chime(sampleRate, p.gain))
}

// ToggleMute flips mute and returns the new state
// Unmuting a player started muted opens the speaker; if that fails it stays silent
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if !p.muted {
		_ = p.start()
	}
	return p.muted
}

// Muted reports mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
