package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/zkjon/pong/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	cuePaddle = Cue{Freq: 880, Duration: 40 * time.Millisecond}
	cueWall   = Cue{Freq: 440, Duration: 30 * time.Millisecond}
	cueScore  = Cue{Freq: 220, Duration: 250 * time.Millisecond}
)

// Player turns frame events into short tones. A player that failed to open
// the speaker, or was created disabled, silently ignores everything.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer(enabled bool) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return p
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play picks the most significant cue of the frame.
func (p *Player) Play(events sim.Events) {
	c, ok := CueFor(events)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		log.Printf("Audio tone failed: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(c.Duration), tone))
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// CueFor ranks score over paddle hit over wall bounce.
func CueFor(events sim.Events) (Cue, bool) {
	switch {
	case events.Scored():
		return cueScore, true
	case events.PaddleHit():
		return cuePaddle, true
	case events.Has(sim.EventWall):
		return cueWall, true
	}
	return Cue{}, false
}
