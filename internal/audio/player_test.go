package audio

import (
	"testing"

	"github.com/zkjon/pong/internal/sim"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name   string
		events sim.Events
		want   Cue
		ok     bool
	}{
		{"nothing", 0, Cue{}, false},
		{"wall", sim.EventWall, cueWall, true},
		{"paddle", sim.EventHitLeft, cuePaddle, true},
		{"paddle beats wall", sim.EventHitRight | sim.EventWall, cuePaddle, true},
		{"score beats everything", sim.EventScoreLeft | sim.EventHitLeft | sim.EventWall, cueScore, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.events)
			if got != tt.want || ok != tt.ok {
				t.Errorf("expected (%+v, %v), got (%+v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(false)
	if p.Enabled() {
		t.Fatal("disabled player reports enabled")
	}
	p.Play(sim.EventScoreLeft)
	p.Close()
}
