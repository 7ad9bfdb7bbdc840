package app

import (
	"context"
	"fmt"

	"github.com/zkjon/pong/internal/ai"
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/sim"
	"github.com/zkjon/pong/internal/snapshot"
)

type SoakResult struct {
	Frames     int
	Score      domain.Score
	PaddleHits int
	WallHits   int
	Checksum   string
}

// autopilotSeed drives the stand-in players so a soak run depends only on the
// session's own seed.
const autopilotSeed = 1

// Soak runs a session for the given number of frames as fast as it can,
// checking invariants after every step. Sides without a computer opponent are
// played by an autopilot.
func Soak(ctx context.Context, cfg Config, frames int) (SoakResult, error) {
	s, err := session.New(session.Config{
		Field:      cfg.Field,
		Mode:       cfg.Mode,
		Difficulty: cfg.Difficulty,
		Random:     cfg.Random,
	})
	if err != nil {
		return SoakResult{}, fmt.Errorf("failed to create session: %w", err)
	}
	if err := s.Start(); err != nil {
		return SoakResult{}, fmt.Errorf("failed to start session: %w", err)
	}

	pilot := domain.NewRandom(autopilotSeed)
	var res SoakResult
	for res.Frames < frames {
		if res.Frames%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		state := s.State()
		in := autopilot(state, domain.SideLeft, pilot)
		if !state.IsAIControlled(domain.SideRight) {
			in |= autopilot(state, domain.SideRight, pilot)
		}

		events := s.Advance(in)
		res.Frames++
		if events.PaddleHit() {
			res.PaddleHits++
		}
		if events.Has(sim.EventWall) {
			res.WallHits++
		}

		if err := sim.CheckInvariants(s.State()); err != nil {
			res.Score = s.State().Score
			return res, fmt.Errorf("frame %d: %w", res.Frames, err)
		}
	}

	res.Score = s.State().Score
	res.Checksum = snapshot.Checksum(s.State())
	return res, nil
}

// autopilot turns the computer opponent's next move for side into held
// intents.
func autopilot(state domain.State, side domain.Side, rng domain.Random) sim.Inputs {
	paddle := state.Paddle(side)
	moved := ai.Track(side, paddle, state.Ball, state.Config, state.AI, rng)

	up, down := sim.LeftUp, sim.LeftDown
	if side == domain.SideRight {
		up, down = sim.RightUp, sim.RightDown
	}
	switch {
	case moved.Pos.Y < paddle.Pos.Y:
		return up
	case moved.Pos.Y > paddle.Pos.Y:
		return down
	}
	return 0
}
