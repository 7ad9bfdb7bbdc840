package sim

import (
	"github.com/zkjon/pong/internal/ai"
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/physics"
)

// Margin is how far outside a paddle the ball is placed after a bounce so the
// next frame does not register the same contact again.
const Margin = 1.0

// Angle change applied at the paddle's edge (hit offset of 1).
const spin = 2.0

// Step advances the state by one frame. It only reads the random source for
// ball resets and AI noise; everything else is a function of its arguments.
// A state that is not running comes back unchanged.
func Step(state domain.State, inputs Inputs, rng domain.Random) (domain.State, Events) {
	if !state.Running {
		return state, 0
	}

	next := state
	cfg := state.Config
	var events Events

	next.Left = applyIntents(next.Left, inputs.Has(LeftUp), inputs.Has(LeftDown), cfg)

	if state.Mode == domain.ModeSinglePlayer {
		next.Right = ai.UpdatePaddle(next.Right, state.Ball, cfg, state.AI, rng)
	} else {
		next.Right = applyIntents(next.Right, inputs.Has(RightUp), inputs.Has(RightDown), cfg)
	}

	ball := next.Ball.Integrate()

	if physics.BallHitsHorizontalWall(ball, cfg.Height) {
		ball = physics.ReflectFromWall(ball)
		events |= EventWall
	}

	if physics.BallIntersectsPaddle(ball, next.Left) && ball.DX < 0 {
		ball.DX = -ball.DX
		ball.Pos.X = next.Left.Pos.X + next.Left.Width + Margin
		ball.DY += physics.HitOffset(ball, next.Left) * spin
		events |= EventHitLeft
	}

	if physics.BallIntersectsPaddle(ball, next.Right) && ball.DX > 0 {
		ball.DX = -ball.DX
		ball.Pos.X = next.Right.Pos.X - ball.Size - Margin
		ball.DY += physics.HitOffset(ball, next.Right) * spin
		events |= EventHitRight
	}

	ball.DY = physics.ClampSpeed(ball.DY, cfg.MaxBallSpeedY)

	if ball.Pos.X < 0 {
		next.Score = next.Score.Add(domain.SideRight)
		ball = physics.ResetBall(ball, cfg, rng)
		events |= EventScoreRight
	}
	if ball.Pos.X > cfg.Width {
		next.Score = next.Score.Add(domain.SideLeft)
		ball = physics.ResetBall(ball, cfg, rng)
		events |= EventScoreLeft
	}

	next.Ball = ball
	return next, events
}

func applyIntents(p domain.Paddle, up, down bool, cfg domain.FieldConfig) domain.Paddle {
	if up {
		p = physics.MovePaddle(p, domain.DirectionUp, cfg.PaddleSpeed, cfg.Height)
	}
	if down {
		p = physics.MovePaddle(p, domain.DirectionDown, cfg.PaddleSpeed, cfg.Height)
	}
	return p
}
