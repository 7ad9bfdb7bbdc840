// Package ai drives a paddle toward where the ball is predicted to arrive.
//
// The controller is stateless: every call looks only at the current ball and
// paddle. Imperfection comes from three knobs in domain.AIConfig: accuracy
// shrinks the trusted vertical drift and adds noise, and reaction speed both
// gates whether the paddle reacts this frame and scales how fast it moves.
package ai

import (
	"math"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/physics"
)

const (
	// Fraction of the paddle height inside which the paddle holds still.
	deadZone = 0.1
	// Noise spans [-0.5, 0.5] paddle heights at zero accuracy.
	noiseSpan = 1.0
)

// UpdatePaddle steers the right-hand paddle.
func UpdatePaddle(paddle domain.Paddle, ball domain.Ball, cfg domain.FieldConfig, aiCfg domain.AIConfig, rng domain.Random) domain.Paddle {
	return Track(domain.SideRight, paddle, ball, cfg, aiCfg, rng)
}

// Track steers a paddle on the given side. Random values are drawn in a fixed
// order (noise, then reaction), and none are drawn while the ball moves away.
func Track(side domain.Side, paddle domain.Paddle, ball domain.Ball, cfg domain.FieldConfig, aiCfg domain.AIConfig, rng domain.Random) domain.Paddle {
	if !approaching(side, ball) {
		return paddle
	}

	target := PredictY(side, paddle, ball, aiCfg.Accuracy)
	target += (rng.Float64() - 0.5) * noiseSpan * paddle.Height * (1 - aiCfg.Accuracy)

	diff := target - paddle.CenterY()
	if math.Abs(diff) < deadZone*paddle.Height {
		return paddle
	}

	if rng.Float64() >= aiCfg.ReactionSpeed {
		return paddle
	}

	dir := domain.DirectionUp
	if diff > 0 {
		dir = domain.DirectionDown
	}
	return physics.MovePaddle(paddle, dir, cfg.PaddleSpeed*aiCfg.ReactionSpeed, cfg.Height)
}

// PredictY extrapolates the ball's vertical position at the paddle's x,
// trusting only the accuracy share of the vertical drift. A ball already past
// the paddle gives a negative time and extrapolates backwards.
func PredictY(side domain.Side, paddle domain.Paddle, ball domain.Ball, accuracy float64) float64 {
	distance := paddle.Pos.X - ball.Pos.X
	if side == domain.SideLeft {
		distance = ball.Pos.X - paddle.Pos.X
	}
	timeToReach := distance / math.Abs(ball.DX)
	return ball.Pos.Y + ball.DY*timeToReach*accuracy
}

func approaching(side domain.Side, ball domain.Ball) bool {
	if side == domain.SideLeft {
		return ball.DX < 0
	}
	return ball.DX > 0
}
