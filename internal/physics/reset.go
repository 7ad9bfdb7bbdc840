package physics

import "github.com/zkjon/pong/internal/domain"

// ResetBall serves from the field center. Each axis gets an independent coin
// flip for its sign, so neither component is ever zero.
func ResetBall(ball domain.Ball, cfg domain.FieldConfig, rng domain.Random) domain.Ball {
	ball.Pos = cfg.Center()
	ball.DX = randomSign(rng) * cfg.BallSpeed
	ball.DY = randomSign(rng) * cfg.BallSpeed
	return ball
}

func randomSign(rng domain.Random) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
