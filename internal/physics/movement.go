package physics

import "github.com/zkjon/pong/internal/domain"

// MovePaddle moves the paddle by speed in the given direction. A move that
// would leave [0, fieldHeight-height] is rejected and the paddle comes back
// unchanged; it is never clamped to the edge.
func MovePaddle(paddle domain.Paddle, dir domain.Direction, speed, fieldHeight float64) domain.Paddle {
	sign := dir.Sign()
	if sign == 0 {
		return paddle
	}

	y := paddle.Pos.Y + sign*speed
	if y < 0 || y > fieldHeight-paddle.Height {
		return paddle
	}

	paddle.Pos.Y = y
	return paddle
}
