package physics

import "github.com/zkjon/pong/internal/domain"

// BallIntersectsPaddle reports whether the ball's bounding box overlaps the
// paddle. Intervals are half-open, so touching edges do not count.
func BallIntersectsPaddle(ball domain.Ball, paddle domain.Paddle) bool {
	return ball.Pos.X < paddle.Pos.X+paddle.Width &&
		ball.Pos.X+ball.Size > paddle.Pos.X &&
		ball.Pos.Y < paddle.Pos.Y+paddle.Height &&
		ball.Pos.Y+ball.Size > paddle.Pos.Y
}

// BallHitsHorizontalWall reports contact with the top or bottom boundary.
func BallHitsHorizontalWall(ball domain.Ball, fieldHeight float64) bool {
	return ball.Pos.Y <= 0 || ball.Pos.Y >= fieldHeight-ball.Size
}

// ReflectFromWall inverts DY. Callers apply it on every wall contact.
func ReflectFromWall(ball domain.Ball) domain.Ball {
	ball.DY = -ball.DY
	return ball
}

// HitOffset is where the ball struck relative to the paddle's vertical
// center, scaled so that +/-1 means half a paddle height away.
func HitOffset(ball domain.Ball, paddle domain.Paddle) float64 {
	return (ball.Pos.Y - paddle.CenterY()) / (paddle.Height / 2)
}

func ClampSpeed(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
