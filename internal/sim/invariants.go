package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/zkjon/pong/internal/domain"
)

var ErrInvariant = errors.New("simulation invariant violated")

// CheckInvariants reports the first broken invariant of a reachable state.
func CheckInvariants(s domain.State) error {
	if !s.Left.InBounds(s.Config.Height) {
		return fmt.Errorf("%w: left paddle y=%v outside [0, %v]", ErrInvariant, s.Left.Pos.Y, s.Config.Height-s.Left.Height)
	}
	if !s.Right.InBounds(s.Config.Height) {
		return fmt.Errorf("%w: right paddle y=%v outside [0, %v]", ErrInvariant, s.Right.Pos.Y, s.Config.Height-s.Right.Height)
	}
	if math.Abs(s.Ball.DY) > s.Config.MaxBallSpeedY {
		return fmt.Errorf("%w: ball dy=%v exceeds %v", ErrInvariant, s.Ball.DY, s.Config.MaxBallSpeedY)
	}
	if s.Ball.Size <= 0 {
		return fmt.Errorf("%w: ball size %v", ErrInvariant, s.Ball.Size)
	}
	if s.Score.Left < 0 || s.Score.Right < 0 {
		return fmt.Errorf("%w: negative score %v", ErrInvariant, s.Score)
	}
	return nil
}
