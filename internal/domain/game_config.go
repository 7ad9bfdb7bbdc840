package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidFieldConfig = errors.New("invalid field config")

type FieldConfig struct {
	Width         float64
	Height        float64
	PaddleWidth   float64
	PaddleHeight  float64
	BallSize      float64
	PaddleSpeed   float64
	BallSpeed     float64
	MaxBallSpeedY float64
}

func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Width:         800,
		Height:        400,
		PaddleWidth:   10,
		PaddleHeight:  80,
		BallSize:      10,
		PaddleSpeed:   6,
		BallSpeed:     5,
		MaxBallSpeedY: 8,
	}
}

func (c FieldConfig) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"ball size", c.BallSize},
		{"paddle speed", c.PaddleSpeed},
		{"ball speed", c.BallSpeed},
		{"max vertical ball speed", c.MaxBallSpeedY},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidFieldConfig, v.name, v.value)
		}
	}

	if c.PaddleHeight > c.Height {
		return fmt.Errorf("%w: paddle height %v exceeds field height %v", ErrInvalidFieldConfig, c.PaddleHeight, c.Height)
	}
	if 2*c.PaddleWidth >= c.Width {
		return fmt.Errorf("%w: paddles of width %v do not fit a field of width %v", ErrInvalidFieldConfig, c.PaddleWidth, c.Width)
	}
	if c.BallSize >= c.Height {
		return fmt.Errorf("%w: ball size %v does not fit a field of height %v", ErrInvalidFieldConfig, c.BallSize, c.Height)
	}
	return nil
}

func (c FieldConfig) Center() Vector2 {
	return Vector2{X: c.Width / 2, Y: c.Height / 2}
}
