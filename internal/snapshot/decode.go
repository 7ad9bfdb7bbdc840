package snapshot

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/zkjon/pong/internal/domain"
)

var ErrMalformed = errors.New("malformed snapshot")

func Unmarshal(b []byte) (domain.State, error) {
	var s domain.State

	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch {
		case num == fieldMode && typ == protowire.VarintType:
			n, x := consumeInt(v)
			s.Mode = domain.GameMode(x)
			return n, nil
		case num == fieldRunning && typ == protowire.VarintType:
			x, n := protowire.ConsumeVarint(v)
			s.Running = protowire.DecodeBool(x)
			return n, nil
		case typ == protowire.BytesType:
			msg, n := protowire.ConsumeBytes(v)
			if n < 0 {
				return n, nil
			}
			var err error
			switch num {
			case fieldBall:
				s.Ball, err = ballFromWire(msg)
			case fieldLeft:
				s.Left, err = paddleFromWire(msg)
			case fieldRight:
				s.Right, err = paddleFromWire(msg)
			case fieldScore:
				s.Score, err = scoreFromWire(msg)
			case fieldConfig:
				s.Config, err = configFromWire(msg)
			case fieldAI:
				s.AI, err = aiFromWire(msg)
			}
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
	if err != nil {
		return domain.State{}, err
	}
	return s, nil
}

func ballFromWire(b []byte) (domain.Ball, error) {
	var ball domain.Ball
	err := walkDoubles(b, map[protowire.Number]*float64{
		1: &ball.Pos.X,
		2: &ball.Pos.Y,
		3: &ball.DX,
		4: &ball.DY,
		5: &ball.Size,
	})
	return ball, err
}

func paddleFromWire(b []byte) (domain.Paddle, error) {
	var p domain.Paddle
	err := walkDoubles(b, map[protowire.Number]*float64{
		1: &p.Pos.X,
		2: &p.Pos.Y,
		3: &p.Width,
		4: &p.Height,
	})
	return p, err
}

func configFromWire(b []byte) (domain.FieldConfig, error) {
	var c domain.FieldConfig
	err := walkDoubles(b, map[protowire.Number]*float64{
		1: &c.Width,
		2: &c.Height,
		3: &c.PaddleWidth,
		4: &c.PaddleHeight,
		5: &c.BallSize,
		6: &c.PaddleSpeed,
		7: &c.BallSpeed,
		8: &c.MaxBallSpeedY,
	})
	return c, err
}

func scoreFromWire(b []byte) (domain.Score, error) {
	var s domain.Score
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if typ != protowire.VarintType || (num != 1 && num != 2) {
			return protowire.ConsumeFieldValue(num, typ, v), nil
		}
		n, x := consumeInt(v)
		if num == 1 {
			s.Left = int(x)
		} else {
			s.Right = int(x)
		}
		return n, nil
	})
	return s, err
}

func aiFromWire(b []byte) (domain.AIConfig, error) {
	var a domain.AIConfig
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			x, n := protowire.ConsumeFixed64(v)
			a.ReactionSpeed = math.Float64frombits(x)
			return n, nil
		case num == 2 && typ == protowire.Fixed64Type:
			x, n := protowire.ConsumeFixed64(v)
			a.Accuracy = math.Float64frombits(x)
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			n, x := consumeInt(v)
			a.Level = domain.Difficulty(x)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, v), nil
	})
	return a, err
}

func walkDoubles(b []byte, fields map[protowire.Number]*float64) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		dst, ok := fields[num]
		if !ok || typ != protowire.Fixed64Type {
			return protowire.ConsumeFieldValue(num, typ, v), nil
		}
		x, n := protowire.ConsumeFixed64(v)
		*dst = math.Float64frombits(x)
		return n, nil
	})
}

// walk calls fn for every field in b. fn returns how many bytes of the value
// it consumed, or a negative protowire error code.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			return fmt.Errorf("%w: field %d: %w", ErrMalformed, num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func consumeInt(b []byte) (int, int64) {
	x, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return n, 0
	}
	return n, protowire.DecodeZigZag(x)
}
