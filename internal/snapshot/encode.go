// Package snapshot encodes simulation states in protobuf wire format.
//
// Every field is always written in field-number order, so equal states give
// equal bytes and the encoding can be hashed to compare runs.
package snapshot

import (
	"fmt"
	"hash/fnv"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/zkjon/pong/internal/domain"
)

// State fields.
const (
	fieldBall    protowire.Number = 1
	fieldLeft    protowire.Number = 2
	fieldRight   protowire.Number = 3
	fieldScore   protowire.Number = 4
	fieldConfig  protowire.Number = 5
	fieldMode    protowire.Number = 6
	fieldAI      protowire.Number = 7
	fieldRunning protowire.Number = 8
)

func Marshal(s domain.State) []byte {
	var b []byte
	b = appendMessage(b, fieldBall, ballToWire(s.Ball))
	b = appendMessage(b, fieldLeft, paddleToWire(s.Left))
	b = appendMessage(b, fieldRight, paddleToWire(s.Right))
	b = appendMessage(b, fieldScore, scoreToWire(s.Score))
	b = appendMessage(b, fieldConfig, configToWire(s.Config))
	b = appendInt(b, fieldMode, int64(s.Mode))
	b = appendMessage(b, fieldAI, aiToWire(s.AI))
	b = protowire.AppendTag(b, fieldRunning, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(s.Running))
	return b
}

// Checksum is a short fingerprint of the encoded state.
func Checksum(s domain.State) string {
	h := fnv.New64a()
	h.Write(Marshal(s))
	return fmt.Sprintf("%016x", h.Sum64())
}

func ballToWire(ball domain.Ball) []byte {
	var b []byte
	b = appendDouble(b, 1, ball.Pos.X)
	b = appendDouble(b, 2, ball.Pos.Y)
	b = appendDouble(b, 3, ball.DX)
	b = appendDouble(b, 4, ball.DY)
	b = appendDouble(b, 5, ball.Size)
	return b
}

func paddleToWire(p domain.Paddle) []byte {
	var b []byte
	b = appendDouble(b, 1, p.Pos.X)
	b = appendDouble(b, 2, p.Pos.Y)
	b = appendDouble(b, 3, p.Width)
	b = appendDouble(b, 4, p.Height)
	return b
}

func scoreToWire(s domain.Score) []byte {
	var b []byte
	b = appendInt(b, 1, int64(s.Left))
	b = appendInt(b, 2, int64(s.Right))
	return b
}

func configToWire(c domain.FieldConfig) []byte {
	var b []byte
	b = appendDouble(b, 1, c.Width)
	b = appendDouble(b, 2, c.Height)
	b = appendDouble(b, 3, c.PaddleWidth)
	b = appendDouble(b, 4, c.PaddleHeight)
	b = appendDouble(b, 5, c.BallSize)
	b = appendDouble(b, 6, c.PaddleSpeed)
	b = appendDouble(b, 7, c.BallSpeed)
	b = appendDouble(b, 8, c.MaxBallSpeedY)
	return b
}

func aiToWire(a domain.AIConfig) []byte {
	var b []byte
	b = appendDouble(b, 1, a.ReactionSpeed)
	b = appendDouble(b, 2, a.Accuracy)
	b = appendInt(b, 3, int64(a.Level))
	return b
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// Integers are sint64 so a negative value stays short.
func appendInt(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}
