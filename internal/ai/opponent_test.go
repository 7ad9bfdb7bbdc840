package ai

import (
	"math"
	"testing"

	"github.com/zkjon/pong/internal/domain"
)

type sequence struct {
	values []float64
	calls  int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func setup(ballY, dx, dy float64) (domain.Paddle, domain.Ball, domain.FieldConfig) {
	cfg := domain.DefaultFieldConfig()
	paddle := domain.Paddle{Pos: domain.Vector2{X: 790, Y: 160}, Width: 10, Height: 80}
	ball := domain.Ball{Pos: domain.Vector2{X: 400, Y: ballY}, DX: dx, DY: dy, Size: 10}
	return paddle, ball, cfg
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIgnoresRecedingBall(t *testing.T) {
	paddle, ball, cfg := setup(300, -5, 0)
	rng := &sequence{values: []float64{0.5}}

	got := UpdatePaddle(paddle, ball, cfg, domain.AIConfigFor(domain.DifficultyHard), rng)
	if got != paddle {
		t.Errorf("expected paddle unchanged, got %+v", got.Pos)
	}
	if rng.calls != 0 {
		t.Errorf("expected no random draws, got %d", rng.calls)
	}
}

func TestHoldsStillInDeadZone(t *testing.T) {
	paddle, ball, cfg := setup(200, 5, 0)
	rng := &sequence{values: []float64{0.5, 0.0}}

	got := UpdatePaddle(paddle, ball, cfg, domain.AIConfigFor(domain.DifficultyMedium), rng)
	if got != paddle {
		t.Errorf("expected paddle unchanged, got %+v", got.Pos)
	}
	if rng.calls != 1 {
		t.Errorf("expected only the noise draw, got %d", rng.calls)
	}
}

func TestMovesTowardPrediction(t *testing.T) {
	aiCfg := domain.AIConfigFor(domain.DifficultyMedium)
	step := 6 * aiCfg.ReactionSpeed

	paddle, ball, cfg := setup(300, 5, 0)
	got := UpdatePaddle(paddle, ball, cfg, aiCfg, &sequence{values: []float64{0.5, 0.1}})
	if !almostEqual(got.Pos.Y, 160+step) {
		t.Errorf("expected paddle to move down to %v, got %v", 160+step, got.Pos.Y)
	}

	paddle, ball, cfg = setup(50, 5, 0)
	got = UpdatePaddle(paddle, ball, cfg, aiCfg, &sequence{values: []float64{0.5, 0.1}})
	if !almostEqual(got.Pos.Y, 160-step) {
		t.Errorf("expected paddle to move up to %v, got %v", 160-step, got.Pos.Y)
	}
}

func TestReactionGate(t *testing.T) {
	aiCfg := domain.AIConfigFor(domain.DifficultyMedium)
	paddle, ball, cfg := setup(300, 5, 0)
	rng := &sequence{values: []float64{0.5, 0.8}}

	got := UpdatePaddle(paddle, ball, cfg, aiCfg, rng)
	if got != paddle {
		t.Errorf("a reaction draw at the threshold should not move, got %+v", got.Pos)
	}
	if rng.calls != 2 {
		t.Errorf("expected 2 draws, got %d", rng.calls)
	}
}

func TestStaysInBounds(t *testing.T) {
	aiCfg := domain.AIConfigFor(domain.DifficultyHard)
	paddle, ball, cfg := setup(0, 5, -8)
	paddle.Pos.Y = 2

	got := UpdatePaddle(paddle, ball, cfg, aiCfg, &sequence{values: []float64{0.5, 0.0}})
	if got.Pos.Y != 2 {
		t.Errorf("a move past the top should be rejected, got y=%v", got.Pos.Y)
	}
}

func TestPredictY(t *testing.T) {
	paddle, ball, _ := setup(200, 5, 2)
	if got := PredictY(domain.SideRight, paddle, ball, 0.85); !almostEqual(got, 200+2*78*0.85) {
		t.Errorf("expected %v, got %v", 200+2*78*0.85, got)
	}

	left := domain.Paddle{Pos: domain.Vector2{X: 0, Y: 160}, Width: 10, Height: 80}
	ball.DX = -5
	if got := PredictY(domain.SideLeft, left, ball, 1); !almostEqual(got, 360) {
		t.Errorf("expected 360, got %v", got)
	}
}

func TestTrackLeftSide(t *testing.T) {
	aiCfg := domain.AIConfigFor(domain.DifficultyHard)
	cfg := domain.DefaultFieldConfig()
	left := domain.Paddle{Pos: domain.Vector2{X: 0, Y: 160}, Width: 10, Height: 80}
	ball := domain.Ball{Pos: domain.Vector2{X: 400, Y: 300}, DX: -5, Size: 10}

	got := Track(domain.SideLeft, left, ball, cfg, aiCfg, &sequence{values: []float64{0.5, 0.1}})
	if got.Pos.Y <= 160 {
		t.Errorf("expected left paddle to move down, got y=%v", got.Pos.Y)
	}

	ball.DX = 5
	if got := Track(domain.SideLeft, left, ball, cfg, aiCfg, &sequence{values: []float64{0.5}}); got != left {
		t.Errorf("left paddle should ignore a ball moving right, got %+v", got.Pos)
	}
}

func TestDeterministic(t *testing.T) {
	aiCfg := domain.AIConfigFor(domain.DifficultyEasy)
	paddle, ball, cfg := setup(330, 5, 3)

	a := paddle
	b := paddle
	rngA := &sequence{values: []float64{0.13, 0.42, 0.77, 0.05}}
	rngB := &sequence{values: []float64{0.13, 0.42, 0.77, 0.05}}
	for i := 0; i < 50; i++ {
		a = UpdatePaddle(a, ball, cfg, aiCfg, rngA)
		b = UpdatePaddle(b, ball, cfg, aiCfg, rngB)
	}
	if a != b {
		t.Errorf("same inputs and draws gave different paddles: %+v vs %+v", a.Pos, b.Pos)
	}
}
