package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/sim"
)

func testConfig() Config {
	return Config{
		Field:      domain.DefaultFieldConfig(),
		Mode:       domain.ModeSinglePlayer,
		Difficulty: domain.DifficultyHard,
		Random:     domain.NewRandom(5),
		TickRate:   500,
	}
}

func waitFor(t *testing.T, a *App, want AppEventType) AppEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-a.Events():
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestNewAppRejectsInvalidField(t *testing.T) {
	cfg := testConfig()
	cfg.Field.Width = -1
	if _, err := NewApp(cfg); !errors.Is(err, domain.ErrInvalidFieldConfig) {
		t.Errorf("expected ErrInvalidFieldConfig, got %v", err)
	}
}

func TestAppRunsAndQuits(t *testing.T) {
	a, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	defer a.Stop()

	if a.GetPhase() != session.PhaseIdle {
		t.Errorf("expected idle, got %v", a.GetPhase())
	}

	a.Input() <- InputEvent{Type: InputStart}
	ev := waitFor(t, a, AppEventPhaseChanged)
	if ev.Payload != session.PhaseRunning {
		t.Errorf("expected running, got %v", ev.Payload)
	}

	frame := waitFor(t, a, AppEventFrame).Payload.(Frame)
	if frame.Phase != session.PhaseRunning {
		t.Errorf("expected running frame, got %v", frame.Phase)
	}
	if frame.State.Ball.Pos == domain.DefaultFieldConfig().Center() {
		t.Error("ball did not move")
	}

	a.Input() <- InputEvent{Type: InputQuit}
	waitFor(t, a, AppEventQuit)

	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after quit")
	}
}

func TestAppReportsErrors(t *testing.T) {
	a, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	defer a.Stop()

	a.Input() <- InputEvent{Type: InputPause}
	ev := waitFor(t, a, AppEventError)
	if p, ok := ev.Payload.(ErrorPayload); !ok || p.Message == "" {
		t.Errorf("expected error payload, got %+v", ev.Payload)
	}

	a.Input() <- InputEvent{Type: InputSetMode, Payload: "single"}
	waitFor(t, a, AppEventError)
}

func TestAppSettingsAndReset(t *testing.T) {
	a, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	defer a.Stop()

	a.Input() <- InputEvent{Type: InputSetMode, Payload: domain.ModeTwoPlayer}
	a.Input() <- InputEvent{Type: InputSetDifficulty, Payload: domain.DifficultyEasy}
	a.Input() <- InputEvent{Type: InputIntents, Payload: sim.LeftUp}
	a.Input() <- InputEvent{Type: InputStart}
	waitFor(t, a, AppEventPhaseChanged)

	state := a.GetState()
	if state.Mode != domain.ModeTwoPlayer || state.AI.Level != domain.DifficultyEasy {
		t.Errorf("expected two player easy, got %v %v", state.Mode, state.AI.Level)
	}

	frame := waitFor(t, a, AppEventFrame).Payload.(Frame)
	if frame.State.Left.Pos.Y >= 160 {
		t.Errorf("held intent should move the left paddle up, got %v", frame.State.Left.Pos.Y)
	}

	a.Input() <- InputEvent{Type: InputReset}
	waitFor(t, a, AppEventPhaseChanged)

	state = a.GetState()
	if a.GetPhase() != session.PhaseIdle || state.Left.Pos.Y != 160 {
		t.Errorf("expected idle initial layout, got %v left y=%v", a.GetPhase(), state.Left.Pos.Y)
	}
}

func TestPauseClearsIntents(t *testing.T) {
	a, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	defer a.Stop()

	a.Input() <- InputEvent{Type: InputSetMode, Payload: domain.ModeTwoPlayer}
	a.Input() <- InputEvent{Type: InputIntents, Payload: sim.LeftDown}
	a.Input() <- InputEvent{Type: InputStart}
	waitFor(t, a, AppEventPhaseChanged)
	a.Input() <- InputEvent{Type: InputPause}
	waitFor(t, a, AppEventPhaseChanged)
	paused := a.GetState().Left.Pos.Y

	a.Input() <- InputEvent{Type: InputResume}
	waitFor(t, a, AppEventPhaseChanged)
	for i := 0; i < 5; i++ {
		waitFor(t, a, AppEventFrame)
	}

	if got := a.GetState().Left.Pos.Y; got != paused {
		t.Errorf("intent held before pause moved the paddle after resume: %v -> %v", paused, got)
	}
}

func TestStopCancelsLoop(t *testing.T) {
	a, err := NewApp(testConfig())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := a.Start(ctx); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}

	cancel()
	a.Stop()

	select {
	case <-a.Done():
	default:
		t.Error("expected Done to be closed after Stop")
	}
}

func TestSoak(t *testing.T) {
	cfg := testConfig()
	res, err := Soak(context.Background(), cfg, 5000)
	if err != nil {
		t.Fatalf("Soak failed: %v", err)
	}
	if res.Frames != 5000 {
		t.Errorf("expected 5000 frames, got %d", res.Frames)
	}
	if res.Checksum == "" {
		t.Error("expected a checksum")
	}

	cfg.Random = domain.NewRandom(5)
	again, err := Soak(context.Background(), cfg, 5000)
	if err != nil {
		t.Fatalf("Soak failed: %v", err)
	}
	if again.Checksum != res.Checksum || again.Score != res.Score {
		t.Errorf("same seed gave different runs: %+v vs %+v", res, again)
	}
}

func TestSoakCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Soak(ctx, testConfig(), 5000)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type sequence struct {
	values []float64
	calls  int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func TestAutopilot(t *testing.T) {
	state := domain.NewGameState(domain.DefaultFieldConfig(), domain.ModeTwoPlayer, domain.DifficultyHard)
	state.Ball.Pos = domain.Vector2{X: 300, Y: 350}
	state.Ball.DX = -5
	state.Ball.DY = 0

	tests := []struct {
		name string
		side domain.Side
		dx   float64
		y    float64
		want sim.Inputs
	}{
		{"left chases ball below", domain.SideLeft, -5, 350, sim.LeftDown},
		{"left chases ball above", domain.SideLeft, -5, 20, sim.LeftUp},
		{"left ignores receding ball", domain.SideLeft, 5, 350, 0},
		{"right chases ball below", domain.SideRight, 5, 350, sim.RightDown},
		{"right ignores receding ball", domain.SideRight, -5, 350, 0},
	}

	for _, tt := range tests {
		s := state
		s.Ball.DX = tt.dx
		s.Ball.Pos.Y = tt.y
		got := autopilot(s, tt.side, &sequence{values: []float64{0.5, 0}})
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
