package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/sim"
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

func newSession(t *testing.T, mode domain.GameMode) (*Session, chan Event) {
	t.Helper()
	events := make(chan Event, 100)
	s, err := New(Config{
		Field:      domain.DefaultFieldConfig(),
		Mode:       mode,
		Difficulty: domain.DifficultyMedium,
		Random:     &sequence{values: []float64{0.3, 0.7}},
		EventCh:    events,
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s, events
}

func drain(ch chan Event) []EventType {
	var types []EventType
	for {
		select {
		case ev := <-ch:
			types = append(types, ev.Type)
		default:
			return types
		}
	}
}

func TestNewRejectsInvalidField(t *testing.T) {
	field := domain.DefaultFieldConfig()
	field.Height = 0

	_, err := New(Config{Field: field})
	if !errors.Is(err, domain.ErrInvalidFieldConfig) {
		t.Errorf("expected ErrInvalidFieldConfig, got %v", err)
	}
}

func TestLifecycle(t *testing.T) {
	s, events := newSession(t, domain.ModeTwoPlayer)

	if s.Phase() != PhaseIdle || s.State().Running {
		t.Fatalf("expected idle, got %v running=%v", s.Phase(), s.State().Running)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start from idle: %v", err)
	}
	if s.Phase() != PhaseRunning || !s.State().Running {
		t.Errorf("expected running, got %v running=%v", s.Phase(), s.State().Running)
	}

	if err := s.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Start while running: expected ErrInvalidTransition, got %v", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resume while running: expected ErrInvalidTransition, got %v", err)
	}

	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if s.Phase() != PhasePaused || s.State().Running {
		t.Errorf("expected paused, got %v running=%v", s.Phase(), s.State().Running)
	}
	if err := s.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Pause while paused: expected ErrInvalidTransition, got %v", err)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("expected running, got %v", s.Phase())
	}

	want := []EventType{EventStarted, EventPaused, EventResumed}
	if diff := cmp.Diff(want, drain(events)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestStartFromPausedResumes(t *testing.T) {
	s, events := newSession(t, domain.ModeTwoPlayer)
	s.Start()
	s.Pause()
	drain(events)

	if err := s.Start(); err != nil {
		t.Fatalf("Start from paused: %v", err)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("expected running, got %v", s.Phase())
	}
	if diff := cmp.Diff([]EventType{EventResumed}, drain(events)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestPauseFromIdle(t *testing.T) {
	s, _ := newSession(t, domain.ModeTwoPlayer)
	if err := s.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestToggle(t *testing.T) {
	s, _ := newSession(t, domain.ModeTwoPlayer)

	phases := []Phase{PhaseRunning, PhasePaused, PhaseRunning, PhasePaused}
	for i, want := range phases {
		if err := s.Toggle(); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if s.Phase() != want {
			t.Errorf("toggle %d: expected %v, got %v", i, want, s.Phase())
		}
	}
}

func TestAdvanceOnlyWhileRunning(t *testing.T) {
	s, _ := newSession(t, domain.ModeTwoPlayer)
	before := s.State()

	s.Advance(sim.LeftUp)
	if diff := cmp.Diff(before, s.State()); diff != "" {
		t.Errorf("idle session advanced (-before +after):\n%s", diff)
	}

	s.Start()
	s.Advance(sim.LeftUp)
	if s.State().Ball.Pos == before.Ball.Pos {
		t.Error("running session did not move the ball")
	}
	if s.State().Left.Pos.Y != before.Left.Pos.Y-6 {
		t.Errorf("expected left paddle to move up, got %v", s.State().Left.Pos.Y)
	}

	s.Pause()
	paused := s.State()
	s.Advance(sim.LeftUp)
	if diff := cmp.Diff(paused, s.State()); diff != "" {
		t.Errorf("paused session advanced (-before +after):\n%s", diff)
	}
}

func TestAdvanceEmitsScore(t *testing.T) {
	s, events := newSession(t, domain.ModeTwoPlayer)
	s.Start()
	drain(events)

	s.state.Ball.Pos = domain.Vector2{X: 4, Y: 50}
	s.state.Ball.DX = -5
	s.state.Ball.DY = 0

	got := s.Advance(0)
	if !got.Has(sim.EventScoreRight) {
		t.Fatalf("expected right to score, got %v", got)
	}

	select {
	case ev := <-events:
		p, ok := ev.Payload.(ScoredPayload)
		if ev.Type != EventScored || !ok {
			t.Fatalf("expected scored event, got %+v", ev)
		}
		if p.Side != domain.SideRight || p.Score != (domain.Score{Right: 1}) {
			t.Errorf("unexpected payload %+v", p)
		}
	default:
		t.Fatal("no scored event")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, events := newSession(t, domain.ModeSinglePlayer)
	s.SetDifficulty(domain.DifficultyHard)
	s.Start()
	for i := 0; i < 200; i++ {
		s.Advance(sim.LeftDown)
	}

	s.Reset()
	once := s.State()
	phase := s.Phase()
	s.Reset()

	if diff := cmp.Diff(once, s.State()); diff != "" {
		t.Errorf("second reset changed state (-once +twice):\n%s", diff)
	}
	if phase != PhaseIdle || s.Phase() != PhaseIdle {
		t.Errorf("expected idle after reset, got %v then %v", phase, s.Phase())
	}
	if once.Mode != domain.ModeSinglePlayer || once.AI.Level != domain.DifficultyHard {
		t.Errorf("reset should keep mode and difficulty, got %v %v", once.Mode, once.AI.Level)
	}
	if !once.Score.IsZero() {
		t.Errorf("expected zero score, got %v", once.Score)
	}

	types := drain(events)
	if types[len(types)-1] != EventReset || types[len(types)-2] != EventReset {
		t.Errorf("expected two reset events at the end, got %v", types)
	}
}

func TestSettingsLockedWhileRunning(t *testing.T) {
	s, _ := newSession(t, domain.ModeTwoPlayer)
	s.Start()

	if err := s.SetMode(domain.ModeSinglePlayer); !errors.Is(err, ErrRunning) {
		t.Errorf("SetMode while running: expected ErrRunning, got %v", err)
	}
	if err := s.SetDifficulty(domain.DifficultyHard); !errors.Is(err, ErrRunning) {
		t.Errorf("SetDifficulty while running: expected ErrRunning, got %v", err)
	}
	if s.State().Mode != domain.ModeTwoPlayer || s.State().AI.Level != domain.DifficultyMedium {
		t.Error("rejected changes should leave the state alone")
	}

	s.Pause()
	if err := s.SetMode(domain.ModeSinglePlayer); err != nil {
		t.Errorf("SetMode while paused: %v", err)
	}
	if err := s.SetDifficulty(domain.DifficultyEasy); err != nil {
		t.Errorf("SetDifficulty while paused: %v", err)
	}
	if s.State().Mode != domain.ModeSinglePlayer {
		t.Errorf("expected single player, got %v", s.State().Mode)
	}
	if s.State().AI != domain.AIConfigFor(domain.DifficultyEasy) {
		t.Errorf("expected easy AI, got %+v", s.State().AI)
	}
}

func TestDefaultRandom(t *testing.T) {
	s, err := New(Config{Field: domain.DefaultFieldConfig()})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 1000; i++ {
		s.Advance(0)
		if err := sim.CheckInvariants(s.State()); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}
