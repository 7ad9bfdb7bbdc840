package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/sim"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrRunning           = errors.New("session is running")
)

// Session owns one simulation state and decides when the step runs.
// It is not safe for concurrent use; the host loop is its only writer.
type Session struct {
	phase Phase
	state domain.State
	rng   domain.Random

	eventCh chan<- Event
}

type Config struct {
	Field      domain.FieldConfig
	Mode       domain.GameMode
	Difficulty domain.Difficulty
	Random     domain.Random
	EventCh    chan<- Event
}

func New(cfg Config) (*Session, error) {
	if err := cfg.Field.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	rng := cfg.Random
	if rng == nil {
		rng = domain.NewRandom(1)
	}

	return &Session{
		phase:   PhaseIdle,
		state:   domain.NewGameState(cfg.Field, cfg.Mode, cfg.Difficulty),
		rng:     rng,
		eventCh: cfg.EventCh,
	}, nil
}

func (s *Session) Phase() Phase {
	return s.phase
}

// State returns a copy for rendering.
func (s *Session) State() domain.State {
	return s.state
}

// Start begins play from Idle. From Paused it behaves like Resume, the way a
// single START/RESUME control does.
func (s *Session) Start() error {
	switch s.phase {
	case PhaseIdle:
		s.setPhase(PhaseRunning)
		s.emit(Event{Type: EventStarted})
		return nil
	case PhasePaused:
		return s.Resume()
	}
	return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.phase)
}

func (s *Session) Pause() error {
	if s.phase != PhaseRunning {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, s.phase)
	}
	s.setPhase(PhasePaused)
	s.emit(Event{Type: EventPaused})
	return nil
}

func (s *Session) Resume() error {
	if s.phase != PhasePaused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, s.phase)
	}
	s.setPhase(PhaseRunning)
	s.emit(Event{Type: EventResumed})
	return nil
}

// Toggle pauses a running session and starts or resumes any other.
func (s *Session) Toggle() error {
	if s.phase == PhaseRunning {
		return s.Pause()
	}
	return s.Start()
}

// Reset returns to Idle with the initial layout. Mode and difficulty stay.
func (s *Session) Reset() {
	s.state = s.state.Reset()
	s.phase = PhaseIdle
	s.emit(Event{Type: EventReset})
}

func (s *Session) SetMode(mode domain.GameMode) error {
	if s.phase == PhaseRunning {
		return fmt.Errorf("cannot change mode: %w", ErrRunning)
	}
	if s.state.Mode == mode {
		return nil
	}
	s.state.Mode = mode
	s.emit(Event{Type: EventModeChanged, Payload: mode})
	return nil
}

func (s *Session) SetDifficulty(d domain.Difficulty) error {
	if s.phase == PhaseRunning {
		return fmt.Errorf("cannot change difficulty: %w", ErrRunning)
	}
	s.state.AI = domain.AIConfigFor(d)
	s.emit(Event{Type: EventDifficultyChanged, Payload: s.state.AI.Level})
	return nil
}

// Advance runs one simulation step while Running and is a no-op otherwise.
func (s *Session) Advance(inputs sim.Inputs) sim.Events {
	if s.phase != PhaseRunning {
		return 0
	}

	next, events := sim.Step(s.state, inputs, s.rng)
	s.state = next

	if events.Has(sim.EventScoreLeft) {
		s.emit(Event{Type: EventScored, Payload: ScoredPayload{Side: domain.SideLeft, Score: next.Score}})
	}
	if events.Has(sim.EventScoreRight) {
		s.emit(Event{Type: EventScored, Payload: ScoredPayload{Side: domain.SideRight, Score: next.Score}})
	}
	return events
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.state.Running = p == PhaseRunning
}

func (s *Session) emit(event Event) {
	if s.eventCh == nil {
		return
	}
	select {
	case s.eventCh <- event:
	default:
		log.Println("Session event channel full")
	}
}
