package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/sim"
)

const DefaultTickRate = 60

// App is the host loop around a session. One goroutine owns the session and
// advances it on a fixed tick; everything else talks to it through channels.
type App struct {
	session        *session.Session
	sessionEventCh chan session.Event

	tick    time.Duration
	intents sim.Inputs

	eventCh chan AppEvent
	inputCh chan InputEvent

	stateMu sync.RWMutex
	state   domain.State
	phase   session.Phase

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventFrame AppEventType = iota
	AppEventPhaseChanged
	AppEventScored
	AppEventError
	AppEventQuit
)

// Frame is what a renderer needs after one tick.
type Frame struct {
	State  domain.State
	Events sim.Events
	Phase  session.Phase
}

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputStart InputEventType = iota
	InputPause
	InputResume
	InputToggle
	InputReset
	InputSetMode
	InputSetDifficulty
	InputIntents
	InputQuit
)

type ErrorPayload struct {
	Message string
}

type Config struct {
	Field      domain.FieldConfig
	Mode       domain.GameMode
	Difficulty domain.Difficulty
	Random     domain.Random
	TickRate   int
}

func NewApp(cfg Config) (*App, error) {
	sessionEventCh := make(chan session.Event, 100)

	s, err := session.New(session.Config{
		Field:      cfg.Field,
		Mode:       cfg.Mode,
		Difficulty: cfg.Difficulty,
		Random:     cfg.Random,
		EventCh:    sessionEventCh,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	rate := cfg.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}

	return &App{
		session:        s,
		sessionEventCh: sessionEventCh,
		tick:           time.Second / time.Duration(rate),
		eventCh:        make(chan AppEvent, 100),
		inputCh:        make(chan InputEvent, 100),
		state:          s.State(),
		phase:          s.Phase(),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	state := a.GetState()
	log.Printf("App started, tick %v, mode %s, difficulty %s",
		a.tick, state.Mode, state.AI.Level)

	g, gctx := errgroup.WithContext(a.ctx)
	a.group = g

	g.Go(func() error { return a.loop(gctx) })
	g.Go(func() error { return a.eventForwarder(gctx) })

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.group == nil {
		return
	}
	if err := a.group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("App stopped with error: %v", err)
	}
}

// Done is closed once the app is stopped or asked to quit.
func (a *App) Done() <-chan struct{} {
	if a.ctx == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return a.ctx.Done()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

func (a *App) GetState() domain.State {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.state
}

func (a *App) GetPhase() session.Phase {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.phase
}

func (a *App) loop(ctx context.Context) error {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case input := <-a.inputCh:
			if quit := a.handleInput(input); quit {
				a.publish(AppEvent{Type: AppEventQuit})
				a.cancel()
				return nil
			}

		case <-ticker.C:
			a.doTick()
		}
	}
}

func (a *App) doTick() {
	events := a.session.Advance(a.intents)
	frame := Frame{
		State:  a.session.State(),
		Events: events,
		Phase:  a.session.Phase(),
	}
	a.storeState(frame.State, frame.Phase)

	// Renderers only need the latest frame, so a full channel just drops it.
	select {
	case a.eventCh <- AppEvent{Type: AppEventFrame, Payload: frame}:
	default:
	}
}

func (a *App) handleInput(input InputEvent) bool {
	var err error
	before := a.session.Phase()

	switch input.Type {
	case InputStart:
		err = a.session.Start()

	case InputPause:
		err = a.session.Pause()

	case InputResume:
		err = a.session.Resume()

	case InputToggle:
		err = a.session.Toggle()

	case InputReset:
		a.session.Reset()
		a.intents = 0

	case InputSetMode:
		mode, ok := input.Payload.(domain.GameMode)
		if !ok {
			err = fmt.Errorf("bad mode payload %T", input.Payload)
			break
		}
		err = a.session.SetMode(mode)

	case InputSetDifficulty:
		d, ok := input.Payload.(domain.Difficulty)
		if !ok {
			err = fmt.Errorf("bad difficulty payload %T", input.Payload)
			break
		}
		err = a.session.SetDifficulty(d)

	case InputIntents:
		if in, ok := input.Payload.(sim.Inputs); ok {
			a.intents = in
		}

	case InputQuit:
		return true
	}

	if err != nil {
		log.Printf("Failed to handle input %d: %v", input.Type, err)
		a.publish(AppEvent{Type: AppEventError, Payload: ErrorPayload{Message: err.Error()}})
	}

	after := a.session.Phase()
	if before == session.PhaseRunning && after == session.PhasePaused {
		// Keys held at pause are not replayed on resume.
		a.intents = 0
	}

	a.storeState(a.session.State(), after)
	if after != before {
		a.publish(AppEvent{Type: AppEventPhaseChanged, Payload: after})
	}
	return false
}

func (a *App) eventForwarder(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event := <-a.sessionEventCh:
			switch event.Type {
			case session.EventScored:
				if p, ok := event.Payload.(session.ScoredPayload); ok {
					log.Printf("Point %s, score %s", p.Side, p.Score)
					a.publish(AppEvent{Type: AppEventScored, Payload: p})
				}
			default:
				log.Printf("Session %s", event.Type)
			}
		}
	}
}

func (a *App) storeState(state domain.State, phase session.Phase) {
	a.stateMu.Lock()
	a.state = state
	a.phase = phase
	a.stateMu.Unlock()
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("App event channel full, dropping event")
	}
}
