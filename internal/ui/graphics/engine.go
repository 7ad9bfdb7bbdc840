package graphics

import (
	"log"
	"sync"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 700
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	state      domain.State
	phase      session.Phase
	pendingErr string
	pendingMsg string

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine(initial domain.State) *Engine {
	e := &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		state:         initial,
		phase:         session.PhaseIdle,
		eventCh:       make(chan types.UIEvent, 100),
	}

	return e
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	settings types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenSettings] = settings
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	if updater, ok := screen.(FrameUpdater); ok {
		e.dataMu.RLock()
		updater.SetFrame(e.state, e.phase)
		e.dataMu.RUnlock()
	}

	e.deliverNotices(screen)

	event := screen.Update()
	if event.Type == types.UIEventQuit {
		e.handleEvent(event)
		return ebiten.Termination
	}

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(FrameUpdater); ok {
		e.dataMu.RLock()
		updater.SetFrame(e.state, e.phase)
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

// SetFrame is called from the app event goroutine.
func (e *Engine) SetFrame(state domain.State, phase session.Phase) {
	e.dataMu.Lock()
	e.state = state
	e.phase = phase
	e.dataMu.Unlock()
}

// SetError and SetMessage are delivered to the current screen on the next
// Update, which runs on the ebiten goroutine.
func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.pendingErr = err
	e.dataMu.Unlock()
}

func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.pendingMsg = msg
	e.dataMu.Unlock()
}

func (e *Engine) deliverNotices(screen types.Screen) {
	e.dataMu.Lock()
	errMsg, msg := e.pendingErr, e.pendingMsg
	e.pendingErr, e.pendingMsg = "", ""
	e.dataMu.Unlock()

	if s, ok := screen.(ErrorSetter); ok && errMsg != "" {
		s.SetError(errMsg)
	}
	if s, ok := screen.(MessageSetter); ok && msg != "" {
		s.SetMessage(msg)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowSettings:
		e.SetScreen(types.ScreenSettings)

	case types.UIEventShowGame:
		e.SetScreen(types.ScreenGame)

	case types.UIEventQuit:
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

type FrameUpdater interface {
	SetFrame(state domain.State, phase session.Phase)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
