// Package terminal draws the match with tcell for playing over SSH or in a
// plain console. It speaks to the host loop the same way the window does.
package terminal

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zkjon/pong/internal/app"
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/sim"
)

const frameInterval = 16 * time.Millisecond

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDivider = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	stylePiece   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleScore   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

var keyIntents = map[rune]sim.Inputs{
	'w': sim.LeftUp,
	'W': sim.LeftUp,
	's': sim.LeftDown,
	'S': sim.LeftDown,
}

type Shell struct {
	screen tcell.Screen
	input  chan<- app.InputEvent

	holds       *holdTracker
	sent        sim.Inputs
	intentsSent bool

	dataMu  sync.RWMutex
	state   domain.State
	phase   session.Phase
	errMsg  string
	message string
}

func NewShell(screen tcell.Screen, input chan<- app.InputEvent, initial domain.State, holdWindow time.Duration) *Shell {
	return &Shell{
		screen: screen,
		input:  input,
		holds:  newHoldTracker(holdWindow),
		state:  initial,
		phase:  session.PhaseIdle,
	}
}

// SetFrame is called from the app event goroutine.
func (s *Shell) SetFrame(state domain.State, phase session.Phase) {
	s.dataMu.Lock()
	s.state = state
	s.phase = phase
	s.dataMu.Unlock()
}

func (s *Shell) SetError(err string) {
	s.dataMu.Lock()
	s.errMsg = err
	s.message = ""
	s.dataMu.Unlock()
}

func (s *Shell) SetMessage(msg string) {
	s.dataMu.Lock()
	s.message = msg
	s.errMsg = ""
	s.dataMu.Unlock()
}

// Run draws and reads keys until the player quits or ctx ends. It does not
// finalize the screen.
func (s *Shell) Run(ctx context.Context) error {
	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventCh:
			if quit := s.handleEvent(ev, time.Now()); quit {
				s.send(app.InputEvent{Type: app.InputQuit})
				return nil
			}

		case now := <-ticker.C:
			s.flushIntents(now)
			s.draw()
		}
	}
}

func (s *Shell) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev, now)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *Shell) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.holds.press(sim.RightUp, now)
		return false
	case tcell.KeyDown:
		s.holds.press(sim.RightDown, now)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	if intent, ok := keyIntents[r]; ok {
		s.holds.press(intent, now)
		return false
	}

	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		s.send(app.InputEvent{Type: app.InputToggle})
	case 'r', 'R':
		s.holds.clear()
		s.send(app.InputEvent{Type: app.InputReset})
	case 'm', 'M':
		mode := domain.ModeSinglePlayer
		if s.snapshot().Mode == domain.ModeSinglePlayer {
			mode = domain.ModeTwoPlayer
		}
		s.send(app.InputEvent{Type: app.InputSetMode, Payload: mode})
	case '1':
		s.send(app.InputEvent{Type: app.InputSetDifficulty, Payload: domain.DifficultyEasy})
	case '2':
		s.send(app.InputEvent{Type: app.InputSetDifficulty, Payload: domain.DifficultyMedium})
	case '3':
		s.send(app.InputEvent{Type: app.InputSetDifficulty, Payload: domain.DifficultyHard})
	}
	return false
}

func (s *Shell) flushIntents(now time.Time) {
	in := s.holds.held(now)
	if s.intentsSent && in == s.sent {
		return
	}
	s.sent = in
	s.intentsSent = true
	s.send(app.InputEvent{Type: app.InputIntents, Payload: in})
}

func (s *Shell) send(ev app.InputEvent) {
	select {
	case s.input <- ev:
	default:
		log.Println("Input channel full, dropping key")
	}
}

func (s *Shell) snapshot() domain.State {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.state
}

func (s *Shell) draw() {
	s.dataMu.RLock()
	state, phase := s.state, s.phase
	errMsg, message := s.errMsg, s.message
	s.dataMu.RUnlock()

	s.screen.Clear()
	w, h := s.screen.Size()

	left, right := "PLAYER 1", "PLAYER 2"
	if state.Mode == domain.ModeSinglePlayer {
		left, right = "PLAYER", fmt.Sprintf("AI (%s)", state.AI.Level)
	}
	header := fmt.Sprintf("%s %02d : %02d %s", left, state.Score.Left, state.Score.Right, right)
	s.drawText((w-len(header))/2, 0, header, styleScore)
	s.drawText(1, 0, fmt.Sprintf("[%s]", phase), styleHint)

	// Field sits inside a one cell border between the header and two footer rows.
	if w < 4 || h < 6 {
		s.screen.Show()
		return
	}
	g := newGrid(1, 2, w-2, h-5, state.Config)
	s.drawBorder(g)
	s.drawDivider(g)
	s.drawPaddle(g, state.Left)
	s.drawPaddle(g, state.Right)

	bx, by := g.cell(state.Ball.Center())
	s.screen.SetContent(bx, by, '●', nil, stylePiece)

	hint := "W/S left  Up/Down right  SPACE start/pause  R reset  M mode  1-3 difficulty  Q quit"
	if state.Mode == domain.ModeSinglePlayer {
		hint = "W/S paddle  SPACE start/pause  R reset  M mode  1-3 difficulty  Q quit"
	}
	s.drawText(1, h-2, hint, styleHint)
	if errMsg != "" {
		s.drawText(1, h-1, errMsg, styleError)
	} else if message != "" {
		s.drawText(1, h-1, message, styleMessage)
	}

	s.screen.Show()
}

func (s *Shell) drawBorder(g grid) {
	x0, y0 := g.left-1, g.top-1
	x1, y1 := g.left+g.cols, g.top+g.rows
	for x := x0 + 1; x < x1; x++ {
		s.screen.SetContent(x, y0, tcell.RuneHLine, nil, styleBorder)
		s.screen.SetContent(x, y1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y0 + 1; y < y1; y++ {
		s.screen.SetContent(x0, y, tcell.RuneVLine, nil, styleBorder)
		s.screen.SetContent(x1, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, styleBorder)
	s.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, styleBorder)
	s.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, styleBorder)
	s.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, styleBorder)
}

func (s *Shell) drawDivider(g grid) {
	x := g.left + g.cols/2
	for y := g.top; y < g.top+g.rows; y += 2 {
		s.screen.SetContent(x, y, '┊', nil, styleDivider)
	}
}

func (s *Shell) drawPaddle(g grid, p domain.Paddle) {
	x, _ := g.cell(p.Pos)
	first, last := g.span(p.Pos.Y, p.Height)
	for y := first; y <= last; y++ {
		s.screen.SetContent(x, y, '█', nil, stylePiece)
	}
}

func (s *Shell) drawText(x, y int, str string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
