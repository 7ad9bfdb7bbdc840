package screens

import (
	"fmt"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/sim"
	"github.com/zkjon/pong/internal/ui/graphics/components"
	"github.com/zkjon/pong/internal/ui/graphics/input"
	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	btnStart *components.Button
	btnPause *components.Button
	btnReset *components.Button

	state domain.State
	phase session.Phase

	lastIntents sim.Inputs
	intentsSent bool
	leaving     bool

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(0, 0, 400, 60),
		keyboard:      input.NewKeyboardHandler(),
		btnStart:      components.NewActionButton(120, 40, "START", types.ColorStart),
		btnPause:      components.NewActionButton(120, 40, "PAUSE", types.ColorPause),
		btnReset:      components.NewActionButton(120, 40, "RESET", types.ColorReset),
	}
}

func (s *GameScreen) SetFrame(state domain.State, phase session.Phase) {
	s.state = state
	s.phase = phase
}

func (s *GameScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	s.layout(w, h)

	if s.leaving {
		s.leaving = false
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if input.IsEscapePressed() {
		if s.phase == session.PhaseRunning {
			s.leaving = true
			return types.UIEvent{Type: types.UIEventPause}
		}
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	running := s.phase == session.PhaseRunning
	s.btnStart.Enabled = !running
	s.btnPause.Enabled = running
	s.btnStart.Text = "START"
	if !s.state.Score.IsZero() || s.phase == session.PhasePaused {
		s.btnStart.Text = "RESUME"
	}

	if s.btnStart.Update() {
		return types.UIEvent{Type: types.UIEventStart}
	}
	if s.btnPause.Update() {
		return types.UIEvent{Type: types.UIEventPause}
	}
	if s.btnReset.Update() || input.IsResetPressed() {
		return types.UIEvent{Type: types.UIEventReset}
	}
	if input.IsSpacePressed() {
		return types.UIEvent{Type: types.UIEventToggle}
	}

	intents := s.keyboard.Update()
	if !s.intentsSent || intents != s.lastIntents {
		s.lastIntents = intents
		s.intentsSent = true
		return types.UIEvent{
			Type:    types.UIEventIntents,
			Payload: types.IntentsData{Inputs: intents},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) layout(w, h int) {
	s.fieldRenderer.CalculateLayout(w, h, s.state.Config)

	s.scoreboard.X = w/2 - s.scoreboard.Width/2
	s.scoreboard.Y = 25

	y := s.fieldRenderer.Bottom(s.state.Config) + 20
	s.btnStart.SetPosition(w/2-200, y)
	s.btnPause.SetPosition(w/2-60, y)
	s.btnReset.SetPosition(w/2+80, y)
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	s.layout(w, h)

	s.scoreboard.Draw(screen, s.state.Score, s.state.Mode)

	s.fieldRenderer.DrawField(screen, s.state.Config)
	s.fieldRenderer.DrawPaddle(screen, s.state.Left)
	s.fieldRenderer.DrawPaddle(screen, s.state.Right)
	s.fieldRenderer.DrawBall(screen, s.state.Ball)

	s.btnStart.Draw(screen)
	s.btnPause.Draw(screen)
	s.btnReset.Draw(screen)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	status := fmt.Sprintf("[%s]", s.phase)
	text.Draw(screen, status, fonts.Normal, 20, 30, types.ColorTextHighlight)

	if s.state.Mode == domain.ModeSinglePlayer {
		info := fmt.Sprintf("AI: %s", s.state.AI.Level)
		bounds := text.BoundString(fonts.Normal, info)
		text.Draw(screen, info, fonts.Normal, w-bounds.Dx()-20, 30, types.GetDifficultyColor(int(s.state.AI.Level)))
	}
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "Player 1: W/S  |  Player 2: Up/Down  |  SPACE start/pause  |  R reset  |  ESC menu"
	if s.state.Mode == domain.ModeSinglePlayer {
		hint = "Player: W/S  |  SPACE start/pause  |  R reset  |  ESC menu"
	}
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-35, types.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-20, h-35, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
	s.intentsSent = false
	s.leaving = false
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
}
