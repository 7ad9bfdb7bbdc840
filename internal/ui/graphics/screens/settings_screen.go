package screens

import (
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/ui/graphics/components"
	"github.com/zkjon/pong/internal/ui/graphics/input"
	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// SettingsScreen selects the game mode and, in single player, the AI
// difficulty. Both are locked while a game is running.
type SettingsScreen struct {
	ctx types.ScreenContext

	btnTwoPlayer    *components.Button
	btnSinglePlayer *components.Button
	btnDifficulty   []*components.Button
	btnBack         *components.Button

	mode       domain.GameMode
	difficulty domain.Difficulty
	locked     bool

	errorMsg string
}

func NewSettingsScreen(ctx types.ScreenContext) *SettingsScreen {
	s := &SettingsScreen{
		ctx:             ctx,
		btnTwoPlayer:    components.NewButton(0, 0, 200, 40, "Two Player"),
		btnSinglePlayer: components.NewButton(0, 0, 200, 40, "Single Player (vs AI)"),
		btnBack:         components.NewButton(0, 0, 140, 45, "Back"),
	}

	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		b := components.NewButton(0, 0, 120, 32, difficultyLabel(d))
		b.Accent = types.GetDifficultyColor(int(d))
		s.btnDifficulty = append(s.btnDifficulty, b)
	}

	return s
}

func (s *SettingsScreen) SetFrame(state domain.State, phase session.Phase) {
	s.mode = state.Mode
	s.difficulty = state.AI.Level
	s.locked = phase == session.PhaseRunning
}

func (s *SettingsScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 140

	s.btnTwoPlayer.SetPosition(centerX-210, startY)
	s.btnSinglePlayer.SetPosition(centerX+10, startY)
	for i, b := range s.btnDifficulty {
		b.SetPosition(centerX-190+i*130, startY+90)
	}
	s.btnBack.SetPosition(centerX-70, startY+180)

	s.btnTwoPlayer.Selected = s.mode == domain.ModeTwoPlayer
	s.btnSinglePlayer.Selected = s.mode == domain.ModeSinglePlayer
	s.btnTwoPlayer.Enabled = !s.locked
	s.btnSinglePlayer.Enabled = !s.locked

	if s.btnTwoPlayer.Update() {
		return types.UIEvent{Type: types.UIEventSetMode, Payload: types.ModeData{Mode: domain.ModeTwoPlayer}}
	}
	if s.btnSinglePlayer.Update() {
		return types.UIEvent{Type: types.UIEventSetMode, Payload: types.ModeData{Mode: domain.ModeSinglePlayer}}
	}

	if s.mode == domain.ModeSinglePlayer {
		for i, b := range s.btnDifficulty {
			d := domain.Difficulty(i)
			b.Selected = s.difficulty == d
			b.Enabled = !s.locked
			if b.Update() {
				return types.UIEvent{Type: types.UIEventSetDifficulty, Payload: types.DifficultyData{Difficulty: d}}
			}
		}
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := 140

	title := "MODE & DIFFICULTY"
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	text.Draw(screen, "Game Mode:", fonts.Normal, centerX-210, startY-15, types.ColorText)
	s.btnTwoPlayer.Draw(screen)
	s.btnSinglePlayer.Draw(screen)

	if s.mode == domain.ModeSinglePlayer {
		text.Draw(screen, "AI Difficulty:", fonts.Normal, centerX-190, startY+75, types.ColorText)
		for _, b := range s.btnDifficulty {
			b.Draw(screen)
		}
	}

	s.btnBack.Draw(screen)

	if s.locked {
		msg := "Pause the game to change settings"
		bounds := text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, startY+260, types.ColorTextDim)
	}
	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, startY+290, types.ColorError)
	}

	hint := "ESC to go back"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *SettingsScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *SettingsScreen) OnExit() {}

func (s *SettingsScreen) SetError(err string) {
	s.errorMsg = err
}

func difficultyLabel(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return "Easy"
	case domain.DifficultyHard:
		return "Hard"
	}
	return "Medium"
}
