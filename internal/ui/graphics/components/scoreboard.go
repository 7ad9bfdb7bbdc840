package components

import (
	"fmt"
	"image/color"

	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func Labels(mode domain.GameMode) (string, string) {
	if mode == domain.ModeSinglePlayer {
		return "PLAYER", "AI"
	}
	return "PLAYER 1", "PLAYER 2"
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, score domain.Score, mode domain.GameMode) {
	leftLabel, rightLabel := Labels(mode)
	rightColor := types.ColorPlayer
	if mode == domain.ModeSinglePlayer {
		rightColor = types.ColorAI
	}

	boxWidth := (sb.Width - 60) / 2
	sb.drawBox(screen, sb.X, leftLabel, score.Left, boxWidth, types.ColorPlayer)
	sb.drawBox(screen, sb.X+boxWidth+60, rightLabel, score.Right, boxWidth, rightColor)

	fonts := types.GetFonts()
	vs := "VS"
	bounds := text.BoundString(fonts.Normal, vs)
	text.Draw(screen, vs, fonts.Normal, sb.X+sb.Width/2-bounds.Dx()/2, sb.Y+sb.Height/2+4, types.ColorPlayer)
}

func (sb *Scoreboard) drawBox(screen *ebiten.Image, x int, label string, value, width int, accent color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x), float32(sb.Y),
		float32(width), float32(sb.Height),
		types.Darken(accent, 0.15), false)

	vector.StrokeRect(screen,
		float32(x), float32(sb.Y),
		float32(width), float32(sb.Height),
		2, accent, false)

	fonts := types.GetFonts()

	bounds := text.BoundString(fonts.Small, label)
	text.Draw(screen, label, fonts.Small, x+(width-bounds.Dx())/2, sb.Y+18, accent)

	digits := fmt.Sprintf("%02d", value)
	bounds = text.BoundString(fonts.Normal, digits)
	text.Draw(screen, digits, fonts.Normal, x+(width-bounds.Dx())/2, sb.Y+sb.Height-12, types.ColorText)
}
