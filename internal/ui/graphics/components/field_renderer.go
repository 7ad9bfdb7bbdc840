package components

import (
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dashLength = 5
	dashGap    = 15
)

// FieldRenderer maps field coordinates onto the window, keeping the aspect
// ratio of the field.
type FieldRenderer struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		Scale:   1,
		OffsetX: 20,
		OffsetY: 100,
	}
}

func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, cfg domain.FieldConfig) {
	availableWidth := float32(screenWidth - 40)
	availableHeight := float32(screenHeight - 200)

	scaleW := availableWidth / float32(cfg.Width)
	scaleH := availableHeight / float32(cfg.Height)

	fr.Scale = scaleW
	if scaleH < scaleW {
		fr.Scale = scaleH
	}
	if fr.Scale < 0.25 {
		fr.Scale = 0.25
	}

	fieldWidth := fr.Scale * float32(cfg.Width)
	fr.OffsetX = (float32(screenWidth) - fieldWidth) / 2
	fr.OffsetY = 100
}

func (fr *FieldRenderer) Bottom(cfg domain.FieldConfig) int {
	return int(fr.OffsetY + fr.Scale*float32(cfg.Height))
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, cfg domain.FieldConfig) {
	w := fr.Scale * float32(cfg.Width)
	h := fr.Scale * float32(cfg.Height)

	vector.DrawFilledRect(screen, fr.OffsetX, fr.OffsetY, w, h, types.ColorFieldBg, false)
	vector.StrokeRect(screen, fr.OffsetX, fr.OffsetY, w, h, 2, types.ColorFieldBorder, false)

	centerX := fr.OffsetX + w/2
	for y := float32(0); y < h; y += (dashLength + dashGap) * fr.Scale {
		end := y + dashLength*fr.Scale
		if end > h {
			end = h
		}
		vector.StrokeLine(screen,
			centerX, fr.OffsetY+y,
			centerX, fr.OffsetY+end,
			1, types.ColorDivider, false)
	}
}

func (fr *FieldRenderer) DrawPaddle(screen *ebiten.Image, paddle domain.Paddle) {
	x, y := fr.project(paddle.Pos)
	vector.DrawFilledRect(screen, x, y,
		fr.Scale*float32(paddle.Width), fr.Scale*float32(paddle.Height),
		types.ColorPiece, false)
}

func (fr *FieldRenderer) DrawBall(screen *ebiten.Image, ball domain.Ball) {
	x, y := fr.project(ball.Pos)
	size := fr.Scale * float32(ball.Size)
	vector.DrawFilledRect(screen, x, y, size, size, types.ColorPiece, false)
}

func (fr *FieldRenderer) project(p domain.Vector2) (float32, float32) {
	return fr.OffsetX + fr.Scale*float32(p.X), fr.OffsetY + fr.Scale*float32(p.Y)
}
