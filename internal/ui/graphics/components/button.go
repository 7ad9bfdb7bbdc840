package components

import (
	"image/color"

	"github.com/zkjon/pong/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Enabled       bool
	Selected      bool
	Accent        color.RGBA
	hovered       bool
	pressed       bool
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
		Accent:  types.ColorSelected,
	}
}

// NewActionButton is always drawn in its accent color, like START or RESET.
func NewActionButton(width, height int, buttonText string, accent color.RGBA) *Button {
	b := NewButton(0, 0, width, height, buttonText)
	b.Accent = accent
	b.Selected = true
	return b
}

func (b *Button) Update() bool {
	if !b.Enabled {
		b.hovered = false
		b.pressed = false
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = b.Contains(mx, my)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.Enabled:
		bgColor = types.Darken(types.ColorButton, 0.5)
	case b.pressed:
		bgColor = types.Darken(b.background(), 0.8)
	case b.hovered:
		bgColor = types.Lighten(b.background(), 1.2)
	default:
		bgColor = b.background()
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorButtonBorder, false)

	fonts := types.GetFonts()
	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)
}

func (b *Button) background() color.RGBA {
	if b.Selected {
		return b.Accent
	}
	return types.ColorButton
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
