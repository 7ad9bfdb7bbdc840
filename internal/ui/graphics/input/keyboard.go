package input

import (
	"github.com/zkjon/pong/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key    ebiten.Key
	intent sim.Inputs
}

var bindings = []binding{
	{ebiten.KeyW, sim.LeftUp},
	{ebiten.KeyS, sim.LeftDown},
	{ebiten.KeyArrowUp, sim.RightUp},
	{ebiten.KeyArrowDown, sim.RightDown},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update samples which directional keys are held right now.
func (kh *KeyboardHandler) Update() sim.Inputs {
	var in sim.Inputs
	for _, b := range bindings {
		if ebiten.IsKeyPressed(b.key) {
			in = in.With(b.intent)
		}
	}
	return in
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsSpacePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func IsResetPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
