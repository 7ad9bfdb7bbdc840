package domain

// State is a plain value: assigning it copies everything, so a frame never
// aliases the previous one.
type State struct {
	Ball    Ball
	Left    Paddle
	Right   Paddle
	Score   Score
	Config  FieldConfig
	Mode    GameMode
	AI      AIConfig
	Running bool
}

func NewGameState(config FieldConfig, mode GameMode, difficulty Difficulty) State {
	s := State{
		Config: config,
		Mode:   mode,
		AI:     AIConfigFor(difficulty),
	}
	return s.Reset()
}

// Reset restores the initial layout and keeps mode and difficulty. The
// initial serve is always down-right, so resetting twice equals resetting once.
func (s State) Reset() State {
	c := s.Config
	paddleY := c.Height/2 - c.PaddleHeight/2

	return State{
		Ball: Ball{
			Pos:  c.Center(),
			DX:   c.BallSpeed,
			DY:   c.BallSpeed,
			Size: c.BallSize,
		},
		Left: Paddle{
			Pos:    Vector2{X: 0, Y: paddleY},
			Width:  c.PaddleWidth,
			Height: c.PaddleHeight,
		},
		Right: Paddle{
			Pos:    Vector2{X: c.Width - c.PaddleWidth, Y: paddleY},
			Width:  c.PaddleWidth,
			Height: c.PaddleHeight,
		},
		Config:  c,
		Mode:    s.Mode,
		AI:      s.AI,
		Running: false,
	}
}

func (s State) Paddle(side Side) Paddle {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

func (s State) IsAIControlled(side Side) bool {
	return side == SideRight && s.Mode == ModeSinglePlayer
}
