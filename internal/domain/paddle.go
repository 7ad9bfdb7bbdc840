package domain

type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type Paddle struct {
	Pos    Vector2
	Width  float64
	Height float64
}

func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

func (p Paddle) InBounds(fieldHeight float64) bool {
	return p.Pos.Y >= 0 && p.Pos.Y <= fieldHeight-p.Height
}
