package domain

type Ball struct {
	Pos  Vector2
	DX   float64
	DY   float64
	Size float64
}

func (b Ball) Center() Vector2 {
	return Vector2{X: b.Pos.X + b.Size/2, Y: b.Pos.Y + b.Size/2}
}

func (b Ball) Integrate() Ball {
	b.Pos = b.Pos.Add(Vector2{X: b.DX, Y: b.DY})
	return b
}
