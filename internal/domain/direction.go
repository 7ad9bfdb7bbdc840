package domain

type Direction int32

const (
	DirectionUp   Direction = 1
	DirectionDown Direction = 2
)

// Sign is the change in Y for one unit of movement; y grows downward.
func (d Direction) Sign() float64 {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "none"
}
