package sim

import "strings"

// Inputs is the set of directional intents held during one frame.
type Inputs uint8

const (
	LeftUp Inputs = 1 << iota
	LeftDown
	RightUp
	RightDown
)

func (in Inputs) Has(i Inputs) bool {
	return in&i == i
}

func (in Inputs) With(i Inputs) Inputs {
	return in | i
}

func (in Inputs) Without(i Inputs) Inputs {
	return in &^ i
}

func (in Inputs) String() string {
	if in == 0 {
		return "none"
	}
	names := []string{"left-up", "left-down", "right-up", "right-down"}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if in.Has(1 << i) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}
