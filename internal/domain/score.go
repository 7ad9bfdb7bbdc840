package domain

import "fmt"

type Score struct {
	Left  int
	Right int
}

func (s Score) Add(side Side) Score {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
	return s
}

func (s Score) IsZero() bool {
	return s.Left == 0 && s.Right == 0
}

func (s Score) String() string {
	return fmt.Sprintf("%02d:%02d", s.Left, s.Right)
}
