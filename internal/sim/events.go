package sim

import "strings"

// Events is the set of things that happened during one step.
type Events uint8

const (
	EventWall Events = 1 << iota
	EventHitLeft
	EventHitRight
	EventScoreLeft
	EventScoreRight
)

func (e Events) Has(ev Events) bool {
	return e&ev == ev
}

func (e Events) Any(ev Events) bool {
	return e&ev != 0
}

func (e Events) Scored() bool {
	return e.Any(EventScoreLeft | EventScoreRight)
}

func (e Events) PaddleHit() bool {
	return e.Any(EventHitLeft | EventHitRight)
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	names := []string{"wall", "hit-left", "hit-right", "score-left", "score-right"}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if e.Has(1 << i) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}
