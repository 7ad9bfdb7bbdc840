package session

import "github.com/zkjon/pong/internal/domain"

type EventType int

const (
	EventStarted EventType = iota
	EventPaused
	EventResumed
	EventReset
	EventModeChanged
	EventDifficultyChanged
	EventScored
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	case EventModeChanged:
		return "mode changed"
	case EventDifficultyChanged:
		return "difficulty changed"
	case EventScored:
		return "scored"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Payload interface{}
}

type ScoredPayload struct {
	Side  domain.Side
	Score domain.Score
}
