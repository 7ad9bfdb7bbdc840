package types

import (
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/sim"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStart
	UIEventPause
	UIEventToggle
	UIEventReset
	UIEventSetMode
	UIEventSetDifficulty
	UIEventIntents
	UIEventQuit
	UIEventShowMenu
	UIEventShowSettings
	UIEventShowGame
)

type ModeData struct {
	Mode domain.GameMode
}

type DifficultyData struct {
	Difficulty domain.Difficulty
}

type IntentsData struct {
	Inputs sim.Inputs
}
