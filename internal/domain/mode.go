package domain

import "strings"

type GameMode int

const (
	ModeTwoPlayer GameMode = iota
	ModeSinglePlayer
)

func (m GameMode) String() string {
	if m == ModeSinglePlayer {
		return "singlePlayer"
	}
	return "twoPlayer"
}

// ParseGameMode accepts "single", "singlePlayer", "1p" and their two-player counterparts.
func ParseGameMode(s string) (GameMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "singleplayer", "single-player", "1p", "ai":
		return ModeSinglePlayer, true
	case "two", "twoplayer", "two-player", "2p":
		return ModeTwoPlayer, true
	}
	return ModeTwoPlayer, false
}
