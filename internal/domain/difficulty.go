package domain

import "strings"

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "medium"
}

// ParseDifficulty never fails: anything unrecognized is medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	}
	return DifficultyMedium
}

type AIConfig struct {
	ReactionSpeed float64
	Accuracy      float64
	Level         Difficulty
}

func AIConfigFor(d Difficulty) AIConfig {
	switch d {
	case DifficultyEasy:
		return AIConfig{ReactionSpeed: 0.60, Accuracy: 0.70, Level: DifficultyEasy}
	case DifficultyHard:
		return AIConfig{ReactionSpeed: 0.95, Accuracy: 0.95, Level: DifficultyHard}
	}
	return AIConfig{ReactionSpeed: 0.80, Accuracy: 0.85, Level: DifficultyMedium}
}
