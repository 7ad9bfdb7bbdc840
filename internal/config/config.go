// Package config loads session settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zkjon/pong/internal/domain"
)

var ErrInvalidConfig = errors.New("invalid config")

type File struct {
	Field Field `toml:"field" yaml:"field"`
	Game  Game  `toml:"game" yaml:"game"`
	Host  Host  `toml:"host" yaml:"host"`
}

type Field struct {
	Width         float64 `toml:"width" yaml:"width"`
	Height        float64 `toml:"height" yaml:"height"`
	PaddleWidth   float64 `toml:"paddle_width" yaml:"paddle_width"`
	PaddleHeight  float64 `toml:"paddle_height" yaml:"paddle_height"`
	BallSize      float64 `toml:"ball_size" yaml:"ball_size"`
	PaddleSpeed   float64 `toml:"paddle_speed" yaml:"paddle_speed"`
	BallSpeed     float64 `toml:"ball_speed" yaml:"ball_speed"`
	MaxBallSpeedY float64 `toml:"max_ball_speed_y" yaml:"max_ball_speed_y"`
}

type Game struct {
	Mode       string `toml:"mode" yaml:"mode"`
	Difficulty string `toml:"difficulty" yaml:"difficulty"`
}

type Host struct {
	TickRate int   `toml:"tick_rate" yaml:"tick_rate"`
	Audio    bool  `toml:"audio" yaml:"audio"`
	Seed     int64 `toml:"seed" yaml:"seed"`
}

func Default() File {
	f := domain.DefaultFieldConfig()
	return File{
		Field: Field{
			Width:         f.Width,
			Height:        f.Height,
			PaddleWidth:   f.PaddleWidth,
			PaddleHeight:  f.PaddleHeight,
			BallSize:      f.BallSize,
			PaddleSpeed:   f.PaddleSpeed,
			BallSpeed:     f.BallSpeed,
			MaxBallSpeedY: f.MaxBallSpeedY,
		},
		Game: Game{
			Mode:       domain.ModeTwoPlayer.String(),
			Difficulty: domain.DifficultyMedium.String(),
		},
		Host: Host{
			TickRate: 60,
			Audio:    true,
		},
	}
}

// Load reads a config file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f File) Validate() error {
	if err := f.FieldConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, ok := domain.ParseGameMode(f.Game.Mode); !ok {
		return fmt.Errorf("%w: unknown game mode %q", ErrInvalidConfig, f.Game.Mode)
	}
	if f.Host.TickRate <= 0 || f.Host.TickRate > 1000 {
		return fmt.Errorf("%w: tick rate must be 1-1000, got %d", ErrInvalidConfig, f.Host.TickRate)
	}
	return nil
}

func (f File) FieldConfig() domain.FieldConfig {
	return domain.FieldConfig{
		Width:         f.Field.Width,
		Height:        f.Field.Height,
		PaddleWidth:   f.Field.PaddleWidth,
		PaddleHeight:  f.Field.PaddleHeight,
		BallSize:      f.Field.BallSize,
		PaddleSpeed:   f.Field.PaddleSpeed,
		BallSpeed:     f.Field.BallSpeed,
		MaxBallSpeedY: f.Field.MaxBallSpeedY,
	}
}

func (f File) Mode() domain.GameMode {
	mode, _ := domain.ParseGameMode(f.Game.Mode)
	return mode
}

func (f File) Difficulty() domain.Difficulty {
	return domain.ParseDifficulty(f.Game.Difficulty)
}
