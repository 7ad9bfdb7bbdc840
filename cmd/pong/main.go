package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zkjon/pong/internal/app"
	"github.com/zkjon/pong/internal/audio"
	"github.com/zkjon/pong/internal/config"
	"github.com/zkjon/pong/internal/domain"
	"github.com/zkjon/pong/internal/session"
	"github.com/zkjon/pong/internal/ui/graphics"
	"github.com/zkjon/pong/internal/ui/graphics/screens"
	"github.com/zkjon/pong/internal/ui/terminal"
	"github.com/zkjon/pong/internal/ui/types"
)

type options struct {
	configPath string
	mode       string
	difficulty string
	tui        bool
	headless   bool
	frames     int
	seed       int64
	mute       bool
}

// renderer is what the app event loop feeds, window or terminal.
type renderer interface {
	SetFrame(state domain.State, phase session.Phase)
	SetError(err string)
	SetMessage(msg string)
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a .toml or .yaml config file")
	flag.StringVar(&opts.mode, "mode", "", "game mode: two or single")
	flag.StringVar(&opts.difficulty, "difficulty", "", "AI difficulty: easy, medium or hard")
	flag.BoolVar(&opts.tui, "tui", false, "play in the terminal")
	flag.BoolVar(&opts.headless, "headless", false, "run without a shell and check invariants")
	flag.IntVar(&opts.frames, "frames", 100000, "frames to run in headless mode")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound")
	flag.Parse()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Host.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	appCfg := app.Config{
		Field:      cfg.FieldConfig(),
		Mode:       cfg.Mode(),
		Difficulty: cfg.Difficulty(),
		Random:     domain.NewRandom(seed),
		TickRate:   cfg.Host.TickRate,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.headless {
		os.Exit(runHeadless(ctx, appCfg, opts.frames, seed))
	}

	application, err := app.NewApp(appCfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if opts.tui {
		// The terminal owns stdout and stderr while the shell runs.
		log.SetOutput(io.Discard)
	}

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	player := audio.NewPlayer(cfg.Host.Audio && !opts.mute)
	defer player.Close()

	if opts.tui {
		err = runTerminal(ctx, application, player)
	} else {
		err = runWindow(ctx, application, player)
	}
	application.Stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("UI error: %v", err)
	}
}

func loadConfig(opts options) (config.File, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if opts.mode != "" {
		if _, ok := domain.ParseGameMode(opts.mode); !ok {
			return cfg, fmt.Errorf("%w: unknown game mode %q", config.ErrInvalidConfig, opts.mode)
		}
		cfg.Game.Mode = opts.mode
	}
	if opts.difficulty != "" {
		cfg.Game.Difficulty = opts.difficulty
	}
	if opts.seed != 0 {
		cfg.Host.Seed = opts.seed
	}
	return cfg, cfg.Validate()
}

func runHeadless(ctx context.Context, cfg app.Config, frames int, seed int64) int {
	started := time.Now()
	res, err := app.Soak(ctx, cfg, frames)
	if err != nil {
		log.Printf("Headless run failed after %d frames: %v", res.Frames, err)
		return 1
	}

	log.Printf("Headless run finished in %v", time.Since(started))
	fmt.Printf("seed=%d frames=%d score=%s paddle_hits=%d wall_hits=%d checksum=%s\n",
		seed, res.Frames, res.Score, res.PaddleHits, res.WallHits, res.Checksum)
	return 0
}

func runWindow(ctx context.Context, application *app.App, player *audio.Player) error {
	engine := graphics.NewEngine(application.GetState())

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewSettingsScreen(engine),
		screens.NewGameScreen(engine),
	)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		application.Stop()
		player.Close()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine, player)
	go handleUIEvents(application, engine)

	return engine.Run()
}

func runTerminal(ctx context.Context, application *app.App, player *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	shell := terminal.NewShell(screen, application.Input(), application.GetState(), terminal.DefaultHoldWindow)
	go handleAppEvents(application, shell, player)

	return shell.Run(ctx)
}

func handleAppEvents(application *app.App, r renderer, player *audio.Player) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventFrame:
			if frame, ok := event.Payload.(app.Frame); ok {
				r.SetFrame(frame.State, frame.Phase)
				player.Play(frame.Events)
			}

		case app.AppEventPhaseChanged:
			r.SetFrame(application.GetState(), application.GetPhase())

		case app.AppEventScored:
			if p, ok := event.Payload.(session.ScoredPayload); ok {
				r.SetMessage(fmt.Sprintf("Point %s  %s", p.Side, p.Score))
			}

		case app.AppEventError:
			if p, ok := event.Payload.(app.ErrorPayload); ok {
				r.SetError(p.Message)
			}

		case app.AppEventQuit:
			return
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		var input app.InputEvent

		switch event.Type {
		case types.UIEventStart:
			input = app.InputEvent{Type: app.InputStart}

		case types.UIEventPause:
			input = app.InputEvent{Type: app.InputPause}

		case types.UIEventToggle:
			input = app.InputEvent{Type: app.InputToggle}

		case types.UIEventReset:
			input = app.InputEvent{Type: app.InputReset}

		case types.UIEventSetMode:
			data := event.Payload.(types.ModeData)
			input = app.InputEvent{Type: app.InputSetMode, Payload: data.Mode}

		case types.UIEventSetDifficulty:
			data := event.Payload.(types.DifficultyData)
			input = app.InputEvent{Type: app.InputSetDifficulty, Payload: data.Difficulty}

		case types.UIEventIntents:
			data := event.Payload.(types.IntentsData)
			input = app.InputEvent{Type: app.InputIntents, Payload: data.Inputs}

		case types.UIEventQuit:
			input = app.InputEvent{Type: app.InputQuit}

		default:
			continue
		}

		select {
		case application.Input() <- input:
		default:
			log.Printf("Main: input channel full, dropping %d", event.Type)
		}

		if input.Type == app.InputQuit {
			return
		}
	}
}
