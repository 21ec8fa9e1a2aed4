package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tile-duel/audio"
	"github.com/lixenwraith/tile-duel/config"
	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/core"
	"github.com/lixenwraith/tile-duel/engine"
	"github.com/lixenwraith/tile-duel/grid"
	"github.com/lixenwraith/tile-duel/input"
	"github.com/lixenwraith/tile-duel/render"
	"github.com/lixenwraith/tile-duel/terminal"
)

var errNotInteractive = errors.New("tile-duel needs an interactive terminal; use 'tile-duel board' for plain output")

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if !terminal.IsInteractive() {
		return errNotInteractive
	}

	colorMode, err := terminal.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	palette, err := themePalette(cfg)
	if err != nil {
		return err
	}

	logFile, logger := setupLogging(opts.debug, cfg.Log.Path, cfg.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}
	core.RegisterLogger(logger)

	// Must precede screen creation, tcell reads it in Init
	if err := terminal.ApplyColorMode(colorMode); err != nil {
		return fmt.Errorf("apply color mode: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterScreen(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	// Panics on the main goroutine restore the terminal like the poller's do
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sounds := audio.NewSoundManager(audioConfig(cfg), logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	logger.Info().
		Stringer("color_mode", colorMode).
		Float64("fill", cfg.Game.FillProbability).
		Int64("seed", cfg.Game.Seed).
		Msg("Starting tile-duel")

	gs := engine.NewGameState(
		engine.WithLogger(logger),
		engine.WithRand(grid.NewRand(cfg.Game.Seed)),
		engine.WithFirstPlayer(firstPlayer(cfg)),
	)
	renderer := render.NewRenderer(screen, palette, [constant.PlayerCount]string{cfg.Players.One, cfg.Players.Two})
	translator := input.NewTranslator(gs, logger)

	return runLoop(screen, gs, renderer, translator, sounds, cfg, logger)
}

// runLoop owns the screen and the game state; every core call happens here
func runLoop(screen tcell.Screen, gs *engine.GameState, renderer *render.Renderer,
	translator *input.Translator, sounds *audio.SoundManager, cfg *config.Config, logger zerolog.Logger) error {

	newGame := func() error {
		if err := gs.StartGame(cfg.Game.FillProbability, constant.GridSize); err != nil {
			return err
		}
		translator.Reset()
		return nil
	}
	if err := newGame(); err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, constant.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

			res := translator.Handle(ev)
			switch res.Action {
			case input.ActionQuit:
				logger.Info().Int("moves", gs.Moves()).Msg("Quit")
				return nil
			case input.ActionNewGame:
				if err := newGame(); err != nil {
					return err
				}
				dirty = true
			case input.ActionToggleMute:
				audible := sounds.ToggleMute()
				logger.Debug().Bool("audible", audible).Msg("Sound toggled")
			case input.ActionRedraw:
				dirty = true
			}

			if res.Released {
				playOutcome(sounds, res.Outcome)
			}

		case <-frameTicker.C:
			if !dirty {
				continue
			}
			translator.SetLayout(renderer.Draw(gs.Snapshot()))
			dirty = false
		}
	}
}

func playOutcome(sounds *audio.SoundManager, out engine.Outcome) {
	switch out {
	case engine.OutcomeEliminated:
		sounds.Play(audio.SoundEliminate)
	case engine.OutcomeGameOver:
		sounds.Play(audio.SoundGameOver)
	}
}

// themePalette resolves configured colors; text colors keep their defaults
func themePalette(cfg *config.Config) (render.Palette, error) {
	p := render.DefaultPalette()
	targets := []struct {
		dst *tcell.Color
		src string
	}{
		{&p.Tile, cfg.Theme.Tile},
		{&p.Hover, cfg.Theme.Hover},
		{&p.Selected, cfg.Theme.Selected},
		{&p.Invalid, cfg.Theme.Invalid},
		{&p.Background, cfg.Theme.Background},
	}
	for _, t := range targets {
		c, err := config.ParseColor(t.src)
		if err != nil {
			return p, err
		}
		*t.dst = c
	}
	return p, nil
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}
