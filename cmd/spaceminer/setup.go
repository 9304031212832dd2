package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-miner/internal/app"
	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
	"github.com/vovakirdan/space-miner/internal/storage"
)

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to the --log file, or discarding
// everything when no file is given. The frontends own the terminal and the
// window, so logs never go to stdout.
func newLogger() (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceminer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// gameSession holds everything a frontend needs to run the game.
type gameSession struct {
	cfg     config.Config
	app     *app.App
	store   *storage.Store
	log     *log.Logger
	logFile io.Closer
}

// newGameSession wires config, logging, run history and the app together.
func newGameSession() (*gameSession, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logFile.Close()
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "difficulty", flagDifficulty, "fps", flagFPS)

	stats := session.New(cfg.Defaults)
	a := app.New(cfg, stats,
		app.WithRand(rand.New(rand.NewSource(seed))),
		app.WithLogger(logger),
		app.WithHistory(store),
	)

	return &gameSession{cfg: cfg, app: a, store: store, log: logger, logFile: logFile}, nil
}

// logical returns the play area size.
func (s *gameSession) logical() core.Size {
	return core.Size{W: s.cfg.Screen.Width, H: s.cfg.Screen.Height}
}

// Close releases the run history and the log file.
func (s *gameSession) Close() {
	if n, err := s.store.RunCount(); err == nil {
		s.log.Info("session finished", "runs", n)
	}
	s.store.Close()
	s.logFile.Close()
}
