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
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/rovaughn/termsnake/config"
	"github.com/rovaughn/termsnake/game"
	"github.com/rovaughn/termsnake/score"
	"github.com/rovaughn/termsnake/termapp"
	"github.com/rovaughn/termsnake/ui"
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitPanic       = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func openLog(path string) (*log.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return log.New(f, "termsnake ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }
		}
	}
	return log.New(io.Discard, "", 0), func() {}
}

func run() (code int) {
	envDefault := config.DefaultEnvFile
	if v := os.Getenv("SNAKE_ENV"); v != "" {
		envDefault = v
	}
	envFile := flag.String("env", envDefault, "dotenv file with SNAKE_* settings")
	flag.Parse()

	cfg, cfgErr := config.Load(*envFile)
	logger, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	if cfgErr != nil {
		logger.Printf("config: %v", cfgErr)
	}

	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: open terminal: %v\n", err)
		return exitFatal
	}
	defer f.Close()

	var snap game.Snapshot

	t, err := termapp.NewTerminal(f, func(width, height int) *termapp.Screen {
		screen := termapp.NewScreen(width, height)
		ui.Draw(screen, snap)
		return screen
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		logger.Printf("terminal setup: %v", err)
		return exitFatal
	}
	defer func() {
		if err := t.Close(); err != nil {
			logger.Printf("close terminal: %v", err)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			t.Close()
			logger.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "termsnake: %v\n", r)
			code = exitPanic
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	events := make(chan game.Command, 16)
	go func() {
		defer close(events)
		for key := range t.KeyCh {
			cmd, ok := keyCommand(key)
			if !ok {
				continue
			}
			select {
			case events <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	box := new(game.Mailbox)
	go game.Capture(ctx, events, box, cfg.BoostHold)

	settings := game.DefaultSettings()
	settings.Step = cfg.Step
	ctrl := game.NewController(settings, score.New(cfg.ScoreDir), game.NewSpawner(cfg.Seed, game.MaxFood), logger)

	ticker := time.NewTicker(game.FrameInterval)
	defer ticker.Stop()

	err = ctrl.Run(ctx, box, ticker.C, func(s game.Snapshot) error {
		select {
		case err := <-t.ErrCh:
			return fmt.Errorf("read keys: %w", err)
		case <-winch:
			if err := t.Resize(); err != nil {
				return err
			}
		default:
		}
		snap = s
		return t.Redraw()
	})

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, game.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Printf("interrupted")
		return exitInterrupted
	default:
		t.Close()
		logger.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return exitFatal
	}
}
