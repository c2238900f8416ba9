// Package config reads runtime settings from the environment, optionally
// seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rovaughn/termsnake/score"
)

const (
	DefaultStep      = 100 * time.Millisecond
	MinStep          = 100 * time.Millisecond
	MaxStep          = 150 * time.Millisecond
	DefaultBoostHold = 700 * time.Millisecond
	DefaultEnvFile   = ".env"
	LogFileName      = "snake.log"
)

type Config struct {
	Step      time.Duration // base movement interval
	BoostHold time.Duration // boost stays on this long after the last repeat
	ScoreDir  string
	LogFile   string
	Seed      uint64 // 0 picks a seed from the clock
}

// Default returns the configuration used when nothing is set. Without a
// home directory the score directory is relative to the working directory.
func Default() Config {
	dir := score.DirName
	if store, err := score.Default(); err == nil {
		dir = store.Dir()
	}
	return Config{
		Step:      DefaultStep,
		BoostHold: DefaultBoostHold,
		ScoreDir:  dir,
		LogFile:   filepath.Join(dir, LogFileName),
	}
}

// Load merges envFile (if it exists) into the environment without
// overriding variables that are already set, then reads SNAKE_* variables
// on top of the defaults. Invalid variables are all reported in the
// returned error; the Config still holds defaults for them.
func Load(envFile string) (Config, error) {
	cfg := Default()

	var errs []error
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("load %s: %w", envFile, err))
		}
	}

	if v, ok := lookup("SNAKE_STEP"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_STEP: %w", err))
		} else {
			cfg.Step = clamp(d, MinStep, MaxStep)
		}
	}
	if v, ok := lookup("SNAKE_BOOST_HOLD"); ok {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("SNAKE_BOOST_HOLD: %w", err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("SNAKE_BOOST_HOLD: must be positive, got %s", d))
		default:
			cfg.BoostHold = d
		}
	}
	if v, ok := lookup("SNAKE_SCORE_DIR"); ok {
		cfg.ScoreDir = v
		cfg.LogFile = filepath.Join(v, LogFileName)
	}
	if v, ok := lookup("SNAKE_LOG"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			cfg.Seed = seed
		}
	}

	return cfg, errors.Join(errs...)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
