package game

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

type MenuItem uint8

const (
	MenuPlay MenuItem = iota
	MenuExit
	menuItems
)

func (m MenuItem) String() string {
	if m == MenuExit {
		return "Exit"
	}
	return "Play"
}

// ErrInterrupted is returned by Run when the player forced the game to stop.
var ErrInterrupted = errors.New("interrupted")

// ScoreStore persists the high score between runs.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

type Settings struct {
	Width, Height int
	Step          time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Width:  BoardWidth,
		Height: BoardHeight,
		Step:   100 * time.Millisecond,
	}
}

// Controller runs the menu, playing and end-of-round states. All methods
// are meant to be called from a single goroutine; input from other
// goroutines arrives through a Mailbox.
type Controller struct {
	settings Settings
	store    ScoreStore
	spawner  *Spawner
	clock    *Clock
	log      *log.Logger

	state       State
	menu        MenuItem
	board       *Board
	pending     Direction
	cause       Cause
	high        int
	newRecord   bool
	final       Snapshot
	done        bool
	interrupted bool
	session     string
	started     time.Time
}

// NewController loads the high score once. A store that fails to load is
// treated as holding no score.
func NewController(settings Settings, store ScoreStore, spawner *Spawner, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		settings: settings,
		store:    store,
		spawner:  spawner,
		clock:    NewClock(settings.Step),
		log:      logger,
	}
	high, err := store.Load()
	if err != nil {
		c.log.Printf("load high score: %v", err)
		high = 0
	}
	c.high = high
	return c
}

func (c *Controller) State() State      { return c.state }
func (c *Controller) HighScore() int    { return c.high }
func (c *Controller) Done() bool        { return c.done }
func (c *Controller) Interrupted() bool { return c.interrupted }

// Board returns the live board while playing, nil otherwise.
func (c *Controller) Board() *Board { return c.board }

// Handle applies one command. Commands that mean nothing in the current
// state are dropped.
func (c *Controller) Handle(cmd Command, now time.Time) {
	if cmd.Kind == CmdInterrupt {
		if c.state == StatePlaying {
			c.endRound(StateGameOver, Abandoned, now)
		}
		c.done = true
		c.interrupted = true
		return
	}

	switch c.state {
	case StateMenu:
		c.handleMenu(cmd, now)
	case StatePlaying:
		c.handlePlaying(cmd, now)
	case StateGameOver, StateWin:
		if cmd.Kind == CmdConfirm {
			c.state = StateMenu
			c.menu = MenuPlay
		}
	}
}

func (c *Controller) handleMenu(cmd Command, now time.Time) {
	if cmd.Kind == CmdDirection {
		switch cmd.Dir {
		case Up, Left:
			cmd.Kind = CmdMenuUp
		case Down, Right:
			cmd.Kind = CmdMenuDown
		}
	}

	switch cmd.Kind {
	case CmdMenuUp:
		c.menu = (c.menu + menuItems - 1) % menuItems
	case CmdMenuDown:
		c.menu = (c.menu + 1) % menuItems
	case CmdConfirm:
		if c.menu == MenuExit {
			c.done = true
			return
		}
		c.startRound(now)
	case CmdQuit:
		c.done = true
	}
}

func (c *Controller) handlePlaying(cmd Command, now time.Time) {
	switch cmd.Kind {
	case CmdDirection:
		if cmd.Dir != DirNone && cmd.Dir != c.board.Heading().Opposite() {
			c.pending = cmd.Dir
		}
	case CmdSpeedBoost:
		c.clock.SetBoost(cmd.Active)
	case CmdQuit:
		c.endRound(StateGameOver, Abandoned, now)
	}
}

func (c *Controller) startRound(now time.Time) {
	c.board = StartBoard(c.settings.Width, c.settings.Height)
	c.spawner.Replenish(c.board)
	c.pending = DirNone
	c.cause = NoCause
	c.newRecord = false
	c.clock.SetBoost(false)
	c.clock.Reset(now)
	c.state = StatePlaying
	c.session = uuid.New().String()
	c.started = now
	c.log.Printf("session %s: started", c.session)
}

// Tick moves the snake if a move is due at now.
func (c *Controller) Tick(now time.Time) {
	if c.state != StatePlaying || !c.clock.Due(now) {
		return
	}

	res := c.board.Step(c.pending)
	c.pending = DirNone
	if res.Ate {
		c.spawner.Replenish(c.board)
	}

	switch res.Outcome {
	case Dead:
		c.endRound(StateGameOver, res.Cause, now)
	case Won:
		c.endRound(StateWin, NoCause, now)
	}
}

func (c *Controller) endRound(state State, cause Cause, now time.Time) {
	c.final = c.boardSnapshot()
	c.final.Played = now.Sub(c.started)
	c.state = state
	c.cause = cause

	score := c.board.Score()
	c.log.Printf("session %s: %s after %s, score %d, length %d, cause %q",
		c.session, state, c.final.Played, score, c.board.Len(), cause)

	if score > c.high {
		c.high = score
		c.newRecord = true
		if err := c.store.Save(score); err != nil {
			c.log.Printf("session %s: save high score %d: %v", c.session, score, err)
		}
	}
	c.board = nil
	c.clock.SetBoost(false)
}

// Run is the game loop. Each value received from frames is one render tick:
// queued input is applied, the snake moves if due, and the frame is drawn.
// It returns nil once the player exits from the menu, ErrInterrupted after
// an interrupt, and otherwise the context or draw error that stopped it. A
// cancelled context interrupts the controller first.
func (c *Controller) Run(ctx context.Context, box *Mailbox, frames <-chan time.Time, draw func(Snapshot) error) error {
	if err := draw(c.Snapshot()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			// A round cut short by a signal still ends properly so its
			// score can become the high score.
			c.Handle(Command{Kind: CmdInterrupt}, time.Now())
			return ctx.Err()
		case now := <-frames:
			for cmd, ok := box.Poll(); ok; cmd, ok = box.Poll() {
				c.Handle(cmd, now)
			}
			c.Tick(now)
			if c.done {
				if c.interrupted {
					return ErrInterrupted
				}
				return nil
			}
			if err := draw(c.Snapshot()); err != nil {
				return err
			}
		}
	}
}
