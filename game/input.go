package game

import (
	"context"
	"sync"
	"time"
)

type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdDirection
	CmdSpeedBoost
	CmdMenuUp
	CmdMenuDown
	CmdConfirm
	// CmdQuit abandons a running round.
	CmdQuit
	// CmdInterrupt ends the process from any state.
	CmdInterrupt
)

// Command is one player intent, already mapped from a raw key.
type Command struct {
	Kind   CommandKind
	Dir    Direction // CmdDirection
	Active bool      // CmdSpeedBoost
}

func DirectionCmd(d Direction) Command { return Command{Kind: CmdDirection, Dir: d} }
func BoostCmd(active bool) Command    { return Command{Kind: CmdSpeedBoost, Active: active} }

// mailboxDepth bounds how many commands wait between two frames.
const mailboxDepth = 8

// Mailbox is the only state shared between the input worker and the game
// loop. Direction commands share one slot: a newer direction replaces one
// that is still waiting, unless another command arrived in between. Other
// commands queue in arrival order so a menu move followed by a confirm in
// the same frame keeps both. The speed boost is a level. The game loop
// drains the mailbox without blocking.
type Mailbox struct {
	mu         sync.Mutex
	queue      []Command
	boost      bool
	boostDirty bool
}

// Publish stores cmd. Boost commands only change the level. When the
// queue is full new commands are dropped, except an interrupt, which takes
// the last place.
func (m *Mailbox) Publish(cmd Command) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch cmd.Kind {
	case CmdNone:
		return
	case CmdSpeedBoost:
		if m.boost != cmd.Active {
			m.boost = cmd.Active
			m.boostDirty = true
		}
		return
	}

	n := len(m.queue)
	switch {
	case cmd.Kind == CmdDirection && n > 0 && m.queue[n-1].Kind == CmdDirection:
		m.queue[n-1] = cmd
	case n < mailboxDepth:
		m.queue = append(m.queue, cmd)
	case cmd.Kind == CmdInterrupt:
		m.queue[n-1] = cmd
	}
}

// Poll returns the next command, if any. A boost level change is returned
// before queued commands.
func (m *Mailbox) Poll() (Command, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.boostDirty {
		m.boostDirty = false
		return BoostCmd(m.boost), true
	}
	if len(m.queue) == 0 {
		return Command{}, false
	}
	cmd := m.queue[0]
	m.queue = m.queue[1:]
	if len(m.queue) == 0 {
		m.queue = nil
	}
	return cmd, true
}

// Capture copies commands from events into box until ctx is done or events
// is closed. Terminals report key presses but never releases, so a boost is
// held for as long as repeats keep arriving within hold of each other.
func Capture(ctx context.Context, events <-chan Command, box *Mailbox, hold time.Duration) {
	release := time.NewTimer(hold)
	stopTimer(release)
	defer release.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-events:
			if !ok {
				return
			}
			if cmd.Kind == CmdSpeedBoost && cmd.Active {
				stopTimer(release)
				release.Reset(hold)
			}
			box.Publish(cmd)
		case <-release.C:
			box.Publish(BoostCmd(false))
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
