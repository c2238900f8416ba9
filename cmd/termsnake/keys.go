package main

import (
	"github.com/rovaughn/termsnake/game"
	"github.com/rovaughn/termsnake/termapp"
)

// keyCommand maps a raw key to a game command. Keys with no meaning are
// dropped here.
func keyCommand(key termapp.Key) (game.Command, bool) {
	switch key {
	case termapp.KeyUp, 'w', 'W':
		return game.DirectionCmd(game.Up), true
	case termapp.KeyDown, 's', 'S':
		return game.DirectionCmd(game.Down), true
	case termapp.KeyLeft, 'a', 'A':
		return game.DirectionCmd(game.Left), true
	case termapp.KeyRight, 'd', 'D':
		return game.DirectionCmd(game.Right), true
	case 'k':
		return game.Command{Kind: game.CmdMenuUp}, true
	case 'j':
		return game.Command{Kind: game.CmdMenuDown}, true
	case ' ':
		return game.BoostCmd(true), true
	case termapp.KeyEnter:
		return game.Command{Kind: game.CmdConfirm}, true
	case 'q', 'Q', termapp.KeyEscape:
		return game.Command{Kind: game.CmdQuit}, true
	case termapp.KeyCtrlC:
		return game.Command{Kind: game.CmdInterrupt}, true
	}
	return game.Command{}, false
}
