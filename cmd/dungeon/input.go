package main

import (
	"github.com/gdamore/tcell/v2"

	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/geom"
)

// stage is where the key reader is in a multi-key command.
type stage uint8

const (
	stageIdle stage = iota
	stageSlot
	stageDirection
	stageConfirm
)

// command is the outcome of one key press.
type command struct {
	intent game.Intent
	// ready is set once intent is complete and should go to the session.
	ready bool
	quit  bool
	// prompt, when non-empty, is shown while more keys are expected.
	prompt string
}

// keyReader turns key presses into intents. Item verbs read a slot digit,
// throws then read a direction.
type keyReader struct {
	stage   stage
	pending game.Intent
}

var slotPrompts = map[game.IntentKind]string{
	game.IntentUse:    "Use which item? (0-9, Esc cancels)",
	game.IntentEquip:  "Equip which weapon? (0-9, Esc cancels)",
	game.IntentThrow:  "Throw which item? (0-9, Esc cancels)",
	game.IntentDelete: "Drop which item for good? (0-9, Esc cancels)",
	game.IntentBuy:    "Buy which offer? (0-9, Esc cancels)",
}

// read consumes one key event.
func (k *keyReader) read(ev *tcell.EventKey) command {
	if ev.Key() == tcell.KeyEscape && k.stage != stageIdle {
		k.stage = stageIdle
		return command{prompt: "Cancelled"}
	}
	switch k.stage {
	case stageSlot:
		return k.readSlot(ev)
	case stageDirection:
		return k.readDirection(ev)
	case stageConfirm:
		k.stage = stageIdle
		if ev.Rune() == 'y' || ev.Rune() == 'Y' {
			return command{intent: game.Intent{Kind: game.IntentSuicide}, ready: true}
		}
		return command{prompt: "Cancelled"}
	}
	return k.readIdle(ev)
}

func (k *keyReader) readIdle(ev *tcell.EventKey) command {
	if ev.Key() == tcell.KeyEscape {
		return command{quit: true}
	}
	if dir, ok := keyToDirection(ev); ok {
		return command{intent: game.Move(dir), ready: true}
	}
	switch ev.Rune() {
	case '.':
		return command{intent: game.Intent{Kind: game.IntentWait}, ready: true}
	case 'a':
		return k.askSlot(game.IntentUse)
	case 'e':
		return k.askSlot(game.IntentEquip)
	case 'r':
		return command{intent: game.Intent{Kind: game.IntentUnequip}, ready: true}
	case 't':
		return k.askSlot(game.IntentThrow)
	case 'd':
		return k.askSlot(game.IntentDelete)
	case 'p':
		return k.askSlot(game.IntentBuy)
	case 'x':
		return command{intent: game.Intent{Kind: game.IntentDescribe}, ready: true}
	case 'S':
		k.stage = stageConfirm
		return command{prompt: "Really end your life? (y/N)"}
	case 'q', 'Q':
		return command{quit: true}
	}
	return command{}
}

func (k *keyReader) askSlot(kind game.IntentKind) command {
	k.stage = stageSlot
	k.pending = game.Intent{Kind: kind}
	return command{prompt: slotPrompts[kind]}
}

func (k *keyReader) readSlot(ev *tcell.EventKey) command {
	r := ev.Rune()
	if r < '0' || r > '9' {
		return command{prompt: slotPrompts[k.pending.Kind]}
	}
	k.pending.Item = int(r - '0')
	if k.pending.Kind == game.IntentThrow {
		k.stage = stageDirection
		return command{prompt: "Throw in which direction? (hjklyubn)"}
	}
	k.stage = stageIdle
	return command{intent: k.pending, ready: true}
}

func (k *keyReader) readDirection(ev *tcell.EventKey) command {
	dir, ok := keyToDirection(ev)
	if !ok {
		return command{prompt: "Throw in which direction? (hjklyubn)"}
	}
	k.stage = stageIdle
	k.pending.Dir = dir
	return command{intent: k.pending, ready: true}
}

// keyToDirection maps arrow keys and vi keys to a unit step.
func keyToDirection(ev *tcell.EventKey) (geom.Coord, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return geom.Coord{X: 0, Y: -1}, true
	case tcell.KeyDown:
		return geom.Coord{X: 0, Y: 1}, true
	case tcell.KeyRight:
		return geom.Coord{X: 1, Y: 0}, true
	case tcell.KeyLeft:
		return geom.Coord{X: -1, Y: 0}, true
	case tcell.KeyRune:
	default:
		return geom.Coord{}, false
	}
	switch ev.Rune() {
	case 'k':
		return geom.Coord{X: 0, Y: -1}, true
	case 'j':
		return geom.Coord{X: 0, Y: 1}, true
	case 'l':
		return geom.Coord{X: 1, Y: 0}, true
	case 'h':
		return geom.Coord{X: -1, Y: 0}, true
	case 'y':
		return geom.Coord{X: -1, Y: -1}, true
	case 'u':
		return geom.Coord{X: 1, Y: -1}, true
	case 'b':
		return geom.Coord{X: -1, Y: 1}, true
	case 'n':
		return geom.Coord{X: 1, Y: 1}, true
	}
	return geom.Coord{}, false
}
