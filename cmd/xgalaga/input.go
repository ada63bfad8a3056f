package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xgalaga/game"
)

// holdWindow keeps a key down after its last press, terminals report no releases
const holdWindow = 180 * time.Millisecond

// keyState folds terminal key presses into per-tick intents
type keyState struct {
	leftUntil  time.Time
	rightUntil time.Time
	fireUntil  time.Time

	pause   bool
	restart bool
	quit    bool
	mute    bool
}

// handleKey records one press at now
func (k *keyState) handleKey(ev *tcell.EventKey, now time.Time) {
	hold := now.Add(holdWindow)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyLeft:
		k.leftUntil = hold
		k.rightUntil = time.Time{}
		return
	case tcell.KeyRight:
		k.rightUntil = hold
		k.leftUntil = time.Time{}
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'a', 'A', 'h':
		k.leftUntil = hold
		k.rightUntil = time.Time{}
	case 'd', 'D', 'l':
		k.rightUntil = hold
		k.leftUntil = time.Time{}
	case ' ', 'k':
		k.fireUntil = hold
	case 'p', 'P':
		k.pause = true
	case 'r', 'R':
		k.restart = true
	case 'm', 'M':
		k.mute = true
	case 'q', 'Q':
		k.quit = true
	}
}

// sample returns the intents for one tick and clears one-shot keys
func (k *keyState) sample(now time.Time) game.Input {
	in := game.Input{
		MoveLeft:    now.Before(k.leftUntil),
		MoveRight:   now.Before(k.rightUntil),
		Fire:        now.Before(k.fireUntil),
		PauseToggle: k.pause,
		Restart:     k.restart,
		Quit:        k.quit,
	}
	k.pause, k.restart, k.quit = false, false, false
	return in
}

// takeMute reports and clears a pending mute toggle
func (k *keyState) takeMute() bool {
	m := k.mute
	k.mute = false
	return m
}
