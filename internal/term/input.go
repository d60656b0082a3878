package term

import (
	"time"

	"raycaster/internal/player"

	"github.com/gdamore/tcell/v2"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for this long after its last event.
const keyHold = 120 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionForward
	actionBack
	actionTurnLeft
	actionTurnRight
	actionStrafeLeft
	actionStrafeRight
	actionQuit
	actionToggleMinimap
	actionToggleFPS
)

// actionFor maps a key event to an action
func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionForward
	case tcell.KeyDown:
		return actionBack
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return actionStrafeLeft
		}
		return actionTurnLeft
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return actionStrafeRight
		}
		return actionTurnRight
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return actionQuit
		}
		switch ev.Rune() {
		case 'w', 'W':
			return actionForward
		case 's', 'S':
			return actionBack
		case 'a', 'A':
			return actionTurnLeft
		case 'd', 'D':
			return actionTurnRight
		case 'q', 'Q':
			return actionStrafeLeft
		case 'e', 'E':
			return actionStrafeRight
		case 'm', 'M':
			return actionToggleMinimap
		case 'f', 'F':
			return actionToggleFPS
		}
	}
	return actionNone
}

// keyTracker remembers when each movement action was last seen
type keyTracker struct {
	seen map[action]time.Time
}

func newKeyTracker() *keyTracker {
	return &keyTracker{seen: make(map[action]time.Time)}
}

func (k *keyTracker) press(a action, now time.Time) {
	k.seen[a] = now
}

func (k *keyTracker) held(a action, now time.Time) bool {
	t, ok := k.seen[a]
	return ok && now.Sub(t) < keyHold
}

// intent builds the movement intent from actions held at now
func (k *keyTracker) intent(now time.Time) player.Intent {
	axis := func(neg, pos action) float64 {
		var v float64
		if k.held(pos, now) {
			v++
		}
		if k.held(neg, now) {
			v--
		}
		return v
	}
	return player.Intent{
		Forward: axis(actionBack, actionForward),
		Turn:    axis(actionTurnLeft, actionTurnRight),
		Strafe:  axis(actionStrafeLeft, actionStrafeRight),
	}
}
