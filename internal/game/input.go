package game

import (
	"raycaster/internal/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readIntent polls the keyboard for this tick's movement
func readIntent() player.Intent {
	return intentFromKeys(ebiten.IsKeyPressed)
}

// intentFromKeys maps held keys to an intent. Arrows or WASD move and turn;
// Q/E strafe, and so do the turn keys while Shift is held.
func intentFromKeys(pressed func(ebiten.Key) bool) player.Intent {
	var in player.Intent
	axis := func(neg, pos bool) float64 {
		switch {
		case pos && !neg:
			return 1
		case neg && !pos:
			return -1
		default:
			return 0
		}
	}

	in.Forward = axis(
		pressed(ebiten.KeyDown) || pressed(ebiten.KeyS),
		pressed(ebiten.KeyUp) || pressed(ebiten.KeyW),
	)
	turn := axis(
		pressed(ebiten.KeyLeft) || pressed(ebiten.KeyA),
		pressed(ebiten.KeyRight) || pressed(ebiten.KeyD),
	)
	in.Strafe = axis(pressed(ebiten.KeyQ), pressed(ebiten.KeyE))

	if pressed(ebiten.KeyShiftLeft) || pressed(ebiten.KeyShiftRight) {
		if in.Strafe == 0 {
			in.Strafe = turn
		}
	} else {
		in.Turn = turn
	}
	return in
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handleToggles flips the overlays on F1 (FPS) and M (minimap)
func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showFPS = !g.showFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
}
