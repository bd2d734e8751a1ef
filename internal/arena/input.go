package arena

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/carchrae/hogs/internal/game"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readIntent samples the keyboard. Holding space does not auto-fire: only
// the frame the key goes down counts.
func readIntent() game.Intent {
	return buildIntent(
		anyPressed(leftKeys), anyPressed(rightKeys),
		anyPressed(upKeys), anyPressed(downKeys),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
	)
}

// buildIntent turns held directions into a move vector. Opposite keys cancel.
func buildIntent(left, right, up, down, fire bool) game.Intent {
	var in game.Intent
	if left {
		in.Move.X--
	}
	if right {
		in.Move.X++
	}
	if up {
		in.Move.Y++
	}
	if down {
		in.Move.Y--
	}
	in.Fire = fire
	return in
}
