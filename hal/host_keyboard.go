//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Simulator key map. Each watch button has a letter key and a mnemonic
// punctuation alias:
//
//	alarm (dot)       A or .
//	light (dash)      L or -
//	mode  (complete)  M or space
var hostKeyMap = []struct {
	key ebiten.Key
	btn Button
}{
	{ebiten.KeyA, ButtonAlarm},
	{ebiten.KeyPeriod, ButtonAlarm},
	{ebiten.KeyL, ButtonLight},
	{ebiten.KeyMinus, ButtonLight},
	{ebiten.KeyM, ButtonMode},
	{ebiten.KeySpace, ButtonMode},
}

// poll forwards key edges to the button channel.
func (b *hostButtons) poll() {
	for _, m := range hostKeyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			b.emit(m.btn, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			b.emit(m.btn, false)
		}
	}
}
