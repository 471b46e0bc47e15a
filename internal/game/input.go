package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/tunnelviz/internal/config"
)

// input is what happened on the keyboard and mouse during one tick.
type input struct {
	quit           bool
	toggleControls bool
	pause          bool
	restart        bool
	open           bool
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func (g *Game) readInput() input {
	in := input{
		toggleControls: g.justPressed(ebiten.KeyH),
		pause:          g.justPressed(ebiten.KeySpace),
		restart:        g.justPressed(ebiten.KeyR),
		open:           g.justPressed(ebiten.KeyO),
	}
	esc, q := g.justPressed(ebiten.KeyEscape), g.justPressed(ebiten.KeyQ)
	in.quit = esc || q

	// The button only exists while the controls are shown.
	if !g.showControls {
		g.buttonHovered, g.buttonPressed = false, false
		return in
	}
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = insideButton(mouseX, mouseY)
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			in.open = true
		}
		g.buttonPressed = false
	}
	return in
}

func insideButton(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}
