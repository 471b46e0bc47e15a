package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/tunnelviz/internal/audio"
	"github.com/iburimskiy/tunnelviz/internal/config"
	"github.com/iburimskiy/tunnelviz/internal/scene"
)

const keyHelp = "O: open  Space: pause  R: restart  H: hide controls  Esc/Q: quit"

func (g *Game) drawControls(screen *ebiten.Image) {
	g.drawButton(screen)

	status := g.status
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, keyHelp, 12, 28)

	g.drawProgressBar(screen)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, borderColor, false)

	text := "Open File"
	if g.dialogOpen {
		text = "Choosing..."
	}
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// drawProgressBar shows how far into the track playback is. It is read-only.
func (g *Game) drawProgressBar(screen *ebiten.Image) {
	track := g.player.Track()
	if !g.running || track == nil {
		return
	}
	total := track.Duration()
	if total <= 0 {
		return
	}
	pos := g.player.Position()
	progress := clamp01(float64(pos) / float64(total))

	barHeight := 12
	barX := 20
	barWidth := g.width - 40
	barY := g.height - 40
	if barWidth <= 0 || barY <= 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	if progress > 0 {
		st := g.engine.State()
		fill := g.renderer.Palette().Color(scene.HSLA{H: st.HueRotation + progress*180, S: 80, L: 60, A: 0.7})
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(progress*float64(barWidth)), float32(barHeight), fill, false)
	}

	label := audio.FormatDuration(pos) + " / " + audio.FormatDuration(total)
	ebitenutil.DebugPrintAt(screen, label, barX, barY+barHeight+4)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	st := g.engine.State()
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nintensity %.3f  bass %.3f  mid %.3f  high %.3f\nevo %.2f  hue %.1f  radius %.3f  glow %.3f",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		st.Intensity, st.Bands.Bass, st.Bands.Mid, st.Bands.High,
		st.EvolutionTime, st.HueRotation, st.TunnelRadius, st.GlowIntensity)
	ebitenutil.DebugPrintAt(screen, msg, 12, g.height-110)
}
