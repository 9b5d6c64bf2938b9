// Package render draws world snapshots. It never mutates the simulation.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/teddyburger/assets"
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/obj"
	"github.com/milk9111/teddyburger/scores"
	"github.com/milk9111/teddyburger/system"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.NRGBA{R: 0x4a, G: 0x8a, B: 0xc8, A: 0xff}
	hudColor        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudShadow       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

type Renderer struct {
	lib  *assets.Library
	face text.Face
}

func NewRenderer(lib *assets.Library) *Renderer {
	return &Renderer{lib: lib, face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw paints the world then the HUD.
func (r *Renderer) Draw(screen *ebiten.Image, w *system.World) {
	screen.Fill(backgroundColor)
	if w == nil {
		return
	}
	for _, e := range w.Entities() {
		if !e.IsActive() {
			continue
		}
		r.drawEntity(screen, e)
	}
	r.drawHUD(screen, w)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e obj.Entity) {
	rect := e.Rect()
	if !rect.Valid() {
		return
	}
	w, h := int(rect.Width), int(rect.Height)

	var img *ebiten.Image
	switch v := e.(type) {
	case *obj.Burger:
		img = r.lib.Image(v.Sprite, w, h)
	case *obj.TeddyBear:
		img = r.lib.Image(v.Sprite, w, h)
	case *obj.Projectile:
		img = r.lib.Image(v.Sprite(), w, h)
	case *obj.Explosion:
		img = r.lib.Frame(v.Sprite, v.Frame(), w, h)
	default:
		return
	}
	drawScaled(screen, img, rect)
}

func drawScaled(screen, img *ebiten.Image, rect common.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width/float64(b.Dx()), rect.Height/float64(b.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, w *system.World) {
	r.drawText(screen, w.ScoreString(), hudMargin, hudMargin)
	r.drawText(screen, w.HealthString(), hudMargin, hudMargin+hudLineHeight)

	hs := w.HighScores()
	if len(hs) == 0 {
		return
	}
	x := w.Bounds().Width - 180
	r.drawText(screen, "High Scores", x, hudMargin)
	for i, line := range HighScoreLines(hs) {
		r.drawText(screen, line, x, hudMargin+float64(i+1)*hudLineHeight)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+1, y+1)
	shadow.ColorScale.ScaleWithColor(hudShadow)
	text.Draw(screen, s, r.face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, r.face, op)
}

// HighScoreLines formats ranked entries as "1. name  value".
func HighScoreLines(entries []scores.Score) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %-12s %5d", i+1, e.PlayerName, e.Value)
	}
	return lines
}
