package main

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/teddyburger/assets"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

const previewSize = 512

type demoGame struct {
	frames []*ebiten.Image
	clock  *component.AnimationClock
	scale  float64
}

func (g *demoGame) Update() error {
	g.clock.Update(1000 / float64(ebiten.TPS()))
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	img := g.frames[g.clock.Frame()]
	fw := float64(img.Bounds().Dx()) * g.scale
	fh := float64(img.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw)/2, (previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func loadSheet(path, embedded string) (image.Image, error) {
	if path == "" {
		return assets.DecodeImage(embedded)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	return img, err
}

func main() {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	ex := spec.Explosion

	sheetPath := flag.String("sheet", "", "sprite sheet png (defaults to the embedded explosion strip)")
	frameW := flag.Int("fw", int(ex.FrameWidth), "frame width")
	frameH := flag.Int("fh", int(ex.FrameHeight), "frame height")
	count := flag.Int("frames", ex.Frames, "frame count (0 for all)")
	frameMs := flag.Float64("ms", ex.FrameMs, "milliseconds per frame")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	src, err := loadSheet(*sheetPath, ex.Sprite)
	if err != nil {
		log.Fatalf("load sheet: %v", err)
	}
	sheet := ebiten.NewImageFromImage(src)
	rects := assets.FrameRects(sheet.Bounds(), *frameW, *frameH, *count)
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	log.Printf("spsa: %d frames of %dx%d at %.0fms", len(frames), *frameW, *frameH, *frameMs)

	g := &demoGame{
		frames: frames,
		clock:  component.NewAnimationClock(len(frames), *frameMs, true),
		scale:  *scale,
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Strip Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
