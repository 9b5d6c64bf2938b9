package assets

import (
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/teddyburger/component"
	"golang.org/x/sync/errgroup"
)

// Strip describes a sprite sheet cut into equally sized frames, read left to
// right then top to bottom.
type Strip struct {
	Name        string
	FrameWidth  int
	FrameHeight int
	Frames      int
}

// Library holds every decoded sprite and sound, keyed by logical name.
type Library struct {
	images map[string]*ebiten.Image
	strips map[string][]*ebiten.Image
	sounds map[component.Sound]*audio.Player
	audio  *audio.Context
	blanks map[string]*ebiten.Image
}

// NewLibrary creates an empty library. ctx may be nil to run silent.
func NewLibrary(ctx *audio.Context) *Library {
	return &Library{
		images: make(map[string]*ebiten.Image),
		strips: make(map[string][]*ebiten.Image),
		sounds: make(map[component.Sound]*audio.Player),
		audio:  ctx,
		blanks: make(map[string]*ebiten.Image),
	}
}

// Preload decodes the named sprites, strips and sounds concurrently. Assets
// that fail to decode are logged and later drawn as placeholders or played
// as silence; the error is only returned for the first failure so callers
// can decide whether to continue.
func (l *Library) Preload(sprites []string, strips []Strip, sounds []component.Sound) error {
	var (
		mu      sync.Mutex
		decoded = make(map[string]image.Image, len(sprites)+len(strips))
		pcm     = make(map[component.Sound][]byte, len(sounds))
		g       errgroup.Group
	)

	names := append([]string(nil), sprites...)
	for _, s := range strips {
		names = append(names, s.Name)
	}
	for _, name := range names {
		g.Go(func() error {
			img, err := DecodeImage(name)
			if err != nil {
				log.Printf("assets: sprite %s: %v", name, err)
				return err
			}
			mu.Lock()
			decoded[name] = img
			mu.Unlock()
			return nil
		})
	}
	if l.audio != nil {
		for _, s := range sounds {
			g.Go(func() error {
				b, err := DecodeSound(string(s))
				if err != nil {
					log.Printf("assets: sound %s: %v", s, err)
					return err
				}
				mu.Lock()
				pcm[s] = b
				mu.Unlock()
				return nil
			})
		}
	}
	err := g.Wait()

	for _, name := range sprites {
		if img, ok := decoded[name]; ok {
			l.images[name] = ebiten.NewImageFromImage(img)
		}
	}
	for _, s := range strips {
		img, ok := decoded[s.Name]
		if !ok {
			continue
		}
		sheet := ebiten.NewImageFromImage(img)
		rects := FrameRects(sheet.Bounds(), s.FrameWidth, s.FrameHeight, s.Frames)
		frames := make([]*ebiten.Image, len(rects))
		for i, r := range rects {
			frames[i] = sheet.SubImage(r).(*ebiten.Image)
		}
		l.strips[s.Name] = frames
	}
	for s, b := range pcm {
		l.sounds[s] = l.audio.NewPlayerFromBytes(b)
	}
	return err
}

// Image returns the sprite by name, or a flat placeholder of the given size.
func (l *Library) Image(name string, w, h int) *ebiten.Image {
	if img, ok := l.images[name]; ok {
		return img
	}
	return l.placeholder(name, w, h)
}

// Frame returns frame i of a strip, or a placeholder.
func (l *Library) Frame(name string, i, w, h int) *ebiten.Image {
	frames := l.strips[name]
	if i >= 0 && i < len(frames) {
		return frames[i]
	}
	return l.placeholder(name, w, h)
}

// Play restarts the named sound. Unknown sounds are ignored.
func (l *Library) Play(s component.Sound) {
	p := l.sounds[s]
	if p == nil {
		return
	}
	p.Rewind()
	p.Play()
}

func (l *Library) placeholder(name string, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	if img, ok := l.blanks[name]; ok && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(placeholderColor(name))
	l.blanks[name] = img
	return img
}

func placeholderColor(name string) color.Color {
	var h uint32 = 2166136261
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return color.NRGBA{R: uint8(h), G: uint8(h >> 8), B: uint8(h >> 16), A: 0xff}
}

// FrameRects cuts bounds into up to count frames of fw x fh. A count of zero
// or more than fit returns every whole frame.
func FrameRects(bounds image.Rectangle, fw, fh, count int) []image.Rectangle {
	if fw <= 0 || fh <= 0 {
		return nil
	}
	cols := bounds.Dx() / fw
	rows := bounds.Dy() / fh
	maxFrames := cols * rows
	if count <= 0 || count > maxFrames {
		count = maxFrames
	}
	rects := make([]image.Rectangle, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		x := bounds.Min.X + col*fw
		y := bounds.Min.Y + row*fh
		rects[i] = image.Rect(x, y, x+fw, y+fh)
	}
	return rects
}
