package desktop

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

// fontSet caches the TrueType sources and one face per size
type fontSet struct {
	once    sync.Once
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

var fonts fontSet

func loadFontSource(ttf []byte) *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Errorf("Failed to load font source: %v", err)
		return nil
	}
	return source
}

// face returns the font face for a size, or nil when fonts failed to load
func (f *fontSet) face(size float64, bold bool) *text.GoTextFace {
	f.once.Do(func() {
		f.regular = loadFontSource(goregular.TTF)
		f.bold = loadFontSource(gobold.TTF)
		f.faces = make(map[faceKey]*text.GoTextFace)
	})

	key := faceKey{size, bold}
	if face, ok := f.faces[key]; ok {
		return face
	}

	source := f.regular
	if bold && f.bold != nil {
		source = f.bold
	}
	if source == nil {
		return nil
	}
	face := &text.GoTextFace{Source: source, Size: size}
	f.faces[key] = face
	return face
}

var (
	pixelOnce sync.Once
	pixel     *ebiten.Image
)

// whitePixel is stretched and tinted to fill rectangles
func whitePixel() *ebiten.Image {
	pixelOnce.Do(func() {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	})
	return pixel
}

// ebitenCanvas paints in logical pixels onto a physical-resolution screen
type ebitenCanvas struct {
	screen *ebiten.Image
	scale  float64
}

func newCanvas(screen *ebiten.Image, scale float64) *ebitenCanvas {
	if scale <= 0 {
		scale = 1
	}
	return &ebitenCanvas{screen: screen, scale: scale}
}

func (c *ebitenCanvas) Size() (int, int) {
	b := c.screen.Bounds()
	return int(float64(b.Dx()) / c.scale), int(float64(b.Dy()) / c.scale)
}

func (c *ebitenCanvas) Fill(r shell.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(r.W*c.scale, r.H*c.scale)
	opts.GeoM.Translate(r.X*c.scale, r.Y*c.scale)
	opts.ColorScale.ScaleWithColor(clr)
	c.screen.DrawImage(whitePixel(), opts)
}

func (c *ebitenCanvas) Text(s string, r shell.Rect, st shell.TextStyle) {
	if s == "" {
		return
	}
	face := fonts.face(st.Size*c.scale, st.Bold)
	if face == nil {
		return
	}

	opts := &text.DrawOptions{}
	opts.LineSpacing = face.Size * 1.3
	opts.SecondaryAlign = text.AlignCenter

	x := r.X * c.scale
	if st.Align == shell.AlignCenter {
		opts.PrimaryAlign = text.AlignCenter
		x += r.W * c.scale / 2
	}
	opts.GeoM.Translate(x, (r.Y+r.H/2)*c.scale)
	opts.ColorScale.ScaleWithColor(st.Color)
	text.Draw(c.screen, s, face, opts)
}
