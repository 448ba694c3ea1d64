package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/particlesim/internal/physics"
)

var ErrNoFrames = errors.New("viz: nothing recorded")

const (
	dotPixels = 4
	gifDelay  = 2
)

// Recorder captures canvas frames into an animated GIF. Each Braille dot
// becomes a dotPixels square in the body's colour.
type Recorder struct {
	palette color.Palette
	index   map[physics.Color]uint8
	frames  []*image.Paletted
}

func NewRecorder(background physics.Color, colors []physics.Color) *Recorder {
	r := &Recorder{index: make(map[physics.Color]uint8)}
	r.palette = append(r.palette, toRGBA(background))
	for _, c := range colors {
		if _, ok := r.index[c]; ok || len(r.palette) >= 256 {
			continue
		}
		r.index[c] = uint8(len(r.palette))
		r.palette = append(r.palette, toRGBA(c))
	}
	return r
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Capture(c *Canvas) {
	dw, dh := c.Dots()
	img := image.NewPaletted(image.Rect(0, 0, dw*dotPixels, dh*dotPixels), r.palette)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.Lit(x, y) {
				continue
			}
			idx := r.colorIndex(c.Colors[y/4][x/2])
			for py := 0; py < dotPixels; py++ {
				for px := 0; px < dotPixels; px++ {
					img.SetColorIndex(x*dotPixels+px, y*dotPixels+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// colorIndex maps colours outside the palette to the nearest entry.
func (r *Recorder) colorIndex(c physics.Color) uint8 {
	if idx, ok := r.index[c]; ok {
		return idx
	}
	return uint8(r.palette.Index(toRGBA(c)))
}

func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, gifDelay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func toRGBA(c physics.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
