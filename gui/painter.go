//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/lopezrodolfo/GOL/model"
)

// Painter is a display sink that keeps the latest generation in an image.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	turn int

	OnColor  color.Color
	OffColor color.Color
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{
		w:        w,
		h:        h,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		OnColor:  color.White,
		OffColor: color.Black,
	}
}

// Render uploads the generation's cells into the painter image.
func (p *Painter) Render(w *model.World, turn int) error {
	if w.Width() != p.w || w.Height() != p.h {
		return errors.Errorf("[Painter.Render] world is %dx%d, painter is %dx%d", w.Width(), w.Height(), p.w, p.h)
	}
	fillBinaryRGBA(p.buf, w.Rows(), p.OnColor, p.OffColor)
	p.img.WritePixels(p.buf)
	p.turn = turn
	return nil
}

// Draw scales the last rendered generation onto dst.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Turn returns the turn of the last rendered generation.
func (p *Painter) Turn() int { return p.turn }

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
