//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-life/internal/life"
)

// gridPainter uploads a grid into a one-pixel-per-cell image and draws it scaled.
type gridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func newGridPainter(w, h int) *gridPainter {
	return &gridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// blit draws g onto dst with each cell covering scale x scale pixels.
func (gp *gridPainter) blit(dst *ebiten.Image, g *life.Grid, alive, dead color.RGBA, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	fillRGBA(gp.buf, g, alive, dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// strokeGrid draws one-pixel lines between cells.
func strokeGrid(dst *ebiten.Image, w, h, scale int, clr color.Color) {
	width, height := float32(w*scale), float32(h*scale)
	for x := 1; x < w; x++ {
		fx := float32(x * scale)
		vector.StrokeLine(dst, fx, 0, fx, height, 1, clr, false)
	}
	for y := 1; y < h; y++ {
		fy := float32(y * scale)
		vector.StrokeLine(dst, 0, fy, width, fy, 1, clr, false)
	}
}
