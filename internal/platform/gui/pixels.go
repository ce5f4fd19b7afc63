package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
)

// fillRGBA writes one RGBA pixel per cell of g into buf in row-major order.
func fillRGBA(buf []byte, g *life.Grid, alive, dead color.RGBA) {
	i := 0
	for _, s := range g.All() {
		col := dead
		if s == life.Alive {
			col = alive
		}
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
		i += 4
	}
}

// ParseHexColor parses "#rrggbb" or "#rgb" (the "#" is optional) into an
// opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("gui: invalid color %q", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("gui: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// palette holds the parsed window colors.
type palette struct {
	alive, dead, grid, hud, paused color.RGBA
}

func newPalette(c config.ColorConfig) (palette, error) {
	var p palette
	for _, f := range []struct {
		dst *color.RGBA
		src string
	}{
		{&p.alive, c.Alive},
		{&p.dead, c.Dead},
		{&p.grid, c.Grid},
		{&p.hud, c.HUD},
		{&p.paused, c.Paused},
	} {
		col, err := ParseHexColor(f.src)
		if err != nil {
			return palette{}, err
		}
		*f.dst = col
	}
	return p, nil
}
