//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/session"
)

// hudHeight is the pixel height of the status strip drawn over the board.
const hudHeight = 16

// Game adapts a session to the ebiten.Game interface. Each Update is one
// tick; the tick rate is set through ebiten.SetTPS.
type Game struct {
	sess    *session.Session
	painter *gridPainter
	colors  palette
	scale   int
	opts    Options
	input   core.InputFrame
	runs    runLog
}

// New constructs a Game for the provided options.
func New(opts Options) (*Game, error) {
	colors, err := newPalette(opts.Life.Display.Colors)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(opts.SessionConfig())
	if err != nil {
		return nil, err
	}
	g := sess.Grid()
	return &Game{
		sess:    sess,
		painter: newGridPainter(g.Width(), g.Height()),
		colors:  colors,
		scale:   opts.Life.Window.CellSize,
		opts:    opts,
		input:   core.NewInputFrame(),
		runs:    runLog{rec: opts.Recorder, logger: opts.Logger},
	}, nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.runs.finish(g.sess.Summary())
		return ebiten.Termination
	}

	for key, action := range map[ebiten.Key]core.Action{
		ebiten.KeyP:     core.ActionPause,
		ebiten.KeySpace: core.ActionPause,
		ebiten.KeyF:     core.ActionStep,
		ebiten.KeyR:     core.ActionRandomize,
		ebiten.KeyB:     core.ActionClear,
		ebiten.KeyG:     core.ActionToggleGrid,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.input.Set(action)
		}
	}

	x, y := ebiten.CursorPosition()
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.input.Press(x, y, core.PointerLeft)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.input.Press(x, y, core.PointerRight)
	}

	res, err := g.sess.Update(g.input)
	g.input.Clear()
	if err != nil {
		return err
	}
	if res.Ended != nil {
		g.runs.record(*res.Ended)
	}
	return nil
}

// Draw renders the board, the optional grid lines and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sess.Grid()
	g.painter.blit(screen, grid, g.colors.alive, g.colors.dead, g.scale)
	if g.sess.ShowGrid() {
		strokeGrid(screen, grid.Width(), grid.Height(), g.scale, g.colors.grid)
	}

	st := g.sess.Stats()
	status := fmt.Sprintf("gen %d  pop %d  peak %d", st.Generation, st.Population, st.PeakPopulation)
	strip := g.colors.hud
	if g.sess.Paused() {
		status += "  [PAUSED]"
		strip = g.colors.paused
	}
	tint := color.NRGBA{R: strip.R, G: strip.G, B: strip.B, A: 0x80}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), hudHeight, tint, false)
	ebitenutil.DebugPrintAt(screen, status, 4, 0)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sess.Grid()
	return grid.Width() * g.scale, grid.Height() * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game, err := New(opts)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(opts.Life.Simulation.TickRate)
	ebiten.SetWindowSize(w, h)

	err = ebiten.RunGame(game)
	// Closing the window returns without passing through Update's quit keys.
	game.runs.finish(game.sess.Summary())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return game.runs.err
}
