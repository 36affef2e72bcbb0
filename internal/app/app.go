//go:build ebiten

package app

import (
	"log/slog"

	"lifeview/internal/input"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minHUDHeight keeps the status lines visible next to small grids.
const minHUDHeight = 420

// Game adapts a Session to the ebiten.Game interface. Each Update is one
// display refresh for the session's scheduler.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
	bounds   input.Rect
	uploaded uint64
}

// New constructs a Game for the provided session.
func New(s *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	raster := s.RasterSize()
	bounds := input.Rect{W: float64(raster.X * scale), H: float64(raster.Y * scale)}
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(raster.X, raster.Y),
		hud:      ui.NewHUD(s, s.Engine().Name(), hudWidth),
		overlay:  ui.NewOverlay(s, bounds, scale),
		scale:    scale,
		hudWidth: hudWidth,
		bounds:   bounds,
	}
}

// Update handles input and runs the pending animation frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.handleKeys(); err != nil {
		return err
	}
	if err := g.hud.Update(int(g.bounds.W)); err != nil {
		return err
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := input.Point{X: float64(mx), Y: float64(my)}
		if p.X < g.bounds.W && p.Y < g.bounds.H {
			if err := g.session.PointerDown(p, ui.Modifiers(), g.bounds); err != nil {
				return err
			}
		}
	}
	g.overlay.Update()
	return g.session.Refresh()
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return g.session.TogglePlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		return g.session.Advance()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return g.session.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.session.Reinitialize()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.session.AdjustSpeed(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.session.AdjustSpeed(-1)
	}
	return nil
}

// Draw uploads the raster if it changed and paints the grid, the overlay
// and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if n := g.session.Renders(); n != g.uploaded {
		g.painter.Upload(g.session.Image())
		g.uploaded = n
	}
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, int(g.bounds.W), h)
	g.session.MarkDisplayed()
}

// Layout returns the logical screen size: the scaled grid plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h := int(g.bounds.H)
	if g.hudWidth > 0 && h < minHUDHeight {
		h = minHUDHeight
	}
	return int(g.bounds.W) + g.hudWidth, h
}

// Run opens the window and blocks until it closes.
func Run(s *Session, title string, scale, hudWidth, tps int) error {
	game := New(s, scale, hudWidth)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)
	slog.Info("window opened", "width", w, "height", h, "tps", tps)
	return ebiten.RunGame(game)
}
